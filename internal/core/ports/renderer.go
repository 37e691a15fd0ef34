package ports

import "time"

// UnitReport describes one finished pipeline run.
type UnitReport struct {
	// Unit is the source path of the run.
	Unit string
	// State is the terminal state name of the pipeline.
	State string
	// Cached reports whether the artifact came from the cache.
	Cached   bool
	Duration time.Duration
	Err      error
}

// Renderer presents pipeline progress to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnUnitComplete is called once per finished pipeline run.
	OnUnitComplete(report UnitReport)
	// OnSummary is called after a batch with the per-state totals.
	OnSummary(total, cached, generated, failed int)
}
