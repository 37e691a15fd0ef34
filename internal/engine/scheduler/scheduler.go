// Package scheduler runs the transform pipeline over many source units.
package scheduler

import (
	"context"
	"errors"
	"runtime"
	"slices"

	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// UnitResult is the outcome of one source unit in a batch.
type UnitResult struct {
	Path   string
	Result domain.Result
	Err    error
}

// Summary aggregates the outcomes of a batch.
type Summary struct {
	Units     []UnitResult
	Cached    int
	Generated int
	Failed    int
}

// Total returns the number of units in the batch.
func (s Summary) Total() int {
	return len(s.Units)
}

// Scheduler transforms batches of source units with bounded concurrency.
type Scheduler struct {
	transformer ports.Transformer
	renderer    ports.Renderer
}

// NewScheduler creates a new Scheduler. renderer may be nil.
func NewScheduler(transformer ports.Transformer, renderer ports.Renderer) *Scheduler {
	return &Scheduler{
		transformer: transformer,
		renderer:    renderer,
	}
}

// Run transforms every path, running at most parallelism units at once.
// A failing unit does not stop the others. The returned error joins
// ErrBuildFailed with every unit error when at least one unit failed.
func (s *Scheduler) Run(ctx context.Context, paths []string, parallelism int) (Summary, error) {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	results := make([]UnitResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, path := range paths {
		g.Go(func() error {
			res, err := s.transformer.Transform(gctx, path)
			results[i] = UnitResult{Path: path, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	summary := summarize(results)
	if s.renderer != nil {
		s.renderer.OnSummary(summary.Total(), summary.Cached, summary.Generated, summary.Failed)
	}

	if summary.Failed == 0 {
		return summary, nil
	}

	errs := make([]error, 0, summary.Failed+1)
	errs = append(errs, domain.ErrBuildFailed)
	for _, u := range summary.Units {
		if u.Err != nil {
			errs = append(errs, zerr.With(u.Err, "source", u.Path))
		}
	}
	return summary, errors.Join(errs...)
}

func summarize(results []UnitResult) Summary {
	summary := Summary{Units: slices.Clone(results)}
	for _, u := range results {
		switch {
		case u.Err != nil:
			summary.Failed++
		case u.Result.Cached:
			summary.Cached++
		default:
			summary.Generated++
		}
	}
	return summary
}
