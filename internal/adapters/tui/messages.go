package tui

import "go.trai.ch/promptx/internal/core/ports"

// MsgUnitComplete is sent when a pipeline run finishes.
type MsgUnitComplete struct {
	Report ports.UnitReport
}

// MsgSummary is sent after the batch and ends the program.
type MsgSummary struct {
	Total, Cached, Generated, Failed int
}
