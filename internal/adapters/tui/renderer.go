package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/promptx/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the progress model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
	done    chan struct{}
}

// NewRenderer creates a new TUI renderer for units.
func NewRenderer(units []string, interrupt func(), opts ...tea.ProgramOption) *Renderer {
	model := NewModel(units, interrupt)
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
		done:    make(chan struct{}),
	}
}

// Start launches the program in a background goroutine.
func (r *Renderer) Start() {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
		close(r.done)
	}()
}

// Stop asks the program to quit.
func (r *Renderer) Stop() {
	r.program.Quit()
}

// Wait blocks until the program has terminated.
func (r *Renderer) Wait() error {
	<-r.done
	return <-r.errCh
}

// OnUnitComplete forwards a finished run to the program.
func (r *Renderer) OnUnitComplete(report ports.UnitReport) {
	r.program.Send(MsgUnitComplete{Report: report})
}

// OnSummary forwards the batch totals and blocks until the final frame is drawn.
func (r *Renderer) OnSummary(total, cached, generated, failed int) {
	r.program.Send(MsgSummary{Total: total, Cached: cached, Generated: generated, Failed: failed})
	<-r.done
}

// Model returns the underlying model for testing.
func (r *Renderer) Model() *Model {
	return r.model
}
