// Package linear provides a synchronous, line-oriented progress renderer.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/promptx/internal/core/ports"
	"go.trai.ch/promptx/internal/ui/output"
	"go.trai.ch/promptx/internal/ui/style"
)

// Renderer implements ports.Renderer with one line per finished unit.
type Renderer struct {
	out  io.Writer
	term *termenv.Output

	mu sync.Mutex
}

// NewRenderer creates a new Renderer writing to out, or stderr when out is nil.
func NewRenderer(out io.Writer) *Renderer {
	if out == nil {
		out = os.Stderr
	}
	return &Renderer{
		out:  out,
		term: output.NewWithProfile(out, func() termenv.Profile { return output.ProfileFor(out) }),
	}
}

// OnUnitComplete prints the outcome of one pipeline run.
func (r *Renderer) OnUnitComplete(report ports.UnitReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := r.term.String(fmt.Sprintf("[%s]", report.Unit)).Faint().String()
	duration := report.Duration.Round(time.Millisecond)

	switch {
	case report.Err != nil:
		symbol := r.term.String(style.Failed.Icon).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.out, "%s %s Failed after %v: %v\n", prefix, symbol, duration, report.Err)
	case report.Cached:
		symbol := r.term.String(style.Cached.Icon).Faint().String()
		_, _ = fmt.Fprintf(r.out, "%s %s Cached\n", prefix, symbol)
	default:
		symbol := r.term.String(style.Generated.Icon).Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.out, "%s %s Generated in %v\n", prefix, symbol, duration)
	}
}

// OnSummary prints the totals of a batch.
func (r *Renderer) OnSummary(total, cached, generated, failed int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := fmt.Sprintf("%d unit(s): %d cached, %d generated, %d failed", total, cached, generated, failed)
	if failed > 0 {
		line = r.term.String(line).Foreground(termenv.ANSIRed).String()
	}
	_, _ = fmt.Fprintln(r.out, line)
}
