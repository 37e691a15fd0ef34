package tui

import (
	"fmt"
	"strings"
	"time"

	"go.trai.ch/promptx/internal/ui/style"
)

// View renders the unit list followed by the summary once it is known.
func (m *Model) View() string {
	var b strings.Builder

	// Keep the newest rows visible when the list outgrows the terminal.
	start := 0
	if m.height > 1 && len(m.Units) >= m.height {
		start = len(m.Units) - m.height + 1
	}

	for _, n := range m.Units[start:] {
		b.WriteString(m.row(n))
		b.WriteByte('\n')
	}

	if m.Summary != nil {
		line := fmt.Sprintf("%d unit(s): %d cached, %d generated, %d failed",
			m.Summary.Total, m.Summary.Cached, m.Summary.Generated, m.Summary.Failed)
		if m.Summary.Failed > 0 {
			line = m.styles.failed.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

func (m *Model) row(n *UnitNode) string {
	switch n.Status {
	case StatusCached:
		return fmt.Sprintf("%s %s %s", m.styles.cached.Render(style.Cached.Icon), n.Name, m.styles.detail.Render("cached"))
	case StatusGenerated:
		return fmt.Sprintf("%s %s %s", m.styles.done.Render(style.Generated.Icon), n.Name,
			m.styles.detail.Render("generated in "+n.Duration.Round(time.Millisecond).String()))
	case StatusFailed:
		return fmt.Sprintf("%s %s %s", m.styles.failed.Render(style.Failed.Icon), n.Name, m.styles.failed.Render(n.Err.Error()))
	default:
		return fmt.Sprintf("%s %s", m.spinner.View(), n.Name)
	}
}
