package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/promptx/internal/ui/style"
)

type styles struct {
	pending lipgloss.Style
	cached  lipgloss.Style
	done    lipgloss.Style
	failed  lipgloss.Style
	detail  lipgloss.Style
}

func newStyles() styles {
	return styles{
		pending: lipgloss.NewStyle().Foreground(style.Iris),
		cached:  lipgloss.NewStyle().Foreground(style.Cached.Color),
		done:    lipgloss.NewStyle().Foreground(style.Generated.Color),
		failed:  lipgloss.NewStyle().Foreground(style.Failed.Color),
		detail:  lipgloss.NewStyle().Foreground(style.Slate),
	}
}
