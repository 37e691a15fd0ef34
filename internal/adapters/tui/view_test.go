package tui_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/promptx/internal/adapters/tui"
	"go.trai.ch/promptx/internal/core/ports"
)

func TestModel_View(t *testing.T) {
	m := tui.NewModel([]string{"Cached.promptx", "Fresh.promptx", "Broken.promptx", "Waiting.promptx"}, nil)
	m.Update(tui.MsgUnitComplete{Report: ports.UnitReport{Unit: "Cached.promptx", Cached: true}})
	m.Update(tui.MsgUnitComplete{Report: ports.UnitReport{Unit: "Fresh.promptx", Duration: 1500 * time.Millisecond}})
	m.Update(tui.MsgUnitComplete{Report: ports.UnitReport{Unit: "Broken.promptx", Err: errors.New("rate limited")}})

	output := m.View()

	assert.Contains(t, output, "Cached.promptx")
	assert.Contains(t, output, "cached")
	assert.Contains(t, output, "generated in 1.5s")
	assert.Contains(t, output, "✗")
	assert.Contains(t, output, "rate limited")
	assert.Contains(t, output, "Waiting.promptx")
	assert.NotContains(t, output, "unit(s)")

	m.Update(tui.MsgSummary{Total: 4, Cached: 1, Generated: 1, Failed: 1})
	assert.Contains(t, m.View(), "4 unit(s): 1 cached, 1 generated, 1 failed")
}

func TestModel_View_KeepsNewestRows(t *testing.T) {
	units := []string{"1.promptx", "2.promptx", "3.promptx", "4.promptx", "5.promptx"}
	m := tui.NewModel(units, nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 3})

	output := m.View()
	assert.NotContains(t, output, "1.promptx")
	assert.NotContains(t, output, "3.promptx")
	assert.Contains(t, output, "4.promptx")
	assert.Contains(t, output, "5.promptx")
	assert.Len(t, strings.Split(strings.TrimSuffix(output, "\n"), "\n"), 2)
}
