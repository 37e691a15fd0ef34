// Package tui provides an interactive progress view for batch builds.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// UnitStatus is the display state of a unit.
type UnitStatus int

const (
	// StatusPending means the unit has not finished yet.
	StatusPending UnitStatus = iota
	// StatusCached means the artifact was served from the cache.
	StatusCached
	// StatusGenerated means a new artifact was generated.
	StatusGenerated
	// StatusFailed means the pipeline run failed.
	StatusFailed
)

// UnitNode is one row of the view.
type UnitNode struct {
	Name     string
	Status   UnitStatus
	Duration time.Duration
	Err      error
}

// Model is the Bubble Tea model of the progress view.
type Model struct {
	Units   []*UnitNode
	unitMap map[string]*UnitNode
	Summary *MsgSummary

	height    int
	spinner   spinner.Model
	styles    styles
	interrupt func()
}

// NewModel creates a model listing units as pending. interrupt is called
// when the user presses ctrl+c and may be nil.
func NewModel(units []string, interrupt func()) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	m := &Model{
		Units:     make([]*UnitNode, 0, len(units)),
		unitMap:   make(map[string]*UnitNode, len(units)),
		spinner:   s,
		styles:    newStyles(),
		interrupt: interrupt,
	}
	m.spinner.Style = m.styles.pending
	for _, name := range units {
		m.node(name)
	}
	return m
}

func (m *Model) node(name string) *UnitNode {
	if n, ok := m.unitMap[name]; ok {
		return n
	}
	n := &UnitNode{Name: name}
	m.Units = append(m.Units, n)
	m.unitMap[name] = n
	return n
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.interrupt != nil {
				m.interrupt()
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgUnitComplete:
		m.complete(msg)
	case MsgSummary:
		m.Summary = &msg
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) complete(msg MsgUnitComplete) {
	n := m.node(msg.Report.Unit)
	n.Duration = msg.Report.Duration
	n.Err = msg.Report.Err
	switch {
	case msg.Report.Err != nil:
		n.Status = StatusFailed
	case msg.Report.Cached:
		n.Status = StatusCached
	default:
		n.Status = StatusGenerated
	}
}
