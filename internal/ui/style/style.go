// Package style holds the palette and status markers shared by the log
// handler, the progress renderers and the cache status report.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
)

// Marker pairs an icon with the color it is drawn in.
type Marker struct {
	Icon  string
	Color lipgloss.Color
}

// Markers for the outcome of a unit or the state of a cached artifact.
var (
	Generated = Marker{Icon: Check, Color: Green}
	Cached    = Marker{Icon: Check, Color: Slate}
	Changed   = Marker{Icon: Tilde, Color: Yellow}
	Absent    = Marker{Icon: Dot, Color: Slate}
	Attention = Marker{Icon: Warning, Color: Yellow}
	Failed    = Marker{Icon: Cross, Color: Red}
)

// String renders the icon bold in the marker color.
func (m Marker) String() string {
	return Label(m.Icon, m.Color)
}

// Label renders a bold, colored label such as a state name in a report.
func Label(text string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}
