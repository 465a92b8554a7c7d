package term

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	gridColor     = lipgloss.Color("#444444")
	emphasisColor = lipgloss.Color("#888888")
	curveColor    = lipgloss.Color("#3B82F6")
	markerColor   = lipgloss.Color("#A40000")
	activeColor   = lipgloss.Color("#FF8C00")
	labelColor    = lipgloss.Color("#BBBBBB")
)

// Styles holds one lipgloss style per graph element.
type Styles struct {
	Grid         lipgloss.Style
	Emphasis     lipgloss.Style
	Curve        lipgloss.Style
	Marker       lipgloss.Style
	MarkerActive lipgloss.Style
	Label        lipgloss.Style
}

// DefaultStyles returns the dark-terminal palette.
func DefaultStyles() Styles {
	return Styles{
		Grid:         lipgloss.NewStyle().Foreground(gridColor),
		Emphasis:     lipgloss.NewStyle().Foreground(emphasisColor),
		Curve:        lipgloss.NewStyle().Foreground(curveColor),
		Marker:       lipgloss.NewStyle().Foreground(markerColor),
		MarkerActive: lipgloss.NewStyle().Bold(true).Foreground(activeColor),
		Label:        lipgloss.NewStyle().Foreground(labelColor),
	}
}

func (s *Styles) render(l layer, text string) string {
	switch l {
	case layerGrid:
		return s.Grid.Render(text)
	case layerEmphasis:
		return s.Emphasis.Render(text)
	case layerCurve:
		return s.Curve.Render(text)
	case layerMarker:
		return s.Marker.Render(text)
	case layerMarkerActive:
		return s.MarkerActive.Render(text)
	case layerLabel:
		return s.Label.Render(text)
	default:
		return text
	}
}
