package graph

import (
	"fmt"
	"math"
)

// Alignment positions a label horizontally relative to its anchor.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignRight
)

// Line is a straight segment. Emphasized marks the 0 dB reference line.
type Line struct {
	From, To   Point
	Emphasized bool
}

// Label is axis text. At is the anchor: its X is the centre or right edge
// depending on Align, its Y is the vertical centre of the text.
type Label struct {
	Text  string
	At    Point
	Align Alignment
}

// Grid holds the static decorations of the graph.
type Grid struct {
	DBLines        []Line
	FrequencyLines []Line
	Labels         []Label
}

// ColorState selects the control marker emphasis.
type ColorState int

const (
	ColorNormal ColorState = iota
	ColorActive
)

// Circle is the marker at the edit point.
type Circle struct {
	Center Point
	Radius float64
}

// Markers are the crosshairs and point drawn at the operating point.
type Markers struct {
	CrosshairX Line // horizontal, at the resonance
	CrosshairY Line // vertical, at the frequency
	Point      Circle
	State      ColorState
}

// Frame is everything a renderer needs for one redraw.
type Frame struct {
	Geometry Geometry
	Curve    Polygon
	Grid     Grid
	Markers  Markers
}

// Renderer draws frames. Implementations apply a frame as one update with
// no interpolation between frames.
type Renderer interface {
	Render(f Frame) error
}

const (
	labelInset     = 7.0
	markerRadius   = 3.5
	freqLabelDrop  = 12.0
	dbLabelStepsDB = MaxGainDB / DBLineCount
)

// Grid lays out dB lines, octave lines and their labels for the current
// geometry.
func (e *Engine) Grid() Grid {
	g := e.geom
	grid := Grid{
		DBLines:        make([]Line, 0, 2*DBLineCount+1),
		FrequencyLines: make([]Line, 0, GridLineCount-1),
		Labels:         make([]Label, 0, 2*DBLineCount+1+GridLineCount+1),
	}

	for index := -DBLineCount; index <= DBLineCount; index++ {
		value := float64(index) * dbLabelStepsDB
		y := math.Floor(g.PixelYForDB(value))

		grid.DBLines = append(grid.DBLines, Line{
			From:       Point{X: g.OriginX, Y: y},
			To:         Point{X: g.RightEdge(), Y: y},
			Emphasized: index == 0,
		})
		grid.Labels = append(grid.Labels, Label{
			Text:  fmt.Sprintf("%d dB", int(value)),
			At:    Point{X: g.LeftMargin - labelInset, Y: y},
			Align: AlignRight,
		})
	}

	labelY := g.Baseline() + math.Min(freqLabelDrop, g.BottomMargin/2)
	firstK := true
	for index := 0; index <= GridLineCount; index++ {
		value := valueAtGridIndex(float64(index))
		x := math.Floor(g.PixelXForFrequency(value))

		var text string
		switch {
		case index == 0:
			text = FormatFrequency(value) + " Hz"
		case index < GridLineCount:
			grid.FrequencyLines = append(grid.FrequencyLines, Line{
				From: Point{X: x, Y: g.OriginY + g.BottomMargin},
				To:   Point{X: x, Y: g.Baseline()},
			})
			text = FormatFrequency(value)
			if value >= 1000 && firstK {
				text += "K"
				firstK = false
			}
		default:
			text = FormatFrequency(MaxHertz) + " K"
		}

		grid.Labels = append(grid.Labels, Label{
			Text:  text,
			At:    Point{X: x, Y: labelY},
			Align: AlignCenter,
		})
	}

	return grid
}

// Markers positions the crosshairs and point at the edit point.
func (e *Engine) Markers() Markers {
	g := e.geom
	p := e.point

	state := ColorNormal
	if e.dragging {
		state = ColorActive
	}

	y := math.Floor(p.EditY + 0.5)
	x := math.Floor(p.EditX) + 0.5
	return Markers{
		CrosshairX: Line{
			From: Point{X: g.OriginX, Y: y},
			To:   Point{X: g.RightEdge(), Y: y},
		},
		CrosshairY: Line{
			From: Point{X: x, Y: g.OriginY + g.BottomMargin},
			To:   Point{X: x, Y: g.Baseline()},
		},
		Point: Circle{Center: Point{X: p.EditX, Y: p.EditY}, Radius: markerRadius},
		State: state,
	}
}

// Frame snapshots the engine for a renderer.
func (e *Engine) Frame() Frame {
	return Frame{
		Geometry: e.geom,
		Curve:    e.Curve(),
		Grid:     e.Grid(),
		Markers:  e.Markers(),
	}
}

// Render hands the current frame to r.
func (e *Engine) Render(r Renderer) error {
	return r.Render(e.Frame())
}
