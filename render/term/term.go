// Package term renders graph frames onto a braille terminal canvas.
//
// The engine driving a terminal graph works in dots: a cell is two dots
// wide and four high. [EngineOptions] sizes an engine for a given number
// of cells with margins that leave room for text labels.
package term

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/cwbudde/algo-filterview/graph"
)

// Margins around the plotting area, in dots.
const (
	LeftMargin   = 18.0
	BottomMargin = 8.0
	RightMargin  = 4.0
	TopMargin    = 4.0
)

// EngineOptions returns graph options laying an engine out on cols x rows
// terminal cells.
func EngineOptions(cols, rows int) []graph.Option {
	w, h := SurfaceSize(cols, rows)
	return []graph.Option{
		graph.WithMargins(LeftMargin, BottomMargin, RightMargin, TopMargin),
		graph.WithSurface(w, h),
	}
}

// SurfaceSize converts a cell count to a surface size in dots.
func SurfaceSize(cols, rows int) (w, h float64) {
	return float64(cols * 2), float64(rows * 4)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(r *Renderer) { r.styles = &s }
}

// Plain disables styling; output is bare braille and text.
func Plain() Option {
	return func(r *Renderer) { r.styles = nil }
}

// WithWriter makes Render also write every frame to w.
func WithWriter(w io.Writer) Option {
	return func(r *Renderer) { r.w = w }
}

// Renderer draws frames as text. The last frame is kept for View.
type Renderer struct {
	styles *Styles
	w      io.Writer
	view   string
}

// New returns a renderer with the default styles.
func New(opts ...Option) *Renderer {
	s := DefaultStyles()
	r := &Renderer{styles: &s}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// View returns the last rendered frame.
func (r *Renderer) View() string { return r.view }

// Render draws f and, if a writer is configured, writes it out.
func (r *Renderer) Render(f graph.Frame) error {
	w, h := f.Geometry.SurfaceSize()
	c := newCanvas(int(math.Ceil(w/2)), int(math.Ceil(h/4)))

	g := f.Geometry
	for _, l := range f.Grid.DBLines {
		lay := layerGrid
		if l.Emphasized {
			lay = layerEmphasis
		}
		drawLine(c, g, l, lay, 2)
	}
	for _, l := range f.Grid.FrequencyLines {
		drawLine(c, g, l, layerGrid, 2)
	}

	pts := f.Curve.Points
	for i := 1; i < len(pts); i++ {
		drawLine(c, g, graph.Line{From: pts[i-1], To: pts[i]}, layerCurve, 1)
	}

	m := f.Markers
	lay := layerMarker
	if m.State == graph.ColorActive {
		lay = layerMarkerActive
	}
	drawLine(c, g, m.CrosshairX, lay, 1)
	drawLine(c, g, m.CrosshairY, lay, 1)
	center := g.ToView(m.Point.Center)
	c.disk(dot(center.X), dot(center.Y), m.Point.Radius/2, lay)

	for _, lb := range labelOrder(f.Grid.Labels) {
		at := g.ToView(lb.At)
		col := dot(at.X) / 2
		n := utf8.RuneCountInString(lb.Text)
		if lb.Align == graph.AlignRight {
			col -= n - 1
		} else {
			col -= n / 2
		}
		c.text(col, dot(at.Y)/4, lb.Text)
	}

	style := func(_ layer, s string) string { return s }
	if r.styles != nil {
		style = r.styles.render
	}
	r.view = strings.Join(c.lines(style), "\n")

	if r.w != nil {
		if _, err := fmt.Fprintln(r.w, r.view); err != nil {
			return fmt.Errorf("term: %w", err)
		}
	}
	return nil
}

// labelOrder places the axis end labels before the interior ones so that
// on narrow canvases the range stays readable and interior labels give way.
func labelOrder(labels []graph.Label) []graph.Label {
	var right, center []graph.Label
	for _, lb := range labels {
		if lb.Align == graph.AlignRight {
			right = append(right, lb)
		} else {
			center = append(center, lb)
		}
	}
	if len(center) > 2 {
		ends := []graph.Label{center[0], center[len(center)-1]}
		center = append(ends, center[1:len(center)-1]...)
	}
	return append(right, center...)
}

func drawLine(c *canvas, g graph.Geometry, l graph.Line, lay layer, step int) {
	a, b := g.ToView(l.From), g.ToView(l.To)
	c.line(dot(a.X), dot(a.Y), dot(b.X), dot(b.Y), lay, step)
}

// dot maps a view coordinate to the dot containing it.
func dot(v float64) int { return int(math.Floor(v)) }
