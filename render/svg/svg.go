// Package svg renders graph frames as standalone SVG documents.
package svg

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-filterview/graph"
)

// Style holds the colors and font used for a document.
type Style struct {
	Background   string
	Grid         string
	Emphasis     string
	Label        string
	CurveStroke  string
	CurveFill    string
	Marker       string
	MarkerActive string
	FontFamily   string
	FontSize     float64
}

// DefaultStyle is a light theme.
func DefaultStyle() Style {
	return Style{
		Background:   "#ffffff",
		Grid:         "#d0d0d0",
		Emphasis:     "#808080",
		Label:        "#404040",
		CurveStroke:  "#1f5fbf",
		CurveFill:    "#1f5fbf33",
		Marker:       "#bf1f1f",
		MarkerActive: "#ff8c00",
		FontFamily:   "Helvetica, Arial, sans-serif",
		FontSize:     11,
	}
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyle replaces the default style.
func WithStyle(s Style) Option {
	return func(r *Renderer) { r.style = s }
}

// Renderer writes one SVG document per frame to w.
type Renderer struct {
	w     io.Writer
	style Style
}

// New returns a renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w, style: DefaultStyle()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Render writes f as a complete document.
func (r *Renderer) Render(f graph.Frame) error {
	bw := bufio.NewWriter(r.w)
	doc := &document{w: bw, g: f.Geometry, s: r.style}
	doc.write(f)
	if doc.err != nil {
		return fmt.Errorf("svg: %w", doc.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	return nil
}

// document accumulates the first write error so drawing code stays linear.
type document struct {
	w   *bufio.Writer
	g   graph.Geometry
	s   Style
	err error
}

func (d *document) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *document) write(f graph.Frame) {
	w, h := d.g.SurfaceSize()
	d.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(w), num(h), num(w), num(h))
	d.printf(`<rect width="%s" height="%s" fill="%s"/>`+"\n", num(w), num(h), d.s.Background)

	d.printf(`<g stroke-width="1" fill="none">` + "\n")
	for _, l := range f.Grid.DBLines {
		color := d.s.Grid
		if l.Emphasized {
			color = d.s.Emphasis
		}
		d.line(l, color)
	}
	for _, l := range f.Grid.FrequencyLines {
		d.line(l, d.s.Grid)
	}
	d.printf("</g>\n")

	if !f.Curve.Empty() {
		d.polygon(f.Curve)
	}

	d.printf(`<g font-family="%s" font-size="%s" fill="%s" dominant-baseline="middle">`+"\n",
		html.EscapeString(d.s.FontFamily), num(d.s.FontSize), d.s.Label)
	for _, lb := range f.Grid.Labels {
		anchor := "middle"
		if lb.Align == graph.AlignRight {
			anchor = "end"
		}
		p := d.g.ToView(lb.At)
		d.printf(`<text x="%s" y="%s" text-anchor="%s">%s</text>`+"\n",
			num(p.X), num(p.Y), anchor, html.EscapeString(lb.Text))
	}
	d.printf("</g>\n")

	d.markers(f.Markers)
	d.printf("</svg>\n")
}

func (d *document) line(l graph.Line, color string) {
	a, b := d.g.ToView(l.From), d.g.ToView(l.To)
	d.printf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
		num(a.X), num(a.Y), num(b.X), num(b.Y), color)
}

func (d *document) polygon(p graph.Polygon) {
	var sb strings.Builder
	for i, pt := range p.Points {
		v := d.g.ToView(pt)
		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString(" L")
		}
		sb.WriteString(num(v.X))
		sb.WriteByte(' ')
		sb.WriteString(num(v.Y))
	}
	sb.WriteString(" Z")
	d.printf(`<path d="%s" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		sb.String(), d.s.CurveFill, d.s.CurveStroke)
}

func (d *document) markers(m graph.Markers) {
	color := d.s.Marker
	if m.State == graph.ColorActive {
		color = d.s.MarkerActive
	}
	d.printf(`<g class="markers">` + "\n")
	d.line(m.CrosshairX, color)
	d.line(m.CrosshairY, color)
	c := d.g.ToView(m.Point.Center)
	d.printf(`<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
		num(c.X), num(c.Y), num(m.Point.Radius), color)
	d.printf("</g>\n")
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
