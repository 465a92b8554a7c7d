package graph

import "math"

const (
	// MinHertz and MaxHertz bound the frequency axis.
	MinHertz = 12.0
	MaxHertz = 20000.0
	// MaxGainDB bounds the dB axis symmetrically.
	MaxGainDB = 20.0

	// GridLineCount is the number of octave divisions across the width.
	GridLineCount = 11
	// DBLineCount is the number of dB grid lines on each side of 0 dB.
	DBLineCount = 4
	// MaxResponseFrequencies is the length of every sample plan.
	MaxResponseFrequencies = 1024

	// Default margins around the plotting area, in pixels.
	DefaultLeftMargin   = 54.0
	DefaultBottomMargin = 40.0
	DefaultRightMargin  = 10.0
	DefaultTopMargin    = 10.0

	logBase = 2.0
)

// Point is a position in graph space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Geometry is the pixel layout of the plotting area. It is recomputed from
// the surface size on every resize.
type Geometry struct {
	OriginX, OriginY float64
	Width, Height    float64

	LeftMargin   float64
	BottomMargin float64
	RightMargin  float64
	TopMargin    float64
}

func newGeometry(surfaceW, surfaceH float64, m margins) Geometry {
	return Geometry{
		OriginX:      m.left,
		OriginY:      0,
		Width:        math.Max(0, surfaceW-m.left-m.right),
		Height:       math.Max(0, surfaceH-m.bottom-m.top),
		LeftMargin:   m.left,
		BottomMargin: m.bottom,
		RightMargin:  m.right,
		TopMargin:    m.top,
	}
}

// Bounds returns the plotting area in graph space.
func (g Geometry) Bounds() Rect {
	return Rect{X: g.OriginX, Y: g.OriginY + g.BottomMargin, W: g.Width, H: g.Height}
}

// RightEdge is the X coordinate of the right side of the plotting area.
func (g Geometry) RightEdge() float64 { return g.OriginX + g.Width }

// Baseline is the Y coordinate of the bottom of the plotting area.
func (g Geometry) Baseline() float64 { return g.OriginY + g.Height + g.BottomMargin }

// SurfaceSize returns the surface dimensions the geometry was built from.
func (g Geometry) SurfaceSize() (w, h float64) {
	return g.LeftMargin + g.Width + g.RightMargin, g.TopMargin + g.Height + g.BottomMargin
}

// ToView converts a graph-space point to surface pixels with the origin at
// the top-left corner.
func (g Geometry) ToView(p Point) Point {
	return Point{X: p.X, Y: p.Y - g.BottomMargin + g.TopMargin}
}

// FromView converts surface pixels to graph space.
func (g Geometry) FromView(p Point) Point {
	return Point{X: p.X, Y: p.Y + g.BottomMargin - g.TopMargin}
}

// PixelXForFrequency maps hz onto the log-frequency axis. The result is
// snapped to the centre of a pixel column so hairlines stay crisp.
func (g Geometry) PixelXForFrequency(hz float64) float64 {
	pixelIncrement := g.Width / GridLineCount
	index := math.Log(hz/MinHertz) / math.Log(logBase)
	return math.Floor(index*pixelIncrement+g.OriginX) + 0.5
}

// FrequencyForPixelX is the inverse of PixelXForFrequency.
func (g Geometry) FrequencyForPixelX(x float64) float64 {
	if g.Width <= 0 {
		return MinHertz
	}
	pixelIncrement := g.Width / GridLineCount
	index := (x - g.OriginX) / pixelIncrement
	return valueAtGridIndex(index)
}

// PixelYForDB maps db linearly onto [-MaxGainDB, MaxGainDB]. Y grows
// downwards, so MaxGainDB lands at BottomMargin.
func (g Geometry) PixelYForDB(db float64) float64 {
	step := g.Height / (MaxGainDB * 2)
	location := (db + MaxGainDB) * step
	return g.Height - location + g.BottomMargin
}

// DBForPixelY is the inverse of PixelYForDB.
func (g Geometry) DBForPixelY(y float64) float64 {
	if g.Height <= 0 {
		return 0
	}
	step := g.Height / (MaxGainDB * 2)
	return MaxGainDB - (y-g.BottomMargin)/step
}

// valueAtGridIndex returns the frequency at a fractional grid position.
func valueAtGridIndex(index float64) float64 {
	return MinHertz * math.Pow(logBase, index)
}

func clampFrequency(hz float64) float64 {
	return min(max(hz, MinHertz), MaxHertz)
}

func clampDB(db float64) float64 {
	return min(max(db, -MaxGainDB), MaxGainDB)
}
