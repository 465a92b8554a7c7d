package graph

import (
	"errors"
	"fmt"
	"math"
)

// ErrMagnitudeLength is returned by SetMagnitudes when the magnitude list
// does not line up with the current sample plan.
var ErrMagnitudeLength = errors.New("graph: magnitude count does not match sample plan")

// simplifyThreshold is the smallest vertical step, in pixels, that earns a
// new curve vertex.
const simplifyThreshold = 0.1

// Polygon is a closed outline; the last point connects back to the first.
type Polygon struct {
	Points []Point
}

// Empty reports whether the polygon has no area to draw.
func (p Polygon) Empty() bool { return len(p.Points) < 3 }

// SetMagnitudes rebuilds the response curve from linear magnitudes, one per
// entry of the last FrequencyData plan. On error the previous curve is kept.
func (e *Engine) SetMagnitudes(mags []float64) error {
	if e.plan == nil || len(mags) != len(e.plan) {
		return fmt.Errorf("%w: got %d, plan has %d", ErrMagnitudeLength, len(mags), len(e.plan))
	}

	g := e.geom
	baseline := g.Baseline()
	rightEdge := g.RightEdge()
	pixelRatio := e.pixelRatio(len(e.plan))

	points := make([]Point, 0, 64)
	points = append(points, Point{X: g.OriginX, Y: baseline})

	location := g.OriginX
	lastEmitted := math.NaN()
	lastY := baseline

	for i, m := range mags {
		y := g.PixelYForDB(clampDB(magnitudeDB(m)))
		if i == 0 || math.Abs(lastEmitted-y) >= simplifyThreshold {
			points = append(points, Point{X: location, Y: y})
			lastEmitted = y
		}
		lastY = y

		location += pixelRatio
		if location > rightEdge {
			location = rightEdge
			break
		}
	}

	if last := points[len(points)-1]; last.X != location || last.Y != lastY {
		points = append(points, Point{X: location, Y: lastY})
	}
	points = append(points, Point{X: location, Y: baseline})

	e.curve = Polygon{Points: points}
	return nil
}

// Curve returns a copy of the current response polygon. It is empty until
// the first successful SetMagnitudes.
func (e *Engine) Curve() Polygon {
	if len(e.curve.Points) == 0 {
		return Polygon{}
	}
	pts := make([]Point, len(e.curve.Points))
	copy(pts, e.curve.Points)
	return Polygon{Points: pts}
}

func magnitudeDB(m float64) float64 {
	if !(m > 0) {
		return -MaxGainDB
	}
	return 20 * math.Log10(m)
}
