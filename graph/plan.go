package graph

import "math"

// FrequencyData returns the frequencies a magnitude provider should
// evaluate for the current layout: MaxResponseFrequencies values starting
// at the left edge, one per pixel bucket, capped at MaxHertz. Positions past
// the right edge report MaxHertz.
//
// The plan is cached until the next SetSurface. The returned slice is
// shared with the engine and must not be modified.
func (e *Engine) FrequencyData() []float64 {
	if e.plan != nil {
		return e.plan
	}

	g := e.geom
	rightEdge := g.RightEdge()
	pixelRatio := math.Ceil(g.Width / MaxResponseFrequencies)
	if pixelRatio < 1 {
		pixelRatio = 1
	}

	plan := make([]float64, MaxResponseFrequencies)
	location := g.OriginX
	for i := range plan {
		if location > rightEdge {
			plan[i] = MaxHertz
			continue
		}
		plan[i] = min(g.FrequencyForPixelX(location), MaxHertz)
		location += pixelRatio
	}

	e.plan = plan
	return plan
}

// pixelRatio is the X distance between consecutive plan entries.
func (e *Engine) pixelRatio(count int) float64 {
	if count <= 0 {
		return 1
	}
	return math.Max(1, math.Ceil(e.geom.Width/float64(count)))
}
