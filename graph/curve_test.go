package graph

import (
	"errors"
	"math"
	"testing"
)

func flatMagnitudes(n int, mag float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = mag
	}
	return out
}

func TestSetMagnitudes_RequiresPlan(t *testing.T) {
	e, _ := newTestEngine(t)
	err := e.SetMagnitudes(flatMagnitudes(MaxResponseFrequencies, 1))
	if !errors.Is(err, ErrMagnitudeLength) {
		t.Fatalf("err = %v, want ErrMagnitudeLength", err)
	}
	if !e.Curve().Empty() {
		t.Fatal("curve built without a plan")
	}
}

func TestSetMagnitudes_LengthMismatchKeepsCurve(t *testing.T) {
	e, _ := newTestEngine(t)
	plan := e.FrequencyData()
	if err := e.SetMagnitudes(flatMagnitudes(len(plan), 2)); err != nil {
		t.Fatal(err)
	}
	before := e.Curve()

	err := e.SetMagnitudes(flatMagnitudes(len(plan)-1, 0.5))
	if !errors.Is(err, ErrMagnitudeLength) {
		t.Fatalf("err = %v, want ErrMagnitudeLength", err)
	}

	after := e.Curve()
	if len(after.Points) != len(before.Points) {
		t.Fatalf("curve changed: %d -> %d points", len(before.Points), len(after.Points))
	}
	for i := range after.Points {
		if after.Points[i] != before.Points[i] {
			t.Fatalf("point %d changed: %v -> %v", i, before.Points[i], after.Points[i])
		}
	}
}

func TestSetMagnitudes_FlatResponseCollapses(t *testing.T) {
	e, _ := newTestEngine(t)
	g := e.Geometry()
	if err := e.SetMagnitudes(flatMagnitudes(len(e.FrequencyData()), 1)); err != nil {
		t.Fatal(err)
	}

	y0 := e.PixelYForDB(0)
	want := []Point{
		{g.OriginX, g.Baseline()},
		{g.OriginX, y0},
		{g.RightEdge(), y0},
		{g.RightEdge(), g.Baseline()},
	}
	got := e.Curve().Points
	if len(got) != len(want) {
		t.Fatalf("points = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSetMagnitudes_ClampsToAxis(t *testing.T) {
	e, _ := newTestEngine(t)
	n := len(e.FrequencyData())
	mags := make([]float64, n)
	for i := range mags {
		switch {
		case i < n/3:
			mags[i] = 1000 // +60 dB
		case i < 2*n/3:
			mags[i] = 0
		default:
			mags[i] = math.NaN()
		}
	}
	if err := e.SetMagnitudes(mags); err != nil {
		t.Fatal(err)
	}

	g := e.Geometry()
	for i, p := range e.Curve().Points {
		if p.Y < g.BottomMargin || p.Y > g.Baseline() {
			t.Fatalf("point %d at y=%v escapes the plotting area", i, p.Y)
		}
		if p.X < g.OriginX || p.X > g.RightEdge() {
			t.Fatalf("point %d at x=%v escapes the plotting area", i, p.X)
		}
	}
}

func TestSetMagnitudes_SimplifiesSmallSteps(t *testing.T) {
	e, _ := newTestEngine(t)
	n := len(e.FrequencyData())

	// 0.001 dB per sample is ~0.011 px per sample: far below the threshold
	// for a single step but it accumulates.
	mags := make([]float64, n)
	for i := range mags {
		mags[i] = math.Pow(10, float64(i)*0.001/20)
	}
	if err := e.SetMagnitudes(mags); err != nil {
		t.Fatal(err)
	}

	pts := e.Curve().Points
	interior := pts[1 : len(pts)-2]
	if len(interior) < 3 {
		t.Fatalf("slow ramp collapsed to %d vertices", len(interior))
	}
	if len(interior) > n/4 {
		t.Fatalf("ramp kept %d vertices, expected heavy simplification", len(interior))
	}
	for i := 1; i < len(interior); i++ {
		if dy := math.Abs(interior[i].Y - interior[i-1].Y); dy < simplifyThreshold {
			t.Fatalf("vertex %d only %v px from the previous one", i, dy)
		}
	}
}

func TestSetMagnitudes_StepProducesVertex(t *testing.T) {
	e, _ := newTestEngine(t)
	n := len(e.FrequencyData())
	mags := flatMagnitudes(n, 1)
	for i := 200; i < n; i++ {
		mags[i] = 10 // +20 dB
	}
	if err := e.SetMagnitudes(mags); err != nil {
		t.Fatal(err)
	}

	g := e.Geometry()
	found := false
	for _, p := range e.Curve().Points {
		if p.X == g.OriginX+200 && p.Y == e.PixelYForDB(20) {
			found = true
		}
	}
	if !found {
		t.Fatalf("no vertex at the step: %v", e.Curve().Points)
	}
}

func TestCurve_ReturnsCopy(t *testing.T) {
	e, _ := newTestEngine(t)
	if err := e.SetMagnitudes(flatMagnitudes(len(e.FrequencyData()), 1)); err != nil {
		t.Fatal(err)
	}
	c := e.Curve()
	c.Points[0] = Point{-1, -1}
	if e.Curve().Points[0] == (Point{-1, -1}) {
		t.Fatal("Curve exposes internal storage")
	}
}
