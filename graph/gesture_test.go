package graph

import (
	"math"
	"testing"
)

func requireKinds(t *testing.T, rec *recorder, want ...string) {
	t.Helper()
	got := rec.kinds()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
}

func requireWithinBucket(t *testing.T, e *Engine, got, want float64) {
	t.Helper()
	b := pixelBucket(e.Geometry())
	if r := got / want; r > b || r < 1/b {
		t.Fatalf("frequency %v not within one pixel bucket of %v", got, want)
	}
}

func TestGesture_CombinedChangeIsOneEvent(t *testing.T) {
	e, rec := newTestEngine(t)
	e.SetFrequency(440)
	e.SetResonance(0)

	down := Point{X: e.PixelXForFrequency(440), Y: e.PixelYForDB(0)}
	if !e.PointerDown(down) {
		t.Fatal("PointerDown inside the graph did not start a gesture")
	}
	requireKinds(t, rec, "began")
	requireWithinBucket(t, e, rec.events[0].hz, 440)
	rec.reset()

	e.PointerMove(Point{X: e.PixelXForFrequency(500), Y: e.PixelYForDB(3)})

	requireKinds(t, rec, "both")
	requireWithinBucket(t, e, rec.events[0].hz, 500)
	if math.Abs(rec.events[0].db-3) > 1e-9 {
		t.Fatalf("resonance = %v, want 3", rec.events[0].db)
	}
	if e.Frequency() != rec.events[0].hz || e.Resonance() != rec.events[0].db {
		t.Fatal("engine state differs from the reported values")
	}
}

func TestGesture_SingleAxisChanges(t *testing.T) {
	e, rec := newTestEngine(t)
	down := Point{X: e.PixelXForFrequency(1000), Y: e.PixelYForDB(0)}
	e.PointerDown(down)
	rec.reset()

	e.PointerMove(Point{X: e.PixelXForFrequency(2000), Y: down.Y})
	requireKinds(t, rec, "frequency")
	rec.reset()

	e.PointerMove(Point{X: e.PixelXForFrequency(2000), Y: e.PixelYForDB(-6)})
	requireKinds(t, rec, "resonance")
	if math.Abs(rec.events[0].db+6) > 1e-9 {
		t.Fatalf("resonance = %v, want -6", rec.events[0].db)
	}
	rec.reset()

	e.PointerMove(Point{X: e.PixelXForFrequency(2000), Y: e.PixelYForDB(-6)})
	requireKinds(t, rec)
}

func TestGesture_OvershootClampsAndSettles(t *testing.T) {
	e, rec := newTestEngine(t)
	g := e.Geometry()
	e.PointerDown(Point{X: g.OriginX + 10, Y: g.BottomMargin + 10})
	rec.reset()

	e.PointerMove(Point{X: 5000, Y: -100})
	requireKinds(t, rec, "both")
	if e.Frequency() != MaxHertz || e.Resonance() != MaxGainDB {
		t.Fatalf("operating point = %v/%v, want clamped to %v/%v", e.Frequency(), e.Resonance(), MaxHertz, MaxGainDB)
	}
	rec.reset()

	e.PointerMove(Point{X: 6000, Y: -200})
	requireKinds(t, rec)

	e.PointerMove(Point{X: -50, Y: 5000})
	if e.Frequency() != MinHertz || e.Resonance() != -MaxGainDB {
		t.Fatalf("operating point = %v/%v, want clamped to %v/%v", e.Frequency(), e.Resonance(), MinHertz, -MaxGainDB)
	}
}

func TestGesture_PointerDownOutsideIgnored(t *testing.T) {
	e, rec := newTestEngine(t)
	if e.PointerDown(Point{X: 5, Y: 5}) {
		t.Fatal("PointerDown in the margin started a gesture")
	}
	e.PointerMove(Point{X: 300, Y: 200})
	e.PointerUp(Point{X: 300, Y: 200})
	e.PointerCancel()

	if e.Active() {
		t.Fatal("engine active without a gesture")
	}
	requireKinds(t, rec)
}

func TestGesture_PointerUpEnds(t *testing.T) {
	e, rec := newTestEngine(t)
	e.PointerDown(Point{X: e.PixelXForFrequency(100), Y: e.PixelYForDB(0)})
	if !e.Active() || e.Markers().State != ColorActive {
		t.Fatal("gesture not reflected in touch state")
	}

	e.PointerUp(Point{X: e.PixelXForFrequency(800), Y: e.PixelYForDB(0)})
	requireKinds(t, rec, "began", "frequency", "ended")

	end := rec.events[2]
	if end.hz != e.Frequency() || end.db != e.Resonance() {
		t.Fatalf("GestureEnded reported %v/%v, engine holds %v/%v", end.hz, end.db, e.Frequency(), e.Resonance())
	}
	if e.Active() || e.Markers().State != ColorNormal {
		t.Fatal("engine still active after PointerUp")
	}
	p := e.OperatingPoint()
	if p.EditX != e.PixelXForFrequency(p.FrequencyHz) || p.EditY != e.PixelYForDB(p.ResonanceDB) {
		t.Fatal("edit point out of sync after PointerUp")
	}
}

func TestGesture_CancelIsSilent(t *testing.T) {
	e, rec := newTestEngine(t)
	e.PointerDown(Point{X: e.PixelXForFrequency(100), Y: e.PixelYForDB(0)})
	e.PointerMove(Point{X: e.PixelXForFrequency(400), Y: e.PixelYForDB(5)})
	committed := e.OperatingPoint()
	rec.reset()

	e.PointerCancel()

	requireKinds(t, rec)
	if e.Active() {
		t.Fatal("engine still active after cancel")
	}
	p := e.OperatingPoint()
	if p.FrequencyHz != committed.FrequencyHz || p.ResonanceDB != committed.ResonanceDB {
		t.Fatalf("cancel moved the operating point: %+v -> %+v", committed, p)
	}
	if p.EditX != e.PixelXForFrequency(p.FrequencyHz) || p.EditY != e.PixelYForDB(p.ResonanceDB) {
		t.Fatal("edit point out of sync after cancel")
	}

	e.PointerUp(Point{X: 300, Y: 200})
	requireKinds(t, rec)
}

func TestGesture_NilDelegate(t *testing.T) {
	e := New(WithSurface(800, 500))
	e.PointerDown(Point{X: 300, Y: 200})
	e.PointerMove(Point{X: 400, Y: 100})
	e.PointerUp(Point{X: 500, Y: 150})
	e.SetSurface(600, 400)
}
