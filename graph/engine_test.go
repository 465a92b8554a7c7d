package graph

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-filterview/internal/testutil"
)

type event struct {
	kind string
	hz   float64
	db   float64
}

type recorder struct {
	events []event
}

func (r *recorder) GestureBegan(p OperatingPoint) {
	r.events = append(r.events, event{"began", p.FrequencyHz, p.ResonanceDB})
}

func (r *recorder) FrequencyChanged(hz float64) {
	r.events = append(r.events, event{kind: "frequency", hz: hz})
}

func (r *recorder) ResonanceChanged(db float64) {
	r.events = append(r.events, event{kind: "resonance", db: db})
}

func (r *recorder) FrequencyAndResonanceChanged(hz, db float64) {
	r.events = append(r.events, event{"both", hz, db})
}

func (r *recorder) GestureEnded(p OperatingPoint) {
	r.events = append(r.events, event{"ended", p.FrequencyHz, p.ResonanceDB})
}

func (r *recorder) DataChanged() {
	r.events = append(r.events, event{kind: "data"})
}

func (r *recorder) kinds() []string {
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.kind
	}
	return out
}

func (r *recorder) reset() { r.events = nil }

func newTestEngine(t *testing.T) (*Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	e := New(WithSurface(800, 500), WithDelegate(rec))
	return e, rec
}

// pixelBucket is the frequency ratio spanned by one pixel column.
func pixelBucket(g Geometry) float64 {
	return math.Pow(2, GridLineCount/g.Width)
}

func TestNew_Defaults(t *testing.T) {
	e, _ := newTestEngine(t)
	g := e.Geometry()

	if g.Width != 736 || g.Height != 450 {
		t.Fatalf("graph size = %vx%v, want 736x450", g.Width, g.Height)
	}
	if e.Frequency() != MinHertz || e.Resonance() != 0 {
		t.Fatalf("operating point = %v Hz / %v dB, want %v / 0", e.Frequency(), e.Resonance(), MinHertz)
	}
	if w, h := g.SurfaceSize(); w != 800 || h != 500 {
		t.Fatalf("SurfaceSize = %vx%v", w, h)
	}
}

func TestTransforms_FrequencyRoundTrip(t *testing.T) {
	e, _ := newTestEngine(t)
	bucket := pixelBucket(e.Geometry())

	for f := MinHertz; f <= MaxHertz; f *= 1.07 {
		x := e.PixelXForFrequency(f)
		back := e.FrequencyForPixelX(x)
		if ratio := back / f; ratio > bucket || ratio < 1/bucket {
			t.Fatalf("f=%v: round trip %v outside one pixel bucket (ratio %v)", f, back, ratio)
		}
		if dx := math.Abs(e.PixelXForFrequency(back) - x); dx > 1 {
			t.Fatalf("f=%v: pixel round trip moved %v px", f, dx)
		}
	}
}

func TestTransforms_DBRoundTrip(t *testing.T) {
	e, _ := newTestEngine(t)
	for db := -MaxGainDB; db <= MaxGainDB; db += 0.25 {
		testutil.RequireNear(t, "dB round trip", e.DBForPixelY(e.PixelYForDB(db)), db, 1e-9)
	}

	g := e.Geometry()
	testutil.RequireNear(t, "top", e.PixelYForDB(MaxGainDB), g.BottomMargin, 1e-12)
	testutil.RequireNear(t, "bottom", e.PixelYForDB(-MaxGainDB), g.Baseline(), 1e-12)
}

func TestTransforms_HalfPixelSnap(t *testing.T) {
	e, _ := newTestEngine(t)
	x := e.PixelXForFrequency(MinHertz)
	if x != DefaultLeftMargin+0.5 {
		t.Fatalf("PixelXForFrequency(min) = %v, want %v", x, DefaultLeftMargin+0.5)
	}
	if frac := x - math.Floor(x); frac != 0.5 {
		t.Fatalf("x = %v is not on a pixel centre", x)
	}
}

func TestTransforms_ZeroSurface(t *testing.T) {
	e := New()
	if got := e.FrequencyForPixelX(100); got != MinHertz {
		t.Fatalf("FrequencyForPixelX on empty surface = %v", got)
	}
	if got := e.DBForPixelY(100); got != 0 {
		t.Fatalf("DBForPixelY on empty surface = %v", got)
	}
}

func TestSetFrequency_Clamps(t *testing.T) {
	e, rec := newTestEngine(t)

	e.SetFrequency(25000)
	if e.Frequency() != 20000 {
		t.Fatalf("frequency = %v, want 20000", e.Frequency())
	}
	e.SetResonance(-30)
	if e.Resonance() != -20 {
		t.Fatalf("resonance = %v, want -20", e.Resonance())
	}
	e.SetFrequency(1)
	if e.Frequency() != MinHertz {
		t.Fatalf("frequency = %v, want %v", e.Frequency(), MinHertz)
	}
	e.SetResonance(math.NaN())
	if e.Resonance() != -20 {
		t.Fatalf("NaN changed resonance to %v", e.Resonance())
	}

	if len(rec.events) != 0 {
		t.Fatalf("programmatic changes notified the delegate: %v", rec.kinds())
	}
}

func TestSetFrequency_KeepsEditPointInSync(t *testing.T) {
	e, _ := newTestEngine(t)
	e.SetFrequency(440)
	e.SetResonance(6)

	p := e.OperatingPoint()
	if p.EditX != e.PixelXForFrequency(440) || p.EditY != e.PixelYForDB(6) {
		t.Fatalf("edit point %v,%v out of sync", p.EditX, p.EditY)
	}

	e.SetSurface(1000, 600)
	p = e.OperatingPoint()
	if p.EditX != e.PixelXForFrequency(440) || p.EditY != e.PixelYForDB(6) {
		t.Fatal("edit point not re-projected after resize")
	}
}

func TestSetSurface_NotifiesDataChanged(t *testing.T) {
	e, rec := newTestEngine(t)
	e.SetSurface(640, 480)
	if got := rec.kinds(); len(got) != 1 || got[0] != "data" {
		t.Fatalf("events = %v, want [data]", got)
	}
}
