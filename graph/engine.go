package graph

import "math"

// OperatingPoint is the edited (frequency, resonance) pair together with
// its projection onto the graph.
type OperatingPoint struct {
	FrequencyHz float64
	ResonanceDB float64
	EditX       float64
	EditY       float64
}

// Engine holds the state of one response graph. It is not safe for
// concurrent use; drive it from a single UI goroutine.
type Engine struct {
	margins  margins
	geom     Geometry
	point    OperatingPoint
	dragging bool

	plan  []float64
	curve Polygon

	delegate Delegate
}

// New returns an engine at the minimum frequency and 0 dB.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	e := &Engine{
		margins:  cfg.margins,
		delegate: cfg.delegate,
		point:    OperatingPoint{FrequencyHz: MinHertz, ResonanceDB: 0},
	}
	e.geom = newGeometry(cfg.width, cfg.height, e.margins)
	e.syncEditPoint()
	return e
}

// SetDelegate replaces the gesture delegate. A nil delegate silences all
// notifications.
func (e *Engine) SetDelegate(d Delegate) { e.delegate = d }

// SetSurface lays the graph out for a new surface size. The cached sample
// plan is dropped and the delegate is told that fresh magnitudes are needed.
func (e *Engine) SetSurface(width, height float64) {
	e.geom = newGeometry(width, height, e.margins)
	e.plan = nil
	e.syncEditPoint()

	if e.delegate != nil {
		e.delegate.DataChanged()
	}
}

// Geometry returns the current layout.
func (e *Engine) Geometry() Geometry { return e.geom }

// OperatingPoint returns the current operating point.
func (e *Engine) OperatingPoint() OperatingPoint { return e.point }

// Frequency returns the current cutoff in Hz.
func (e *Engine) Frequency() float64 { return e.point.FrequencyHz }

// Resonance returns the current resonance in dB.
func (e *Engine) Resonance() float64 { return e.point.ResonanceDB }

// Active reports whether a gesture is in progress.
func (e *Engine) Active() bool { return e.dragging }

// SetFrequency moves the operating point to hz, clamped to
// [MinHertz, MaxHertz]. The delegate is not notified. NaN is ignored.
func (e *Engine) SetFrequency(hz float64) {
	if math.IsNaN(hz) {
		return
	}
	e.setFrequency(clampFrequency(hz))
}

// SetResonance moves the operating point to db, clamped to +/-MaxGainDB.
// The delegate is not notified. NaN is ignored.
func (e *Engine) SetResonance(db float64) {
	if math.IsNaN(db) {
		return
	}
	e.setResonance(clampDB(db))
}

// PixelXForFrequency maps hz to graph space using the current layout.
func (e *Engine) PixelXForFrequency(hz float64) float64 { return e.geom.PixelXForFrequency(hz) }

// FrequencyForPixelX maps x to Hz using the current layout.
func (e *Engine) FrequencyForPixelX(x float64) float64 { return e.geom.FrequencyForPixelX(x) }

// PixelYForDB maps db to graph space using the current layout.
func (e *Engine) PixelYForDB(db float64) float64 { return e.geom.PixelYForDB(db) }

// DBForPixelY maps y to dB using the current layout.
func (e *Engine) DBForPixelY(y float64) float64 { return e.geom.DBForPixelY(y) }

func (e *Engine) setFrequency(hz float64) {
	e.point.FrequencyHz = hz
	e.point.EditX = e.geom.PixelXForFrequency(hz)
}

func (e *Engine) setResonance(db float64) {
	e.point.ResonanceDB = db
	e.point.EditY = e.geom.PixelYForDB(db)
}

func (e *Engine) syncEditPoint() {
	e.point.EditX = e.geom.PixelXForFrequency(e.point.FrequencyHz)
	e.point.EditY = e.geom.PixelYForDB(e.point.ResonanceDB)
}
