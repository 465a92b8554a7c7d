package graph

// Delegate receives user edits and layout changes from an Engine. All
// methods run synchronously on the goroutine driving the engine.
type Delegate interface {
	// GestureBegan fires when a pointer lands inside the plotting area.
	GestureBegan(p OperatingPoint)
	// FrequencyChanged fires when a drag moved only the frequency.
	FrequencyChanged(hz float64)
	// ResonanceChanged fires when a drag moved only the resonance.
	ResonanceChanged(db float64)
	// FrequencyAndResonanceChanged fires once when a drag moved both.
	FrequencyAndResonanceChanged(hz, db float64)
	// GestureEnded fires on pointer release, never on cancel.
	GestureEnded(p OperatingPoint)
	// DataChanged fires after a resize: FrequencyData has a new plan.
	DataChanged()
}

// PointerDown starts a drag if p lies inside the plotting area. The
// operating point jumps to p without a change notification, then
// GestureBegan reports it. It returns whether a gesture started.
func (e *Engine) PointerDown(p Point) bool {
	if e.dragging {
		return true
	}
	if !e.geom.Bounds().Contains(p) {
		return false
	}

	e.dragging = true
	e.point.EditX, e.point.EditY = e.clampPointer(p)
	e.setFrequency(clampFrequency(e.geom.FrequencyForPixelX(e.point.EditX)))
	e.setResonance(clampDB(e.geom.DBForPixelY(e.point.EditY)))

	if e.delegate != nil {
		e.delegate.GestureBegan(e.point)
	}
	return true
}

// PointerMove drags the edit point to p, clamped to the graph surface, and
// reports whatever changed.
func (e *Engine) PointerMove(p Point) {
	if !e.dragging {
		return
	}
	e.point.EditX, e.point.EditY = e.clampPointer(p)
	e.updateFrequencyAndResonance()
}

// PointerUp finishes a drag at p and reports GestureEnded.
func (e *Engine) PointerUp(p Point) {
	if !e.dragging {
		return
	}
	e.point.EditX, e.point.EditY = e.clampPointer(p)
	e.updateFrequencyAndResonance()

	e.dragging = false
	e.syncEditPoint()

	if e.delegate != nil {
		e.delegate.GestureEnded(e.point)
	}
}

// PointerCancel abandons a drag without notifying the delegate. The
// operating point keeps its last reported value.
func (e *Engine) PointerCancel() {
	if !e.dragging {
		return
	}
	e.dragging = false
	e.syncEditPoint()
}

// clampPointer keeps a drag position on the graph surface.
func (e *Engine) clampPointer(p Point) (x, y float64) {
	g := e.geom
	x = min(max(p.X, 0), g.Width+g.LeftMargin)
	y = min(max(p.Y, 0), g.Height+g.BottomMargin)
	return x, y
}

// updateFrequencyAndResonance derives the operating point from the edit
// point. A move that changes both axes is reported as one combined event;
// otherwise at most one single-axis event is sent.
func (e *Engine) updateFrequencyAndResonance() {
	hz := clampFrequency(e.geom.FrequencyForPixelX(e.point.EditX))
	db := clampDB(e.geom.DBForPixelY(e.point.EditY))

	freqChanged := hz != e.point.FrequencyHz
	resChanged := db != e.point.ResonanceDB

	switch {
	case freqChanged && resChanged:
		e.setFrequency(hz)
		e.setResonance(db)
		if e.delegate != nil {
			e.delegate.FrequencyAndResonanceChanged(hz, db)
		}
	case freqChanged:
		e.setFrequency(hz)
		if e.delegate != nil {
			e.delegate.FrequencyChanged(hz)
		}
	case resChanged:
		e.setResonance(db)
		if e.delegate != nil {
			e.delegate.ResonanceChanged(db)
		}
	}
}
