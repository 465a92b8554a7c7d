// Package graph implements the interactive frequency/resonance response
// graph: a log-frequency X axis over 12 Hz..20 kHz, a linear +/-20 dB Y
// axis, and one draggable operating point.
//
// [Engine] owns all graph state and is meant to be driven from a single
// goroutine (the UI loop). It converts between pixels and physical units,
// builds the frequency list a magnitude provider should evaluate
// ([Engine.FrequencyData]), turns the returned magnitudes into a closed
// polygon ([Engine.SetMagnitudes]), and interprets pointer gestures,
// reporting user edits to a [Delegate]. Programmatic changes made through
// [Engine.SetFrequency] and [Engine.SetResonance] are never reported back,
// so syncing from a parameter store cannot loop.
//
// Drawing is left to a [Renderer], which receives complete [Frame]
// snapshots.
//
// Coordinates: the engine works in "graph space", where X matches surface
// pixels and the plotting area spans Y in
// [BottomMargin, BottomMargin+Height]. [Geometry.ToView] and
// [Geometry.FromView] convert to and from top-left based surface pixels.
package graph
