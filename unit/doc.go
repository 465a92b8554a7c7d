// Package unit is the filter effect the response graph edits: a resonant
// lowpass with a cutoff and a resonance parameter, two factory presets and
// an initialize/uninitialize lifecycle.
//
// A [Unit] doubles as the graph's magnitude provider. [Unit.Magnitudes]
// evaluates the response for the current parameter values either in closed
// form or, with [WithMeasuredResponse], by running the kernel and measuring
// its impulse response with an FFT.
package unit
