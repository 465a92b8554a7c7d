// Package biquad provides the second-order IIR section the filter kernel
// runs on.
//
// A [Section] implements Direct Form II Transposed processing for one
// second-order section defined by [Coefficients]. Response helpers evaluate
// the transfer function on the unit circle, one frequency at a time or for a
// whole frequency list via [Coefficients.MagnitudeResponse].
//
// Coefficient design lives with the filter that needs it (see
// dsp/filter/resonant).
package biquad
