// Package resonant provides the resonant second-order lowpass filter whose
// frequency response the graph engine draws.
//
// The filter is parameterised by a cutoff frequency in Hz and a resonance in
// dB. [Design] turns those into biquad coefficients; a [Filter] wraps one
// biquad section and recomputes its coefficients only when the parameters
// change.
package resonant
