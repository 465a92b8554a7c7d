package resonant

import (
	"math"

	"github.com/cwbudde/algo-filterview/dsp/filter/biquad"
)

const (
	// MinCutoffHz is the lowest cutoff accepted by [Filter.SetParams].
	MinCutoffHz = 12.0
	// DefaultCutoffHz is the cutoff a freshly created unit starts with.
	DefaultCutoffHz = 1000.0
	// MinResonanceDB and MaxResonanceDB bound the resonance parameter.
	MinResonanceDB = -20.0
	MaxResonanceDB = 20.0
	// DefaultResonanceDB is the neutral resonance.
	DefaultResonanceDB = 0.0
	// MaxNormalizedCutoff is the highest cutoff relative to Nyquist.
	MaxNormalizedCutoff = 0.99
)

// Design computes lowpass coefficients for a cutoff normalized to Nyquist
// (0..1) and a resonance in dB. Positive resonance boosts the band around
// the cutoff, negative resonance flattens it. DC gain is always 1.
func Design(normalizedCutoff, resonanceDB float64) biquad.Coefficients {
	r := math.Pow(10, 0.05*-resonanceDB)

	k := 0.5 * r * math.Sin(math.Pi*normalizedCutoff)
	c1 := 0.5 * (1 - k) / (1 + k)
	c2 := (0.5 + c1) * math.Cos(math.Pi*normalizedCutoff)
	c3 := (0.5 + c1 - c2) * 0.25

	return biquad.Coefficients{
		B0: 2 * c3,
		B1: 4 * c3,
		B2: 2 * c3,
		A1: -2 * c2,
		A2: 2 * c1,
	}
}

// Normalize converts a cutoff in Hz to the normalized cutoff used by
// [Design], clipped to [MaxNormalizedCutoff].
func Normalize(cutoffHz, sampleRate float64) float64 {
	return min(2*cutoffHz/sampleRate, MaxNormalizedCutoff)
}
