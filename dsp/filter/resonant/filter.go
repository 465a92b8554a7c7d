package resonant

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-filterview/dsp/filter/biquad"
)

// ErrSampleRate is returned for non-positive sample rates.
var ErrSampleRate = errors.New("resonant: sample rate must be > 0")

// Filter is a resonant lowpass running on one biquad section.
// It is not safe for concurrent use; one Filter per audio channel.
type Filter struct {
	*biquad.Section

	sampleRate float64

	lastCutoff    float64
	lastResonance float64
}

// New returns a Filter at the given sample rate set to the default
// cutoff and resonance.
func New(sampleRate float64) (*Filter, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrSampleRate, sampleRate)
	}
	f := &Filter{sampleRate: sampleRate, Section: biquad.NewSection(biquad.Coefficients{})}
	f.Reset()
	f.SetParams(DefaultCutoffHz, DefaultResonanceDB)
	return f, nil
}

// SampleRate returns the rate the filter was created for.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// SetParams bounds cutoffHz and resonanceDB and recomputes the coefficients
// if either changed since the last call.
func (f *Filter) SetParams(cutoffHz, resonanceDB float64) {
	cutoffHz = max(cutoffHz, MinCutoffHz)
	resonanceDB = min(max(resonanceDB, MinResonanceDB), MaxResonanceDB)

	cutoff := Normalize(cutoffHz, f.sampleRate)
	if cutoff == f.lastCutoff && resonanceDB == f.lastResonance {
		return
	}

	f.Coefficients = Design(cutoff, resonanceDB)
	f.lastCutoff = cutoff
	f.lastResonance = resonanceDB
}

// Reset clears the delay line. The next SetParams call always recomputes
// the coefficients.
func (f *Filter) Reset() {
	f.Section.Reset()
	f.lastCutoff = -1
	f.lastResonance = -1
}
