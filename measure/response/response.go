// Package response measures filter frequency responses numerically.
//
// An [Analyzer] transforms an impulse response with an FFT and samples the
// resulting magnitude spectrum at arbitrary frequencies by interpolating
// between bins. It backs the "measured" response mode of the filter unit,
// which cross-checks the closed-form magnitude against what the running
// kernel actually does.
package response

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmptyImpulse is returned when no impulse response samples are given.
	ErrEmptyImpulse = errors.New("response: empty impulse response")
	// ErrSampleRate is returned for non-positive sample rates.
	ErrSampleRate = errors.New("response: sample rate must be > 0")
	// ErrFFTSize is returned for analyzer sizes that are not a power of two >= 2.
	ErrFFTSize = errors.New("response: fft size must be a power of two >= 2")
)

// Analyzer evaluates magnitude responses with a fixed FFT size.
// It reuses its buffers and is not safe for concurrent use.
type Analyzer struct {
	sampleRate float64
	fftSize    int

	plan *algofft.Plan[complex128]

	in   []complex128
	out  []complex128
	re   []float64
	im   []float64
	mags []float64
}

// NewAnalyzer creates an analyzer for impulse responses of up to fftSize
// samples.
func NewAnalyzer(fftSize int, sampleRate float64) (*Analyzer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrSampleRate, sampleRate)
	}
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrFFTSize, fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	bins := fftSize/2 + 1
	return &Analyzer{
		sampleRate: sampleRate,
		fftSize:    fftSize,
		plan:       plan,
		in:         make([]complex128, fftSize),
		out:        make([]complex128, fftSize),
		re:         make([]float64, bins),
		im:         make([]float64, bins),
		mags:       make([]float64, bins),
	}, nil
}

// FFTSize returns the transform length.
func (a *Analyzer) FFTSize() int { return a.fftSize }

// BinHz returns the frequency spacing between bins.
func (a *Analyzer) BinHz() float64 { return a.sampleRate / float64(a.fftSize) }

// Magnitudes returns |H(f)| for every entry of freqs, estimated from ir.
// Samples of ir beyond the FFT size are ignored; shorter responses are
// zero padded. Frequencies outside [0, Nyquist] are clamped.
func (a *Analyzer) Magnitudes(ir, freqs []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyImpulse
	}

	for i := range a.in {
		a.in[i] = 0
	}
	n := min(len(ir), a.fftSize)
	for i := 0; i < n; i++ {
		a.in[i] = complex(ir[i], 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("response: forward transform: %w", err)
	}

	for k := range a.re {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}
	vecmath.Magnitude(a.mags, a.re, a.im)

	out := make([]float64, len(freqs))
	a.interpolate(out, freqs)
	return out, nil
}

func (a *Analyzer) interpolate(dst, freqs []float64) {
	lastBin := len(a.mags) - 1
	nyquist := a.sampleRate * 0.5
	binHz := a.BinHz()

	for i, f := range freqs {
		f = min(max(f, 0), nyquist)

		bin := f / binHz
		if bin >= float64(lastBin) {
			dst[i] = a.mags[lastBin]
			continue
		}

		base := int(bin)
		frac := bin - float64(base)
		m0 := a.mags[base]
		m1 := a.mags[base+1]
		dst[i] = m0 + frac*(m1-m0)
	}
}

// FromImpulse is a one-shot helper that sizes an [Analyzer] to ir and
// evaluates freqs.
func FromImpulse(ir []float64, sampleRate float64, freqs []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyImpulse
	}
	a, err := NewAnalyzer(nextPowerOf2(len(ir)), sampleRate)
	if err != nil {
		return nil, err
	}
	return a.Magnitudes(ir, freqs)
}

func nextPowerOf2(n int) int {
	p := 2
	for p < n {
		p <<= 1
	}
	return p
}
