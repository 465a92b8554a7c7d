package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// Response computes the complex frequency response H(e^jw) of a biquad
// at the given frequency (Hz) and sample rate (Hz).
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(c.B0, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w
	den := complex(1, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w
	return num / den
}

// MagnitudeSquared returns |H(f)|^2 using a closed-form expression.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw
	return num / den
}

// Magnitude returns |H(f)|. Unlike the square root of MagnitudeSquared it
// stays non-negative at response zeros.
func (c *Coefficients) Magnitude(freqHz, sampleRate float64) float64 {
	numRe, numIm, denRe, denIm := c.evaluate(freqHz, sampleRate)
	return math.Hypot(numRe, numIm) / math.Hypot(denRe, denIm)
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// MagnitudeResponse writes |H(f)| for every entry of freqs into dst.
// dst must be at least as long as freqs.
func (c *Coefficients) MagnitudeResponse(dst, freqs []float64, sampleRate float64) {
	n := len(freqs)
	if n == 0 {
		return
	}
	_ = dst[n-1]

	scratch := make([]float64, 5*n)
	numRe, numIm := scratch[:n], scratch[n:2*n]
	denRe, denIm := scratch[2*n:3*n], scratch[3*n:4*n]
	denMag := scratch[4*n:]

	for i, f := range freqs {
		numRe[i], numIm[i], denRe[i], denIm[i] = c.evaluate(f, sampleRate)
	}

	vecmath.Magnitude(dst[:n], numRe, numIm)
	vecmath.Magnitude(denMag, denRe, denIm)

	for i := range denMag {
		dst[i] /= denMag[i]
	}
}

// evaluate returns numerator and denominator multiplied through by z^2,
// with z on the unit circle. The common factor cancels in the ratio.
func (c *Coefficients) evaluate(freqHz, sampleRate float64) (numRe, numIm, denRe, denIm float64) {
	w := 2 * math.Pi * freqHz / sampleRate
	zr, zi := math.Cos(w), math.Sin(w)

	z2r := zr*zr - zi*zi
	z2i := 2 * zr * zi

	numRe = c.B0*z2r + c.B1*zr + c.B2
	numIm = c.B0*z2i + c.B1*zi
	denRe = z2r + c.A1*zr + c.A2
	denIm = z2i + c.A1*zi
	return numRe, numIm, denRe, denIm
}

// ImpulseResponse computes n samples of the impulse response h[n]
// by feeding an impulse through the section. The filter state is
// saved and restored so this method does not modify the section.
func (s *Section) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	saved := s.State()
	s.Reset()
	ir := make([]float64, n)
	ir[0] = s.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = s.ProcessSample(0)
	}
	s.SetState(saved)
	return ir
}
