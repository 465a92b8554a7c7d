package response

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-filterview/dsp/filter/resonant"
	"github.com/cwbudde/algo-filterview/internal/testutil"
)

const sr = 44100.0

func TestFromImpulse_UnitImpulseIsFlat(t *testing.T) {
	ir := make([]float64, 64)
	ir[0] = 1

	got, err := FromImpulse(ir, sr, []float64{0, 100, 1000, 15000, sr / 2, sr})
	if err != nil {
		t.Fatalf("FromImpulse: %v", err)
	}
	for _, m := range got {
		testutil.RequireNear(t, "flat magnitude", m, 1, 1e-12)
	}
}

func TestAnalyzer_MatchesClosedForm(t *testing.T) {
	f, err := resonant.New(sr)
	if err != nil {
		t.Fatal(err)
	}
	f.SetParams(1000, 0)

	a, err := NewAnalyzer(8192, sr)
	if err != nil {
		t.Fatal(err)
	}

	freqs := []float64{100, 500, 1000, 2000, 8000, 16000}
	got, err := a.Magnitudes(f.ImpulseResponse(a.FFTSize()), freqs)
	if err != nil {
		t.Fatal(err)
	}

	for i, fr := range freqs {
		testutil.RequireNear(t, "measured magnitude", got[i], f.Magnitude(fr, sr), 1e-2)
	}
}

func TestAnalyzer_Errors(t *testing.T) {
	if _, err := NewAnalyzer(1000, sr); !errors.Is(err, ErrFFTSize) {
		t.Fatalf("non power of two: err = %v", err)
	}
	if _, err := NewAnalyzer(1024, 0); !errors.Is(err, ErrSampleRate) {
		t.Fatalf("zero sample rate: err = %v", err)
	}
	if _, err := FromImpulse(nil, sr, []float64{1}); !errors.Is(err, ErrEmptyImpulse) {
		t.Fatalf("empty impulse: err = %v", err)
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct{ in, want int }{{1, 2}, {2, 2}, {3, 4}, {1024, 1024}, {1025, 2048}}
	for _, tt := range tests {
		if got := nextPowerOf2(tt.in); got != tt.want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
