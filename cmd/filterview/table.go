package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-filterview/graph"
	"github.com/cwbudde/algo-filterview/param"
	"github.com/cwbudde/algo-filterview/unit"
)

// PresetsCmd lists the factory presets.
type PresetsCmd struct{}

// Run prints the preset table.
func (c *PresetsCmd) Run(g *Globals) error {
	u, err := newUnit(g, FilterFlags{Preset: -1, Cutoff: 1000}, zap.NewNop())
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Factory presets"))
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "#\tName\tCutoff [Hz]\tResonance [dB]\n-\t----\t-----------\t--------------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range u.FactoryPresets() {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\n", p.Number, p.Name, p.CutoffHz, p.ResonanceDB); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

// ResponseCmd prints |H(f)| at log-spaced frequencies across the graph
// range.
type ResponseCmd struct {
	FilterFlags `embed:""`

	Points int `default:"24" help:"Number of frequencies between 12 Hz and 20 kHz."`
}

// Run prints the response table.
func (c *ResponseCmd) Run(g *Globals) error {
	logger, err := newLogger(g.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	u, err := newUnit(g, c.FilterFlags, logger)
	if err != nil {
		return err
	}

	freqs := logSpaced(graph.MinHertz, graph.MaxHertz, max(c.Points, 2))
	mags, err := u.Magnitudes(freqs)
	if err != nil {
		return err
	}

	cutoff, res, err := readFilterValues(u.Parameters())
	if err != nil {
		return err
	}
	fmt.Printf("%s %s  %s %s  %s %s\n",
		keyStyle.Render("Cutoff:"), valueStyle.Render(graph.FormatFrequency(cutoff)+hzUnit(cutoff)),
		keyStyle.Render("Resonance:"), valueStyle.Render(fmt.Sprintf("%.2f dB", res)),
		keyStyle.Render("Mode:"), valueStyle.Render(u.Mode().String()))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "Frequency [Hz]\tMagnitude\tGain [dB]\t\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, f := range freqs {
		if _, err := fmt.Fprintf(tw, "%.1f\t%.6f\t%.2f\t\n", f, mags[i], 20*math.Log10(mags[i])); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

type valueReader interface {
	Value(id param.ID) (float64, error)
}

// readFilterValues returns the stored cutoff and resonance.
func readFilterValues(p valueReader) (cutoff, res float64, err error) {
	if cutoff, err = p.Value(unit.CutoffID); err != nil {
		return 0, 0, fmt.Errorf("read cutoff: %w", err)
	}
	if res, err = p.Value(unit.ResonanceID); err != nil {
		return 0, 0, fmt.Errorf("read resonance: %w", err)
	}
	return cutoff, res, nil
}

func logSpaced(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	ratio := math.Pow(hi/lo, 1/float64(n-1))
	f := lo
	for i := range out {
		out[i] = f
		f *= ratio
	}
	out[n-1] = hi
	return out
}

func hzUnit(v float64) string {
	if v >= 1000 {
		return " kHz"
	}
	return " Hz"
}
