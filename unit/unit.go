package unit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-filterview/dsp/filter/resonant"
	"github.com/cwbudde/algo-filterview/measure/response"
	"github.com/cwbudde/algo-filterview/param"
)

// Parameter IDs in the unit's tree.
const (
	CutoffID    param.ID = 0
	ResonanceID param.ID = 1
)

// ErrUninitialized is returned by Magnitudes and Process before Initialize.
var ErrUninitialized = errors.New("unit: not initialized")

// Unit is a resonant lowpass effect with observable parameters.
//
// All methods are safe for concurrent use. Magnitudes never touches the
// running kernel, so response queries do not contend with Process.
type Unit struct {
	cfg config
	log *zap.Logger

	tree      *param.Tree
	cutoff    *param.Parameter
	resonance *param.Parameter

	initialized atomic.Bool
	preset      atomic.Int64

	kernelMu sync.Mutex
	kernel   *resonant.Filter
}

// New builds a unit with default parameter values.
func New(opts ...Option) (*Unit, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	kernel, err := resonant.New(cfg.sampleRate)
	if err != nil {
		return nil, fmt.Errorf("unit: %w", err)
	}

	cutoff := param.New(CutoffID, "Cutoff", "Hz",
		resonant.MinCutoffHz, cfg.sampleRate/2, resonant.DefaultCutoffHz).
		WithFormatter(nil, parseWithUnit("Hz"))
	resonance := param.New(ResonanceID, "Resonance", "dB",
		resonant.MinResonanceDB, resonant.MaxResonanceDB, resonant.DefaultResonanceDB).
		WithFormatter(nil, parseWithUnit("dB"))

	tree, err := param.NewTree(cutoff, resonance)
	if err != nil {
		return nil, fmt.Errorf("unit: %w", err)
	}

	u := &Unit{
		cfg:       cfg,
		log:       cfg.logger,
		tree:      tree,
		cutoff:    cutoff,
		resonance: resonance,
		kernel:    kernel,
	}
	u.preset.Store(noPreset)
	return u, nil
}

// Parameters returns the unit's parameter tree.
func (u *Unit) Parameters() *param.Tree { return u.tree }

// SampleRate returns the configured sample rate.
func (u *Unit) SampleRate() float64 { return u.cfg.sampleRate }

// Mode returns how Magnitudes evaluates the filter.
func (u *Unit) Mode() ResponseMode { return u.cfg.mode }

// Initialize prepares the unit for rendering and response queries.
func (u *Unit) Initialize() {
	u.kernelMu.Lock()
	u.kernel.Reset()
	u.kernelMu.Unlock()

	if !u.initialized.Swap(true) {
		u.log.Debug("unit initialized",
			zap.Float64("sample_rate", u.cfg.sampleRate),
			zap.Stringer("response_mode", u.cfg.mode))
	}
}

// Uninitialize releases render resources. Magnitudes fails until the next
// Initialize.
func (u *Unit) Uninitialize() {
	if u.initialized.Swap(false) {
		u.log.Debug("unit uninitialized")
	}
}

// Initialized reports whether Initialize has been called.
func (u *Unit) Initialized() bool { return u.initialized.Load() }

// Magnitudes returns the linear magnitude response at each of freqs for the
// current parameter values.
func (u *Unit) Magnitudes(freqs []float64) ([]float64, error) {
	if !u.initialized.Load() {
		return nil, ErrUninitialized
	}

	cutoff := u.cutoff.Value()
	res := u.resonance.Value()

	if u.cfg.mode == ResponseMeasured {
		f, err := resonant.New(u.cfg.sampleRate)
		if err != nil {
			return nil, fmt.Errorf("unit: %w", err)
		}
		f.SetParams(cutoff, res)

		mags, err := response.FromImpulse(f.ImpulseResponse(u.cfg.impulseLength), u.cfg.sampleRate, freqs)
		if err != nil {
			return nil, fmt.Errorf("unit: measure response: %w", err)
		}
		return mags, nil
	}

	c := resonant.Design(resonant.Normalize(max(cutoff, resonant.MinCutoffHz), u.cfg.sampleRate), res)
	mags := make([]float64, len(freqs))
	c.MagnitudeResponse(mags, freqs, u.cfg.sampleRate)
	return mags, nil
}

// Process filters buf in place with the current parameter values.
func (u *Unit) Process(buf []float64) error {
	if !u.initialized.Load() {
		return ErrUninitialized
	}

	u.kernelMu.Lock()
	defer u.kernelMu.Unlock()
	u.kernel.SetParams(u.cutoff.Value(), u.resonance.Value())
	u.kernel.ProcessBlock(buf)
	return nil
}

// parseWithUnit accepts a plain number optionally followed by unit.
func parseWithUnit(unit string) func(string) (float64, error) {
	return func(s string) (float64, error) {
		s = strings.TrimSpace(s)
		if len(s) >= len(unit) && strings.EqualFold(s[len(s)-len(unit):], unit) {
			s = strings.TrimSpace(s[:len(s)-len(unit)])
		}
		return strconv.ParseFloat(s, 64)
	}
}
