package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-filterview/param"
	"github.com/cwbudde/algo-filterview/unit"
)

// newLogger writes development logs to stderr when verbose, warnings and
// above otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// newFileLogger appends JSON logs to path. The terminal UI owns stderr, so
// it logs here instead.
func newFileLogger(path string) (*zap.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(f), zap.DebugLevel)
	return zap.New(core, zap.AddCaller()), f.Close, nil
}

// FilterFlags selects the filter state a command starts from.
type FilterFlags struct {
	Cutoff    float64 `default:"1000" help:"Cutoff frequency in Hz."`
	Resonance float64 `default:"0" help:"Resonance in dB (-20..20)."`
	Preset    int     `default:"-1" help:"Factory preset number. Overrides --cutoff and --resonance."`
}

// newUnit builds an initialized unit in the state described by f.
func newUnit(g *Globals, f FilterFlags, logger *zap.Logger) (*unit.Unit, error) {
	opts := []unit.Option{
		unit.WithSampleRate(g.SampleRate),
		unit.WithLogger(logger),
	}
	if g.Measured {
		opts = append(opts, unit.WithMeasuredResponse(0))
	}

	u, err := unit.New(opts...)
	if err != nil {
		return nil, err
	}

	if f.Preset >= 0 {
		if err := u.SelectPreset(f.Preset); err != nil {
			return nil, err
		}
	} else {
		tree := u.Parameters()
		if err := tree.SetValue(unit.CutoffID, f.Cutoff, param.EventChange, 0); err != nil {
			return nil, err
		}
		if err := tree.SetValue(unit.ResonanceID, f.Resonance, param.EventChange, 0); err != nil {
			return nil, err
		}
	}

	u.Initialize()
	return u, nil
}
