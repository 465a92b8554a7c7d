package controller

import (
	"go.uber.org/zap"

	"github.com/cwbudde/algo-filterview/graph"
	"github.com/cwbudde/algo-filterview/param"
)

// Default parameter addresses of the filter unit.
const (
	DefaultCutoffID    param.ID = 0
	DefaultResonanceID param.ID = 1
)

type config struct {
	logger      *zap.Logger
	dispatcher  Dispatcher
	renderer    graph.Renderer
	cutoffID    param.ID
	resonanceID param.ID
}

// Option configures a Controller.
type Option func(*config)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithDispatcher sets how parameter observations reach the UI goroutine.
// The default is [Inline].
func WithDispatcher(d Dispatcher) Option {
	return func(cfg *config) {
		if d != nil {
			cfg.dispatcher = d
		}
	}
}

// WithRenderer sets a renderer that receives a frame after every visible
// change.
func WithRenderer(r graph.Renderer) Option {
	return func(cfg *config) { cfg.renderer = r }
}

// WithParameterIDs overrides the addresses of the cutoff and resonance
// parameters.
func WithParameterIDs(cutoff, resonance param.ID) Option {
	return func(cfg *config) {
		cfg.cutoffID = cutoff
		cfg.resonanceID = resonance
	}
}

func defaultConfig() config {
	return config{
		logger:      zap.NewNop(),
		dispatcher:  Inline{},
		cutoffID:    DefaultCutoffID,
		resonanceID: DefaultResonanceID,
	}
}
