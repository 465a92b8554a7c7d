package unit

import "go.uber.org/zap"

// DefaultSampleRate is used when no sample rate is configured.
const DefaultSampleRate = 44100.0

// ResponseMode selects how [Unit.Magnitudes] evaluates the filter.
type ResponseMode int

const (
	// ResponseAnalytic evaluates the transfer function directly.
	ResponseAnalytic ResponseMode = iota
	// ResponseMeasured runs the kernel on an impulse and transforms the result.
	ResponseMeasured
)

func (m ResponseMode) String() string {
	if m == ResponseMeasured {
		return "measured"
	}
	return "analytic"
}

const defaultImpulseLength = 8192

type config struct {
	sampleRate    float64
	mode          ResponseMode
	impulseLength int
	logger        *zap.Logger
}

// Option configures a Unit.
type Option func(*config)

// WithSampleRate sets the rate the unit runs at. The cutoff parameter's
// upper bound is the Nyquist frequency of this rate.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) { cfg.sampleRate = sampleRate }
}

// WithMeasuredResponse makes Magnitudes measure an impulse response of
// impulseLength samples instead of evaluating the transfer function.
// Non-positive lengths select the default of 8192 samples.
func WithMeasuredResponse(impulseLength int) Option {
	return func(cfg *config) {
		cfg.mode = ResponseMeasured
		if impulseLength > 0 {
			cfg.impulseLength = impulseLength
		}
	}
}

// WithLogger sets the logger for lifecycle and preset events.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func defaultConfig() config {
	return config{
		sampleRate:    DefaultSampleRate,
		mode:          ResponseAnalytic,
		impulseLength: defaultImpulseLength,
		logger:        zap.NewNop(),
	}
}
