// Package controller binds a graph engine to a parameter store and a
// magnitude provider.
//
// Parameter observers fire on whatever goroutine wrote the value. The
// controller never touches the engine from there: it posts the update to
// its [Dispatcher], so every engine call happens on one UI goroutine.
// Gestures on the engine flow the other way, into parameter writes tagged
// with the controller's originator token so they do not echo back.
package controller

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-filterview/graph"
	"github.com/cwbudde/algo-filterview/param"
)

// ErrNotConnected is returned by operations that need a parameter store
// before Connect succeeded.
var ErrNotConnected = errors.New("controller: not connected")

// Parameters is the parameter store the controller edits.
type Parameters interface {
	Value(id param.ID) (float64, error)
	SetValue(id param.ID, v float64, kind param.EventKind, originator param.Token) error
	Observe(fn param.ObserverFunc, ids ...param.ID) param.Token
	RemoveObserver(tok param.Token)
	Format(id param.ID, v float64) string
	Parse(id param.ID, s string) (float64, error)
}

// MagnitudeProvider evaluates the linear magnitude response of the edited
// filter at each requested frequency.
type MagnitudeProvider interface {
	Magnitudes(freqs []float64) ([]float64, error)
}

// Controller is the editor for one filter. Apart from construction, all
// methods must run on the dispatcher's goroutine.
type Controller struct {
	engine   *graph.Engine
	dispatch Dispatcher
	renderer graph.Renderer
	log      *zap.Logger

	cutoffID    param.ID
	resonanceID param.ID

	params   Parameters
	provider MagnitudeProvider
	token    param.Token

	view          ViewConfiguration
	frequencyText string
	resonanceText string
}

// New attaches a controller to engine and registers itself as the engine's
// delegate.
func New(engine *graph.Engine, opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	c := &Controller{
		engine:      engine,
		dispatch:    cfg.dispatcher,
		renderer:    cfg.renderer,
		log:         cfg.logger,
		cutoffID:    cfg.cutoffID,
		resonanceID: cfg.resonanceID,
		view:        Expanded,
	}
	engine.SetDelegate(c)
	return c
}

// Engine returns the controlled engine. Pointer events from the host go
// straight to it.
func (c *Controller) Engine() *graph.Engine { return c.engine }

// Connected reports whether a parameter store is attached.
func (c *Controller) Connected() bool { return c.params != nil }

// Connect attaches the parameter store and magnitude provider, starts
// observing the cutoff and resonance parameters and syncs the view.
// Connecting an already connected controller does nothing.
func (c *Controller) Connect(params Parameters, provider MagnitudeProvider) error {
	if c.params != nil {
		return nil
	}
	for _, id := range []param.ID{c.cutoffID, c.resonanceID} {
		if _, err := params.Value(id); err != nil {
			return fmt.Errorf("controller: connect: %w", err)
		}
	}

	c.params = params
	c.provider = provider
	c.token = params.Observe(func(param.ID, float64, param.EventKind) {
		c.dispatch.Post(c.updateUI)
	}, c.cutoffID, c.resonanceID)

	c.log.Debug("connected to parameter store", zap.Uint64("token", uint64(c.token)))
	c.updateUI()
	return nil
}

// Disconnect stops observing the parameter store.
func (c *Controller) Disconnect() {
	if c.params == nil {
		return
	}
	c.params.RemoveObserver(c.token)
	c.params = nil
	c.provider = nil
	c.token = 0
}

// FrequencyText is the cutoff as the parameter store formats it.
func (c *Controller) FrequencyText() string { return c.frequencyText }

// ResonanceText is the resonance as the parameter store formats it.
func (c *Controller) ResonanceText() string { return c.resonanceText }

// SetFrequencyText parses user input into the cutoff parameter and returns
// the resulting display text. On a parse error the text is left unchanged.
func (c *Controller) SetFrequencyText(s string) (string, error) {
	return c.setText(c.cutoffID, s)
}

// SetResonanceText parses user input into the resonance parameter and
// returns the resulting display text.
func (c *Controller) SetResonanceText(s string) (string, error) {
	return c.setText(c.resonanceID, s)
}

func (c *Controller) setText(id param.ID, s string) (string, error) {
	if c.params == nil {
		return "", ErrNotConnected
	}
	v, err := c.params.Parse(id, s)
	if err != nil {
		return c.text(id), fmt.Errorf("controller: %w", err)
	}
	// No originator: the write is external to the graph and echoes back
	// through the observer like any host change.
	if err := c.params.SetValue(id, v, param.EventChange, 0); err != nil {
		return c.text(id), fmt.Errorf("controller: %w", err)
	}
	c.updateUI()
	return c.text(id), nil
}

func (c *Controller) text(id param.ID) string {
	if id == c.cutoffID {
		return c.frequencyText
	}
	return c.resonanceText
}

// Redraw pushes the current frame to the renderer.
func (c *Controller) Redraw() {
	if c.renderer == nil || !c.GraphVisible() {
		return
	}
	if err := c.engine.Render(c.renderer); err != nil {
		c.log.Warn("render failed", zap.Error(err))
	}
}

// updateUI copies parameter values into the engine and the text fields.
func (c *Controller) updateUI() {
	if c.params == nil {
		return
	}
	cutoff, err := c.params.Value(c.cutoffID)
	if err != nil {
		c.log.Error("read cutoff", zap.Error(err))
		return
	}
	resonance, err := c.params.Value(c.resonanceID)
	if err != nil {
		c.log.Error("read resonance", zap.Error(err))
		return
	}

	c.engine.SetFrequency(cutoff)
	c.engine.SetResonance(resonance)
	c.frequencyText = c.params.Format(c.cutoffID, cutoff)
	c.resonanceText = c.params.Format(c.resonanceID, resonance)

	c.refresh()
}

// refresh asks the provider for a new response and redraws. A failed
// query keeps the previous curve; the next change retries.
func (c *Controller) refresh() {
	if c.provider != nil {
		mags, err := c.provider.Magnitudes(c.engine.FrequencyData())
		switch {
		case err != nil:
			c.log.Debug("magnitude query failed, keeping previous curve", zap.Error(err))
		default:
			if err := c.engine.SetMagnitudes(mags); err != nil {
				c.log.Error("magnitude response rejected", zap.Error(err))
			}
		}
	}
	c.Redraw()
}

// setParameter writes a gesture value and mirrors it into the text field.
func (c *Controller) setParameter(id param.ID, v float64, kind param.EventKind, originator param.Token) {
	if c.params == nil {
		return
	}
	if err := c.params.SetValue(id, v, kind, originator); err != nil {
		c.log.Error("set parameter",
			zap.Uint32("id", uint32(id)),
			zap.Stringer("kind", kind),
			zap.Error(err))
		return
	}
	if stored, err := c.params.Value(id); err == nil {
		if id == c.cutoffID {
			c.frequencyText = c.params.Format(id, stored)
		} else {
			c.resonanceText = c.params.Format(id, stored)
		}
	}
}

// GestureBegan implements graph.Delegate.
func (c *Controller) GestureBegan(p graph.OperatingPoint) {
	c.setParameter(c.resonanceID, p.ResonanceDB, param.EventBegin, c.token)
	c.setParameter(c.cutoffID, p.FrequencyHz, param.EventBegin, c.token)
	c.refresh()
}

// FrequencyChanged implements graph.Delegate.
func (c *Controller) FrequencyChanged(hz float64) {
	c.setParameter(c.cutoffID, hz, param.EventChange, c.token)
	c.refresh()
}

// ResonanceChanged implements graph.Delegate.
func (c *Controller) ResonanceChanged(db float64) {
	c.setParameter(c.resonanceID, db, param.EventChange, c.token)
	c.refresh()
}

// FrequencyAndResonanceChanged implements graph.Delegate.
func (c *Controller) FrequencyAndResonanceChanged(hz, db float64) {
	c.setParameter(c.resonanceID, db, param.EventChange, c.token)
	c.setParameter(c.cutoffID, hz, param.EventChange, c.token)
	c.refresh()
}

// GestureEnded implements graph.Delegate. The release is written without an
// originator so the final values echo back through the observer.
func (c *Controller) GestureEnded(p graph.OperatingPoint) {
	c.setParameter(c.resonanceID, p.ResonanceDB, param.EventEnd, 0)
	c.setParameter(c.cutoffID, p.FrequencyHz, param.EventEnd, 0)
	c.Redraw()
}

// DataChanged implements graph.Delegate.
func (c *Controller) DataChanged() {
	c.refresh()
}

func zapView(v ViewConfiguration) zapcore.Field {
	return zap.Object("view", zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("name", v.Name)
		enc.AddFloat64("width", v.Width)
		enc.AddFloat64("height", v.Height)
		return nil
	}))
}
