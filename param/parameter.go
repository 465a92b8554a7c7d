// Package param implements the parameter store the graph controller talks
// to: a tree of named, bounded parameters with lock-free values, gesture
// event kinds and observers that can be told apart by originator token.
package param

import (
	"math"
	"strconv"
	"sync/atomic"
)

// ID addresses a parameter inside a [Tree].
type ID uint32

// EventKind classifies a value write by where it sits in a user gesture.
type EventKind int

const (
	// EventChange is an ordinary value change, including automation.
	EventChange EventKind = iota
	// EventBegin opens a gesture (touch down on a control).
	EventBegin
	// EventEnd closes a gesture (release).
	EventEnd
)

func (k EventKind) String() string {
	switch k {
	case EventBegin:
		return "begin"
	case EventEnd:
		return "end"
	default:
		return "change"
	}
}

// Parameter describes one automatable value. The value itself is stored
// atomically so audio, host and UI goroutines can read it without locks.
type Parameter struct {
	ID      ID
	Name    string
	Unit    string
	Min     float64
	Max     float64
	Default float64

	value atomic.Uint64

	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)
}

// New returns a parameter initialised to its default value.
func New(id ID, name, unit string, minValue, maxValue, def float64) *Parameter {
	p := &Parameter{
		ID:      id,
		Name:    name,
		Unit:    unit,
		Min:     minValue,
		Max:     maxValue,
		Default: def,
	}
	p.store(p.Clamp(def))
	return p
}

// WithFormatter installs custom value formatting and parsing. Either
// function may be nil to keep the default.
func (p *Parameter) WithFormatter(format func(float64) string, parse func(string) (float64, error)) *Parameter {
	p.formatFunc = format
	p.parseFunc = parse
	return p
}

// Value returns the current plain value.
func (p *Parameter) Value() float64 {
	return math.Float64frombits(p.value.Load())
}

func (p *Parameter) store(v float64) {
	p.value.Store(math.Float64bits(v))
}

// Clamp bounds v to [Min, Max].
func (p *Parameter) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return p.Default
	}
	return min(max(v, p.Min), p.Max)
}

// Format renders v for display.
func (p *Parameter) Format(v float64) string {
	if p.formatFunc != nil {
		return p.formatFunc(v)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Parse converts user text into a plain value. The result is not clamped.
func (p *Parameter) Parse(s string) (float64, error) {
	if p.parseFunc != nil {
		return p.parseFunc(s)
	}
	return strconv.ParseFloat(s, 64)
}
