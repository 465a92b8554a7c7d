package unit

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-filterview/param"
)

// ErrUnknownPreset is returned by SelectPreset for numbers outside the
// factory preset list.
var ErrUnknownPreset = errors.New("unit: unknown preset")

const noPreset = -1

// Preset is a named set of parameter values.
type Preset struct {
	Number      int
	Name        string
	CutoffHz    float64
	ResonanceDB float64
}

var factoryPresets = []Preset{
	{Number: 0, Name: "Preset One", CutoffHz: 200, ResonanceDB: -5},
	{Number: 1, Name: "Preset Two", CutoffHz: 1000, ResonanceDB: 10},
}

// FactoryPresets lists the built-in presets.
func (u *Unit) FactoryPresets() []Preset {
	out := make([]Preset, len(factoryPresets))
	copy(out, factoryPresets)
	return out
}

// CurrentPreset returns the last selected preset, if any.
func (u *Unit) CurrentPreset() (Preset, bool) {
	n := u.preset.Load()
	if n < 0 || int(n) >= len(factoryPresets) {
		return Preset{}, false
	}
	return factoryPresets[n], true
}

// SelectPreset applies factory preset number. Observers of both parameters
// are notified, as for any other external change.
func (u *Unit) SelectPreset(number int) error {
	if number < 0 || number >= len(factoryPresets) {
		return fmt.Errorf("%w: %d", ErrUnknownPreset, number)
	}
	p := factoryPresets[number]

	if err := u.tree.SetValue(CutoffID, p.CutoffHz, param.EventChange, 0); err != nil {
		return fmt.Errorf("unit: apply preset %q: %w", p.Name, err)
	}
	if err := u.tree.SetValue(ResonanceID, p.ResonanceDB, param.EventChange, 0); err != nil {
		return fmt.Errorf("unit: apply preset %q: %w", p.Name, err)
	}
	u.preset.Store(int64(number))

	u.log.Debug("preset selected",
		zap.Int("number", p.Number),
		zap.String("name", p.Name))
	return nil
}
