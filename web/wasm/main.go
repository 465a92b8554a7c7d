//go:build js && wasm

package main

import (
	"bytes"
	"syscall/js"

	"github.com/cwbudde/algo-filterview/controller"
	"github.com/cwbudde/algo-filterview/graph"
	"github.com/cwbudde/algo-filterview/render/svg"
	"github.com/cwbudde/algo-filterview/unit"
)

var (
	ctrl     *controller.Controller
	filter   *unit.Unit
	onFrame  js.Value
	funcs    []js.Func
	document bytes.Buffer
)

// frameSink renders frames to SVG and hands them to the page callback.
type frameSink struct{}

func (frameSink) Render(f graph.Frame) error {
	document.Reset()
	if err := svg.New(&document).Render(f); err != nil {
		return err
	}
	if onFrame.Type() == js.TypeFunction {
		onFrame.Invoke(document.String())
	}
	return nil
}

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		sr := unit.DefaultSampleRate
		w, h := controller.Expanded.Width, controller.Expanded.Height
		if len(args) > 0 {
			sr = args[0].Float()
		}
		if len(args) > 2 {
			w, h = args[1].Float(), args[2].Float()
		}

		u, err := unit.New(unit.WithSampleRate(sr))
		if err != nil {
			return err.Error()
		}
		u.Initialize()
		filter = u

		// Browsers run Go on one thread; parameter observers already
		// fire on the UI goroutine.
		ctrl = controller.New(graph.New(graph.WithSurface(w, h)),
			controller.WithDispatcher(controller.Inline{}),
			controller.WithRenderer(frameSink{}),
		)
		if err := ctrl.Connect(u.Parameters(), u); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("onFrame", export(func(args []js.Value) any {
		if len(args) > 0 {
			onFrame = args[0]
		}
		if ctrl != nil {
			ctrl.Redraw()
		}
		return js.Null()
	}))

	api.Set("setSurface", export(func(args []js.Value) any {
		if ctrl == nil || len(args) < 2 {
			return js.Null()
		}
		ctrl.Engine().SetSurface(args[0].Float(), args[1].Float())
		return js.Null()
	}))

	api.Set("pointerDown", export(func(args []js.Value) any {
		if ctrl == nil || len(args) < 2 {
			return false
		}
		return ctrl.Engine().PointerDown(viewPoint(args))
	}))

	api.Set("pointerMove", export(func(args []js.Value) any {
		if ctrl == nil || len(args) < 2 {
			return js.Null()
		}
		ctrl.Engine().PointerMove(viewPoint(args))
		return js.Null()
	}))

	api.Set("pointerUp", export(func(args []js.Value) any {
		if ctrl == nil || len(args) < 2 {
			return js.Null()
		}
		ctrl.Engine().PointerUp(viewPoint(args))
		return js.Null()
	}))

	api.Set("pointerCancel", export(func(args []js.Value) any {
		if ctrl == nil {
			return js.Null()
		}
		ctrl.Engine().PointerCancel()
		ctrl.Redraw()
		return js.Null()
	}))

	api.Set("setFrequencyText", export(func(args []js.Value) any {
		return setText(args, (*controller.Controller).SetFrequencyText)
	}))

	api.Set("setResonanceText", export(func(args []js.Value) any {
		return setText(args, (*controller.Controller).SetResonanceText)
	}))

	api.Set("selectPreset", export(func(args []js.Value) any {
		if filter == nil || len(args) < 1 {
			return js.Null()
		}
		if err := filter.SelectPreset(args[0].Int()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("toggleView", export(func(args []js.Value) any {
		if ctrl == nil {
			return js.Null()
		}
		return ctrl.ToggleViewConfiguration().Name
	}))

	api.Set("state", export(func(args []js.Value) any {
		if ctrl == nil {
			return js.Null()
		}
		st := js.Global().Get("Object").New()
		st.Set("frequency", ctrl.Engine().Frequency())
		st.Set("resonance", ctrl.Engine().Resonance())
		st.Set("frequencyText", ctrl.FrequencyText())
		st.Set("resonanceText", ctrl.ResonanceText())
		st.Set("active", ctrl.Engine().Active())
		st.Set("view", ctrl.ViewConfiguration().Name)
		return st
	}))

	js.Global().Set("FilterView", api)
	select {}
}

// viewPoint converts page coordinates (origin top-left) to graph space.
func viewPoint(args []js.Value) graph.Point {
	p := graph.Point{X: args[0].Float(), Y: args[1].Float()}
	return ctrl.Engine().Geometry().FromView(p)
}

func setText(args []js.Value, set func(*controller.Controller, string) (string, error)) any {
	if ctrl == nil || len(args) < 1 {
		return js.Null()
	}
	text, err := set(ctrl, args[0].String())
	if err != nil {
		return map[string]any{"text": text, "error": err.Error()}
	}
	return map[string]any{"text": text}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
