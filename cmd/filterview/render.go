package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-filterview/controller"
	"github.com/cwbudde/algo-filterview/graph"
	"github.com/cwbudde/algo-filterview/render/svg"
	"github.com/cwbudde/algo-filterview/render/term"
)

// RenderCmd writes one frame of the graph.
type RenderCmd struct {
	FilterFlags `embed:""`

	Format string  `enum:"svg,term" default:"svg" help:"Output format (svg, term)."`
	Width  float64 `default:"800" help:"SVG surface width in pixels."`
	Height float64 `default:"500" help:"SVG surface height in pixels."`
	Cols   int     `default:"80" help:"Terminal width in cells."`
	Rows   int     `default:"24" help:"Terminal height in cells."`
	Out    string  `short:"o" type:"path" help:"Output file. Defaults to stdout."`
}

// Run renders the graph.
func (c *RenderCmd) Run(g *Globals) error {
	logger, err := newLogger(g.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	u, err := newUnit(g, c.FilterFlags, logger)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	var (
		engine   *graph.Engine
		renderer *errRenderer
	)
	switch c.Format {
	case "term":
		engine = graph.New(term.EngineOptions(c.Cols, c.Rows)...)
		renderer = &errRenderer{r: term.New(term.WithWriter(w))}
	default:
		engine = graph.New(graph.WithSurface(c.Width, c.Height))
		renderer = &errRenderer{r: svg.New(w)}
	}

	ctrl := controller.New(engine,
		controller.WithLogger(logger),
		controller.WithRenderer(renderer),
	)
	if err := ctrl.Connect(u.Parameters(), u); err != nil {
		return err
	}
	if renderer.err != nil {
		return renderer.err
	}

	logger.Debug("rendered",
		zap.String("format", c.Format),
		zap.String("cutoff", ctrl.FrequencyText()),
		zap.String("resonance", ctrl.ResonanceText()))
	return nil
}

// errRenderer keeps the first render error; the controller only logs it.
type errRenderer struct {
	r   graph.Renderer
	err error
}

func (e *errRenderer) Render(f graph.Frame) error {
	err := e.r.Render(f)
	if err != nil && e.err == nil {
		e.err = err
	}
	return err
}
