// Command filterview draws and edits the response of the resonant lowpass
// filter.
//
// Usage:
//
//	filterview [flags] <command> [command flags]
//
// Examples:
//
//	filterview render -o response.svg --cutoff 2500 --resonance 6
//	filterview render --format term --preset 1
//	filterview response --cutoff 440 --points 16
//	filterview presets
//	filterview tui
package main

import (
	"os"

	"github.com/alecthomas/kong"
)

// Globals are the flags shared by every command.
type Globals struct {
	Verbose    bool    `short:"v" help:"Enable debug logging."`
	SampleRate float64 `name:"sample-rate" default:"44100" help:"Sample rate in Hz."`
	Measured   bool    `help:"Measure the response from the kernel's impulse response instead of evaluating the transfer function."`
}

// CLI defines the command-line interface
type CLI struct {
	Globals `embed:""`

	Render   RenderCmd   `cmd:"" help:"Render a snapshot of the response graph."`
	Response ResponseCmd `cmd:"" help:"Print the magnitude response as a table."`
	Presets  PresetsCmd  `cmd:"" help:"List the factory presets."`
	TUI      TUICmd      `cmd:"" name:"tui" help:"Edit the filter interactively in the terminal."`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("filterview"),
		kong.Description("Resonant lowpass response graph"),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&cli.Globals); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}
