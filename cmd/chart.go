package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cardfolio/plot"
	"github.com/google/subcommands"
)

type chartCmd struct {
	output        string
	width, height int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the value history of a card" }
func (*chartCmd) Usage() string {
	return `pok chart [-o <file.png>] [-width <px>] [-height <px>] [<card>]

  Draws the simulated value history of a card, given by id or by name, as a
  PNG line chart. The most recent card is drawn by default.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "chart.png", "Output file")
	f.IntVar(&c.width, "width", 0, "Chart width in pixels (default from the config)")
	f.IntVar(&c.height, "height", 0, "Chart height in pixels (default from the config)")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	coll, err := openCollection(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer coll.Close()

	e, ok := coll.Collection().Lookup(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no card %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	width, height := coll.cfg.ChartWidth, coll.cfg.ChartHeight
	if c.width > 0 {
		width = c.width
	}
	if c.height > 0 {
		height = c.height
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := plot.EncodePNG(out, width, height, e.Series()); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error drawing chart: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Chart of %q written to %s\n", e.Name(), c.output)
	return subcommands.ExitSuccess
}
