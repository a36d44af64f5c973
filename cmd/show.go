package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cardfolio/renderer"
	"github.com/google/subcommands"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show a card and its value history" }
func (*showCmd) Usage() string {
	return `pok show [<card>]

  Shows the details and the simulated value history of a card, given by id
  or by name. The most recent card is shown by default.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.RenderEntry(renderer.NewEntry(e, coll.cfg.Currency)))
	return subcommands.ExitSuccess
}
