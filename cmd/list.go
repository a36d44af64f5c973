package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cardfolio/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the cards of the collection" }
func (*listCmd) Usage() string {
	return `pok list

  Lists all cards, most recent first, with their simulated value and the
  total value of the collection.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	coll, err := openCollection(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer coll.Close()

	printMarkdown(renderer.RenderCollection(renderer.NewCollection(coll.Collection(), coll.cfg.Currency)))
	return subcommands.ExitSuccess
}
