package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all cards" }
func (*clearCmd) Usage() string {
	return `pok clear [-y]

  Deletes the whole collection.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *clearCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	coll, err := openCollection(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer coll.Close()

	n := coll.Collection().Len()
	if !c.yes && !confirm(fmt.Sprintf("Delete all %d cards?", n)) {
		return subcommands.ExitSuccess
	}
	if err := coll.Clear(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %d cards\n", n)
	return subcommands.ExitSuccess
}
