package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete cards from the collection" }
func (*deleteCmd) Usage() string {
	return `pok delete [-y] <id>...

  Deletes cards by identifier. The other cards, and their histories, are left
  untouched.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one card id is required")
		return subcommands.ExitUsageError
	}
	coll, err := openCollection(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer coll.Close()

	for _, id := range f.Args() {
		e, ok := coll.Collection().Get(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no card %q\n", id)
			return subcommands.ExitFailure
		}
		if !c.yes && !confirm(fmt.Sprintf("Delete %q?", e.Name())) {
			continue
		}
		if err := coll.Delete(ctx, id); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted %s %q\n", id, e.Name())
	}
	return subcommands.ExitSuccess
}
