package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cardfolio/capture"
	"github.com/google/subcommands"
)

type imageCmd struct {
	name string
}

func (*imageCmd) Name() string     { return "image" }
func (*imageCmd) Synopsis() string { return "add cards from image files" }
func (*imageCmd) Usage() string {
	return `pok image [-name <name>] <file>...

  Adds one card per image file, in the Gallery expansion. Cards are named
  after their file unless -name is set.
`
}

func (c *imageCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Card name, instead of the file name")
}

func (c *imageCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one image file is required")
		return subcommands.ExitUsageError
	}
	for _, path := range f.Args() {
		card, err := capture.FromFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if c.name != "" {
			card.Name = c.name
		}
		if status := addCard(ctx, card); status != subcommands.ExitSuccess {
			return status
		}
	}
	return subcommands.ExitSuccess
}
