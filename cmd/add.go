package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cardfolio"
	"github.com/etnz/cardfolio/capture"
	"github.com/google/subcommands"
)

type addCmd struct {
	card  cardfolio.Card
	image string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a card to the collection" }
func (*addCmd) Usage() string {
	return `pok add -name <name> -expansion <expansion> [-language <lang>] [-condition <condition>] [-image <file>]

  Adds a card at the top of the collection, with its simulated value and
  value history. Name and expansion are required.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.card.Name, "name", "", "Card name (required)")
	f.StringVar(&c.card.Expansion, "expansion", "", "Card expansion (required)")
	f.StringVar(&c.card.Language, "language", cardfolio.DefaultLanguage, "Card language")
	f.StringVar(&c.card.Condition, "condition", cardfolio.DefaultCondition, "Card condition")
	f.StringVar(&c.image, "image", "", "Optional image file to attach")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.image != "" {
		img, err := capture.FromFile(c.image)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		c.card.Image = img.Image
	}
	if err := c.card.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return addCard(ctx, c.card)
}

// addCard adds card to the collection and reports it.
func addCard(ctx context.Context, card cardfolio.Card) subcommands.ExitStatus {
	coll, err := openCollection(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer coll.Close()

	e, err := coll.Add(ctx, card)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding card: %v\n", err)
		return subcommands.ExitFailure
	}
	printAdded(e, coll.cfg.Currency)
	return subcommands.ExitSuccess
}
