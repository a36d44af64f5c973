package cmd

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/etnz/cardfolio/capture"
	"github.com/google/subcommands"
)

type snapCmd struct{}

func (*snapCmd) Name() string     { return "snap" }
func (*snapCmd) Synopsis() string { return "add a card from a camera frame" }
func (*snapCmd) Usage() string {
	return `pok snap [<frame>]

  Adds a card from a still frame (a PNG or JPEG file), re-encoded as JPEG, in
  the Snapshots expansion and named after the current time. Without a frame a
  blank one is used.
`
}

func (c *snapCmd) SetFlags(f *flag.FlagSet) {}

func (c *snapCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var frame image.Image
	if f.NArg() > 0 {
		var err error
		if frame, err = capture.DecodeFrame(f.Arg(0)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	card, err := capture.FromFrame(frame, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return addCard(ctx, card)
}
