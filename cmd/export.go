package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/cardfolio"
	"github.com/etnz/cardfolio/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the collection" }
func (*exportCmd) Usage() string {
	return `pok export [-format json|yaml|html] [-o <file>]

  Exports the whole collection. The JSON export has the same format as the
  saved collection. The default output is pok_collection.<format>, use -o -
  for the standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Export format: json, yaml or html")
	f.StringVar(&c.output, "o", "", "Output file, - for the standard output")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var encode func(io.Writer, *cardfolio.Collection, string) error
	switch c.format {
	case "json":
		encode = func(w io.Writer, coll *cardfolio.Collection, _ string) error {
			return cardfolio.EncodeCollection(w, coll, true)
		}
	case "yaml":
		encode = func(w io.Writer, coll *cardfolio.Collection, _ string) error {
			return cardfolio.EncodeYAML(w, coll)
		}
	case "html":
		encode = func(w io.Writer, coll *cardfolio.Collection, currency string) error {
			page, err := renderer.Page("Collection", renderer.RenderCollection(renderer.NewCollection(coll, currency)))
			if err != nil {
				return err
			}
			_, err = io.WriteString(w, page)
			return err
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	output := c.output
	if output == "" {
		output = strings.TrimSuffix(cardfolio.ExportFilename, ".json") + "." + c.format
	}

	coll, err := openCollection(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer coll.Close()

	if output == "-" {
		if err := encode(os.Stdout, coll.Collection(), coll.cfg.Currency); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := encode(out, coll.Collection(), coll.cfg.Currency); err != nil {
		out.Close()
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Exported %d cards to %s\n", coll.Collection().Len(), output)
	return subcommands.ExitSuccess
}
