package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cardfolio"
	"github.com/google/subcommands"
)

type queryCmd struct {
	indent bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract data with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `pok query [-indent] <path>

  Evaluates a JSONPath expression on the JSON export of the collection and
  prints the result as JSON.

Usage Examples:
$ pok query '$[*].name'
$ pok query '$[?(@.simulatedPrice > 50)].id'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.indent, "indent", false, "Indent the result")
}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one JSONPath expression is required")
		return subcommands.ExitUsageError
	}
	coll, err := openCollection(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer coll.Close()

	v, err := cardfolio.Query(coll.Collection(), f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var b []byte
	if c.indent {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(b))
	return subcommands.ExitSuccess
}
