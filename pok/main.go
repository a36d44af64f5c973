// Command pok manages a collection of trading cards with simulated values.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cardfolio/cmd"
	"github.com/google/subcommands"
)

func main() {
	// shell completion short-circuits the normal run.
	cmd.Completion().Complete("pok")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging()

	if flag.NArg() > 0 && !isCommand(commander, flag.Arg(0)) {
		if found, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// isCommand reports whether name is a registered subcommand.
func isCommand(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
