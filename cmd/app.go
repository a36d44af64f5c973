// Package cmd implements the CLI application to manage a card collection.
package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cardfolio"
	"github.com/etnz/cardfolio/config"
	"github.com/etnz/cardfolio/storage"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "cards")
	c.Register(&imageCmd{}, "cards")
	c.Register(&snapCmd{}, "cards")
	c.Register(&deleteCmd{}, "cards")
	c.Register(&clearCmd{}, "cards")

	c.Register(&listCmd{}, "reports")
	c.Register(&showCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&serveCmd{}, "")
	c.Register(&assistCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to the config file (default pok.yaml, or $"+config.EnvConfig+")")
	backend    = flag.String("backend", "", "Storage backend: file, sqlite or memory (overrides the config)")
	storePath  = flag.String("path", "", "Storage folder or database file (overrides the config)")
	storeKey   = flag.String("key", "", "Storage key of the collection (overrides the config)")
	currency   = flag.String("currency", "", "Currency of the simulated values (overrides the config)")
	Verbose    = flag.Bool("v", false, "Verbose logging")
)

// SetupLogging discards the logs unless -v is set.
func SetupLogging() {
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// settings loads the config and applies the global flags.
func settings() (*config.Config, error) {
	c, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	override := func(dst *string, flagValue string) {
		if flagValue != "" {
			*dst = flagValue
		}
	}
	override(&c.Backend, *backend)
	override(&c.Path, *storePath)
	override(&c.Key, *storeKey)
	override(&c.Currency, *currency)
	return c, nil
}

// collection is an open collection with its settings.
type collection struct {
	*cardfolio.Binder
	store storage.Store
	cfg   *config.Config
}

func (c *collection) Close() error { return c.store.Close() }

// openCollection opens the collection selected by the config and the global flags.
func openCollection(ctx context.Context) (*collection, error) {
	cfg, err := settings()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(cfg.Backend, cfg.Path)
	if err != nil {
		return nil, err
	}
	b, err := cardfolio.Open(ctx, store, cardfolio.WithKey(cfg.Key))
	if err != nil {
		store.Close()
		return nil, err
	}
	return &collection{Binder: b, store: store, cfg: cfg}, nil
}

// printMarkdown prints md formatted for the terminal.
func printMarkdown(md string) { fmt.Print(renderMarkdown(md)) }

// renderMarkdown formats md for the terminal, or returns it as is.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			return out
		}
	}
	log.Printf("warning, cannot format markdown: %v", err)
	return md
}

// confirm asks a yes/no question on the terminal. Anything but yes is a no.
func confirm(question string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// printAdded reports a new entry.
func printAdded(e *cardfolio.Entry, currency string) {
	fmt.Printf("Added %s %q (%s, %s, %s): %s\n", e.ID(), e.Name(), e.Expansion(), e.Language(), e.Condition(), e.Value(currency))
}
