package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/cardfolio/server"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout is how long in-flight requests get to complete on exit.
const shutdownTimeout = 5 * time.Second

type serveCmd struct {
	listen string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the collection over HTTP" }
func (*serveCmd) Usage() string {
	return `pok serve [-listen <addr>]

  Serves the collection on a local HTTP API until interrupted. See
  'pok topic serve' for the endpoints.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.listen, "listen", "", "Listen address (default from the config)")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	coll, err := openCollection(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer coll.Close()

	addr := coll.cfg.Listen
	if c.listen != "" {
		addr = c.listen
	}
	srv := &http.Server{
		Addr: addr,
		Handler: server.New(coll.Binder,
			server.WithCurrency(coll.cfg.Currency),
			server.WithChartSize(coll.cfg.ChartWidth, coll.cfg.ChartHeight),
		).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fmt.Fprintf(os.Stderr, "Serving %d cards on http://%s\n", coll.Collection().Len(), addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error serving: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
