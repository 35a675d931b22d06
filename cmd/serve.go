package cmd

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/assetflow/logger"
	"github.com/etnz/assetflow/server"
	"github.com/google/subcommands"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	host string
	port int
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "start the HTTP API" }
func (*serveCmd) Usage() string {
	return `afc serve [-host <host>] [-port <port>]

  Starts an HTTP server exposing the models, the comparison and the PDF
  report as a JSON API. See 'afc topic server'.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.host, "host", "", "Host to listen to. Defaults to the configured host.")
	f.IntVar(&c.port, "port", 0, "Port to listen to. Defaults to the configured port.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		return fail(err)
	}
	if c.host != "" {
		s.cfg.Server.Host = c.host
	}
	if c.port != 0 {
		s.cfg.Server.Port = c.port
	}
	if err := s.cfg.Validate(); err != nil {
		return fail(err)
	}

	// the server is long running, it logs at the configured level.
	lcfg := s.cfg.LoggerConfig()
	if *Verbose {
		lcfg.Level = "debug"
	}
	log := logger.New(lcfg)

	srv := server.New(server.Config{Log: log, Catalog: s.catalog, Settings: s.cfg})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fail(err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fail(err)
		}
	}
	return subcommands.ExitSuccess
}
