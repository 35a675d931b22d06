// Package cmd implements the afc command line application: subcommands to
// compare an asset allocation with a model portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/assetflow"
	"github.com/etnz/assetflow/config"
	"github.com/etnz/assetflow/logger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&showCmd{}, "allocation")
	c.Register(&importCmd{}, "allocation")

	c.Register(&modelsCmd{}, "rebalancing")
	c.Register(&compareCmd{}, "rebalancing")
	c.Register(&reportCmd{}, "rebalancing")

	c.Register(&serveCmd{}, "services")
	c.Register(&assistCmd{}, "services")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile     = flag.String("config", "", "Path to a TOML configuration file. See 'afc topic config'.")
	allocationFile = flag.String("allocation", "", "Path to the allocation file (JSON or CSV). The sample allocation is used if none.")
	catalogFile    = flag.String("catalog", "", "Path to a TOML catalog of model portfolios. The default catalog is used if none.")
	Verbose        = flag.Bool("v", false, "Print debug logs on stderr.")
)

// stdout is where commands write their results.
var stdout io.Writer = os.Stdout

// session holds what every command needs: the configuration merged with the
// global flags, a logger and the catalog of model portfolios.
type session struct {
	cfg     *config.Config
	log     zerolog.Logger
	catalog *assetflow.Catalog
}

// newSession loads the configuration and the catalog.
func newSession() (*session, error) {
	cfg, err := config.LoadFromFiles(*configFile)
	if err != nil {
		return nil, err
	}
	if *allocationFile != "" {
		cfg.AllocationFile = *allocationFile
	}
	if *catalogFile != "" {
		cfg.CatalogFile = *catalogFile
	}

	lcfg := cfg.LoggerConfig()
	if *Verbose {
		lcfg.Level = "debug"
	} else if lcfg.Level == "info" {
		// info logs are for long running services only, commands stay quiet.
		lcfg.Level = "warn"
	}
	s := &session{
		cfg: cfg,
		log: logger.New(lcfg),
	}

	s.catalog, err = loadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("catalog", cfg.CatalogFile).Strs("models", s.catalog.Names()).Msg("catalog loaded")
	return s, nil
}

// loadCatalog decodes the catalog file, or returns the default catalog.
func loadCatalog(name string) (*assetflow.Catalog, error) {
	if name == "" {
		return assetflow.DefaultCatalog(), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	c, err := assetflow.DecodeCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", name, err)
	}
	return c, nil
}

// allocation reads the allocation file, or returns the sample allocation.
// An allocation without unit gets the configured one.
func (s *session) allocation() (*assetflow.Allocation, error) {
	if s.cfg.AllocationFile == "" {
		s.log.Debug().Msg("no allocation file, using the sample allocation")
		return &assetflow.Allocation{Unit: s.cfg.Unit, Entries: assetflow.SampleAllocation()}, nil
	}
	a, err := assetflow.ReadAllocationFile(s.cfg.AllocationFile)
	if err != nil {
		return nil, fmt.Errorf("reading allocation %q: %w", s.cfg.AllocationFile, err)
	}
	if a.Unit == "" {
		a.Unit = s.cfg.Unit
	}
	s.log.Debug().Str("file", s.cfg.AllocationFile).Int("entries", len(a.Entries)).Str("unit", a.Unit).Msg("allocation loaded")
	return a, nil
}

// simulate runs the rebalancing pipeline of the allocation against the named
// model, or the default model if name is empty.
func (s *session) simulate(name string, opts assetflow.CompareOptions) (*assetflow.Allocation, *assetflow.Simulation, error) {
	if name == "" {
		name = s.cfg.DefaultModel
	}
	m, err := s.catalog.Lookup(name)
	if err != nil {
		return nil, nil, err
	}
	a, err := s.allocation()
	if err != nil {
		return nil, nil, err
	}
	sim, err := assetflow.Simulate(a.Entries, m, opts)
	if err != nil {
		return nil, nil, err
	}
	s.log.Debug().Str("model", m.Name()).Str("turnover", sim.Drift.Turnover.String()).Msg("simulation done")
	return a, sim, nil
}

// fail prints err on stderr and returns the matching exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, assetflow.ErrUnknownModel) {
		fmt.Fprintln(os.Stderr, "Run 'afc models' to list the available models.")
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown prints md on stdout, rendered for the terminal when stdout
// is one.
func printMarkdown(md string) {
	if isTerminal(stdout) {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err == nil {
			if out, err := r.Render(md); err == nil {
				fmt.Fprint(stdout, out)
				return
			}
		}
	}
	fmt.Fprint(stdout, md)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
