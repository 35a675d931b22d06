package cmd

import (
	"context"
	"flag"

	"github.com/etnz/assetflow"
	"github.com/etnz/assetflow/renderer"
	"github.com/google/subcommands"
)

// modelsCmd holds the flags for the 'models' subcommand.
type modelsCmd struct {
	json bool
}

func (*modelsCmd) Name() string     { return "models" }
func (*modelsCmd) Synopsis() string { return "list the model portfolios" }
func (*modelsCmd) Usage() string {
	return `afc models [-json] [<name>]

  Lists the model portfolios of the catalog and their target percentages, or
  only the named one.
`
}

func (c *modelsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the models as JSON.")
}

func (c *modelsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	s, err := newSession()
	if err != nil {
		return fail(err)
	}

	if f.NArg() == 0 {
		if c.json {
			return printJSON(s.catalog.Models())
		}
		printMarkdown(renderer.CatalogMarkdown(s.catalog))
		return subcommands.ExitSuccess
	}

	m, err := s.catalog.Lookup(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	if c.json {
		return printJSON([]*assetflow.ModelPortfolio{m})
	}
	printMarkdown(renderer.ModelMarkdown(m))
	return subcommands.ExitSuccess
}
