package cmd

import (
	"context"
	"flag"

	"github.com/etnz/assetflow"
	"github.com/etnz/assetflow/renderer"
	"github.com/google/subcommands"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	model            string
	includeModelOnly bool
	json             bool
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the allocation with a model portfolio" }
func (*compareCmd) Usage() string {
	return `afc compare [-model <name>] [-include-model-only] [-json]

  Displays, for each asset class of the allocation, the current and the
  target percentage, the gap and the amount to buy or sell to close it.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "", "Model portfolio to compare with. Defaults to the configured default model.")
	f.BoolVar(&c.includeModelOnly, "include-model-only", false, "List the asset classes of the model missing from the allocation.")
	f.BoolVar(&c.json, "json", false, "Print the comparison as JSON.")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		return fail(err)
	}
	opts := assetflow.CompareOptions{IncludeModelOnly: c.includeModelOnly || s.cfg.Compare.IncludeModelOnly}
	a, sim, err := s.simulate(c.model, opts)
	if err != nil {
		return fail(err)
	}

	doc := renderer.NewComparison(sim, s.cfg.Currency, a.Unit)
	if c.json {
		return printJSON(doc)
	}
	printMarkdown(renderer.RenderComparison(doc))
	return subcommands.ExitSuccess
}
