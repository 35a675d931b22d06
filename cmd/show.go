package cmd

import (
	"context"
	"encoding/json"
	"flag"

	"github.com/etnz/assetflow"
	"github.com/etnz/assetflow/renderer"
	"github.com/google/subcommands"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	json bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the composition of the allocation" }
func (*showCmd) Usage() string {
	return `afc show [-json]

  Displays the amount and the percentage of the total of each asset class of
  the allocation, with a bar chart.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the composition as JSON.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		return fail(err)
	}
	a, err := s.allocation()
	if err != nil {
		return fail(err)
	}
	composition, err := assetflow.Normalize(a.Entries)
	if err != nil {
		return fail(err)
	}

	doc := renderer.NewComposition(composition, s.cfg.Currency, a.Unit)
	if c.json {
		return printJSON(doc)
	}
	printMarkdown(renderer.RenderComposition(doc))
	return subcommands.ExitSuccess
}

// printJSON prints v as indented JSON on stdout.
func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
