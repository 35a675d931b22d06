package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/assetflow"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	query  assetflow.Query
	output string
	unit   string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "convert a JSON export into an allocation file" }
func (*importCmd) Usage() string {
	return `afc import [-items <path>] [-class <path>] [-amount <path>] [-unit <unit>] [-o <file>] [<file>]

  Reads a JSON document, from the file or stdin, and extracts the amount of
  each asset class using JSONPath expressions. The allocation is written in
  the canonical JSON format.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query.Items, "items", assetflow.DefaultQuery.Items, "JSONPath selecting the list of assets.")
	f.StringVar(&c.query.Class, "class", assetflow.DefaultQuery.Class, "JSONPath of the asset class, relative to an asset.")
	f.StringVar(&c.query.Amount, "amount", assetflow.DefaultQuery.Amount, "JSONPath of the amount, relative to an asset.")
	f.StringVar(&c.unit, "unit", "", "Unit of the amounts. Defaults to the configured unit.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	s, err := newSession()
	if err != nil {
		return fail(err)
	}

	var in io.Reader = os.Stdin
	if f.NArg() == 1 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			return fail(err)
		}
		defer file.Close()
		in = file
	}

	entries, err := assetflow.ImportAllocation(in, c.query)
	if err != nil {
		return fail(err)
	}
	a := &assetflow.Allocation{Unit: c.unit, Entries: entries}
	if a.Unit == "" {
		a.Unit = s.cfg.Unit
	}
	s.log.Debug().Int("entries", len(entries)).Msg("allocation imported")

	if c.output == "" {
		if err := assetflow.EncodeAllocation(stdout, a); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.output)
	if err != nil {
		return fail(err)
	}
	if err := assetflow.EncodeAllocation(out, a); err != nil {
		out.Close()
		return fail(err)
	}
	if err := out.Close(); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "%d asset(s) written to %s\n", len(entries), c.output)
	return subcommands.ExitSuccess
}
