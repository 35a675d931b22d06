package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/assetflow"
	"github.com/etnz/assetflow/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	model        string
	output       string
	repeatHeader bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "write the rebalancing report as PDF" }
func (*reportCmd) Usage() string {
	return `afc report [-model <name>] [-o <file>] [-repeat-header]

  Writes the comparison of the allocation with a model portfolio as a
  paginated PDF document.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "", "Model portfolio to compare with. Defaults to the configured default model.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the configured report file.")
	f.BoolVar(&c.repeatHeader, "repeat-header", false, "Print the table header on every page.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		return fail(err)
	}
	opts := assetflow.CompareOptions{IncludeModelOnly: s.cfg.Compare.IncludeModelOnly}
	_, sim, err := s.simulate(c.model, opts)
	if err != nil {
		return fail(err)
	}

	output := c.output
	if output == "" {
		output = s.cfg.Report.File
	}
	l := renderer.DefaultLayout()
	l.RepeatHeader = c.repeatHeader || s.cfg.Report.RepeatHeader

	id := uuid.NewString()
	pages := renderer.ReportPages(sim, l)
	if err := writeReport(output, id, pages, l); err != nil {
		return fail(err)
	}
	s.log.Debug().Str("report_id", id).Str("file", output).Int("pages", len(pages)).Msg("report written")

	fmt.Fprintf(stdout, "Report %s written to %s (%d page(s)).\n", id, output, len(pages))
	return subcommands.ExitSuccess
}

// writeReport writes the PDF file, and removes it on failure.
func writeReport(name, id string, pages []renderer.Page, l renderer.Layout) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := renderer.WritePDF(f, id, pages, l); err != nil {
		f.Close()
		os.Remove(name)
		return fmt.Errorf("writing report %q: %w", name, err)
	}
	return f.Close()
}
