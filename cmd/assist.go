package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/assetflow"
	"github.com/etnz/assetflow/agent"
	"github.com/etnz/assetflow/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	model string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `afc assist [-model <gemini model>] [<question>...]

  Starts an interactive session with the AI assistant. It reads the
  allocation and can compare it with any model portfolio.
  GEMINI_API_KEY must be set.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "", "Gemini model. Defaults to the configured assist model.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		return fail(err)
	}
	model := c.model
	if model == "" {
		model = s.cfg.Assist.Model
	}

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(fmt.Errorf("initializing Gemini's client: %w", err))
	}

	planner := func(name string) (string, error) {
		a, sim, err := s.simulate(name, assetflow.CompareOptions{IncludeModelOnly: s.cfg.Compare.IncludeModelOnly})
		if err != nil {
			return "", err
		}
		composition := renderer.NewComposition(sim.Composition, s.cfg.Currency, a.Unit)
		comparison := renderer.NewComparison(sim, s.cfg.Currency, a.Unit)
		return renderer.RenderComposition(composition) + "\n" + renderer.RenderComparison(comparison), nil
	}
	catalog := func() string { return renderer.CatalogMarkdown(s.catalog) }

	advisor := agent.NewAdvisor(model, planner, catalog)
	researcher := agent.NewResearcher(model)
	a := agent.New(stdout, os.Stdin, s.log, model, advisor, researcher)
	a.Print = func(_ io.Writer, md string) { printMarkdown(md) }

	if err := a.Run(ctx, client, prompts...); err != nil {
		return fail(fmt.Errorf("assistant failed: %w", err))
	}
	return subcommands.ExitSuccess
}
