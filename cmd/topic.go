package cmd

import (
	"context"
	"flag"

	"github.com/etnz/assetflow/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `afc topic [<topic>...]

  Shows the documentation of the topics, '*' for all of them. Without topic,
  shows the list of topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		printMarkdown(docs.Readme())
		return subcommands.ExitSuccess
	}

	doc, err := docs.GetTopics(f.Args()...)
	if err != nil {
		return fail(err)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
