// Command afc compares a personal asset allocation with a model portfolio,
// suggests how to rebalance it, and writes the result as a PDF report.
//
// Run 'afc topic' for the user manual.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/assetflow/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("afc")

	subcommands.Register(subcommands.HelpCommand(), "help")
	subcommands.Register(subcommands.FlagsCommand(), "help")
	subcommands.Register(subcommands.CommandsCommand(), "help")
	cmd.Register(subcommands.DefaultCommander)

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
