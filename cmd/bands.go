package cmd

import (
	"context"
	"flag"

	"github.com/edu2101/ror/renderer"
	"github.com/google/subcommands"
)

type bandsCmd struct{}

func (*bandsCmd) Name() string     { return "bands" }
func (*bandsCmd) Synopsis() string { return "list the interpretations of a rate of return" }
func (*bandsCmd) Usage() string {
	return `rorc bands

  Lists the four interpretation bands, from the best to the worst.
`
}

func (*bandsCmd) SetFlags(f *flag.FlagSet) {}

func (*bandsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.BandsMarkdown())
	return subcommands.ExitSuccess
}
