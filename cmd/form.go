package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/edu2101/ror/form"
	"github.com/google/subcommands"
)

type formCmd struct {
	format string
}

func (*formCmd) Name() string     { return "form" }
func (*formCmd) Synopsis() string { return "fill the calculator form interactively" }
func (*formCmd) Usage() string {
	return `rorc form [-format md|json|yaml|html]

  Opens the calculator form in the terminal. On exit, the last calculation
  is printed in the given format, if any.
`
}

func (c *formCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "Print the last calculation on exit: md, json, yaml or html")
}

func (c *formCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := form.Run(*defaultCurrency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running the form: %v\n", err)
		return subcommands.ExitFailure
	}
	if e == nil || c.format == "" {
		return subcommands.ExitSuccess
	}
	if err := writeEvaluation(os.Stdout, c.format, *e); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
