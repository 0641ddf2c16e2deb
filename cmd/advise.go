package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/edu2101/ror"
	"github.com/edu2101/ror/advisor"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// adviseCmd asks the AI advisor about a calculation.
type adviseCmd struct {
	initial, final, years string
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask the AI advisor about a rate of return" }
func (*adviseCmd) Usage() string {
	return `rorc advise -i <initial> -f <final> -y <years> [question...]

  Computes the rate of return and asks a Gemini model to comment it.
  The Gemini client is configured by the GEMINI_API_KEY environment variable.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.initial, "i", "", "Initial amount")
	f.StringVar(&c.final, "f", "", "Final amount")
	f.StringVar(&c.years, "y", "", "Number of years")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e := ror.Evaluate(ror.ParseInput(c.initial, c.final, c.years))
	if !e.Outcome.IsValid {
		// nothing to comment: show what is wrong
		writeEvaluation(os.Stdout, "md", e)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	answer, err := advisor.Advise(ctx, client, e, *defaultCurrency, strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(answer)
	return subcommands.ExitSuccess
}
