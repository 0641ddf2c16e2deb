package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/edu2101/ror"
	"github.com/edu2101/ror/renderer"
	"github.com/google/subcommands"
)

// timeValueFlags are the flags shared by 'fv' and 'pv'.
type timeValueFlags struct {
	amount float64
	rate   float64
	years  float64
}

func (t *timeValueFlags) check() error {
	switch {
	case !(t.amount > 0):
		return fmt.Errorf("the amount must be positive, got %v", t.amount)
	case !(t.rate > -1):
		return fmt.Errorf("the rate must be greater than -1, got %v", t.rate)
	case !(t.years > 0):
		return fmt.Errorf("the number of years must be positive, got %v", t.years)
	case t.years > ror.MaxYears:
		return fmt.Errorf("the number of years must be at most %v, got %v", ror.MaxYears, t.years)
	}
	return nil
}

// fvCmd holds the flags for the 'fv' subcommand.
type fvCmd struct{ timeValueFlags }

func (*fvCmd) Name() string     { return "fv" }
func (*fvCmd) Synopsis() string { return "compound a present value" }
func (*fvCmd) Usage() string {
	return `rorc fv -pv <amount> -rate <rate> -y <years>

  Prints the future value of an amount compounded every year at rate,
  a decimal fraction: 0.05 is 5%.
`
}

func (c *fvCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "pv", 0, "Present value")
	f.Float64Var(&c.rate, "rate", 0, "Annual rate as a decimal fraction")
	f.Float64Var(&c.years, "y", 0, "Number of years")
}

func (c *fvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	v := renderer.FutureValue(c.amount, c.rate, c.years, *defaultCurrency)
	printMarkdown(renderer.TimeValueMarkdown("Valor futuro", v))
	return subcommands.ExitSuccess
}

// pvCmd holds the flags for the 'pv' subcommand.
type pvCmd struct{ timeValueFlags }

func (*pvCmd) Name() string     { return "pv" }
func (*pvCmd) Synopsis() string { return "discount a future value" }
func (*pvCmd) Usage() string {
	return `rorc pv -fv <amount> -rate <rate> -y <years>

  Prints the present value of an amount expected in years, discounted every
  year at rate, a decimal fraction: 0.05 is 5%.
`
}

func (c *pvCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "fv", 0, "Future value")
	f.Float64Var(&c.rate, "rate", 0, "Annual rate as a decimal fraction")
	f.Float64Var(&c.years, "y", 0, "Number of years")
}

func (c *pvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	v := renderer.PresentValue(c.amount, c.rate, c.years, *defaultCurrency)
	printMarkdown(renderer.TimeValueMarkdown("Valor presente", v))
	return subcommands.ExitSuccess
}
