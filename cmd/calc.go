package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/edu2101/ror"
	"github.com/edu2101/ror/renderer"
	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"
)

// calcCmd holds the flags for the 'calc' subcommand.
type calcCmd struct {
	initial, final, years string
	from                  string
	paths                 ror.InputPaths
	format                string
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "compute the annual rate of return of an investment" }
func (*calcCmd) Usage() string {
	return `rorc calc -i <initial> -f <final> -y <years> [-format md|json|yaml|html]
rorc calc -from <doc.json> [-initial-path <jsonpath>] [-final-path <jsonpath>] [-years-path <jsonpath>]

  Validates the inputs, computes the annual rate of return and prints the report.
  Inputs are read like form fields: "$10,000" is 10000.
  Exits with status 1 when the inputs are invalid.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.initial, "i", "", "Initial amount")
	f.StringVar(&c.final, "f", "", "Final amount")
	f.StringVar(&c.years, "y", "", "Number of years")
	f.StringVar(&c.from, "from", "", "Read the inputs from a JSON document, '-' for stdin")
	f.StringVar(&c.paths.InitialAmount, "initial-path", ror.DefaultInputPaths.InitialAmount, "JSONPath of the initial amount in the -from document")
	f.StringVar(&c.paths.FinalAmount, "final-path", ror.DefaultInputPaths.FinalAmount, "JSONPath of the final amount in the -from document")
	f.StringVar(&c.paths.Years, "years-path", ror.DefaultInputPaths.Years, "JSONPath of the years in the -from document")
	f.StringVar(&c.format, "format", "md", "Output format: md, json, yaml or html")
}

func (c *calcCmd) input() (ror.Input, error) {
	if c.from == "" {
		return ror.ParseInput(c.initial, c.final, c.years), nil
	}
	var r io.Reader = os.Stdin
	if c.from != "-" {
		f, err := os.Open(c.from)
		if err != nil {
			return ror.Input{}, err
		}
		defer f.Close()
		r = f
	}
	return ror.DecodeInput(r, c.paths)
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.input()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading inputs: %v\n", err)
		return subcommands.ExitUsageError
	}

	e := ror.Evaluate(in)
	logger := Logger()
	if e.Cause != nil {
		logger.Debug("Calculation failed", "cause", e.Cause)
	} else if e.Outcome.IsValid {
		logger.Debug("Calculated", "rate", e.Outcome.Rate)
	}

	if err := writeEvaluation(os.Stdout, c.format, e); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !e.Outcome.IsValid {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// report builds the report of e with the global display flags.
func report(e ror.Evaluation) *renderer.Report {
	r := renderer.NewReport(e, *defaultCurrency)
	if r.Valid && *decimals != ror.DefaultPercentDecimals {
		r.Rate = ror.FormatPercentageN(e.Outcome.Rate, *decimals)
	}
	return r
}

// calcOutput is the json and yaml output of calc.
type calcOutput struct {
	ror.Evaluation `yaml:",inline"`
	Report         *renderer.Report `json:"report" yaml:"report"`
}

func writeEvaluation(w io.Writer, format string, e ror.Evaluation) error {
	switch format {
	case "md", "":
		md := renderer.RenderReport(report(e))
		if w == os.Stdout {
			printMarkdown(md)
			return nil
		}
		_, err := io.WriteString(w, md)
		return err
	case "html":
		page, err := renderer.ReportHTML(report(e))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, page)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(calcOutput{Evaluation: e, Report: report(e)})
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(calcOutput{Evaluation: e, Report: report(e)}); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
