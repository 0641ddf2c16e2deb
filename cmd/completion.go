package cmd

import (
	"flag"

	"github.com/edu2101/ror/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors are the completions of flag values, by flag name.
var flagPredictors = map[string]complete.Predictor{
	"format":   predict.Set{"md", "json", "yaml", "html"},
	"from":     predict.Files("*.json"),
	"env":      predict.Files("*"),
	"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF", "MXN"},
}

func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}

// Completion describes the commands of c and their flags for shell completion.
func Completion(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(global),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		sub := &complete.Command{Flags: predictFlags(f)}
		if cmd.Name() == "topic" {
			sub.Args = predictTopics
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

var predictTopics = complete.PredictFunc(func(prefix string) []string {
	topics, _ := docs.GetAllTopics()
	return append(topics, "*")
})
