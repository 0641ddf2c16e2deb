// Command rorc computes the annualized rate of return of an investment.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/edu2101/ror/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, "rorc")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// answers the shell completion requests, and exits, when asked to
	cmd.Completion(commander, flag.CommandLine).Complete("rorc")

	flag.Parse()

	// unknown subcommands are looked for as rorc-<subcommand> extensions
	if flag.NArg() > 0 && !isRegistered(commander, flag.Arg(0)) {
		if found, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func isRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, command subcommands.Command) {
		if command.Name() == name {
			found = true
		}
	})
	return found
}
