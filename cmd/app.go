// Package cmd implements the rorc command line application.
package cmd

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/edu2101/ror"
	"github.com/edu2101/ror/logging"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&calcCmd{}, "calculator")
	c.Register(&fvCmd{}, "calculator")
	c.Register(&pvCmd{}, "calculator")
	c.Register(&bandsCmd{}, "calculator")
	c.Register(&formCmd{}, "calculator")

	c.Register(&serveCmd{}, "server")
	c.Register(&adviseCmd{}, "assistant")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var defaultCurrency = flag.String("currency", envOr(EnvDefaultCurrency, ror.DefaultCurrency), "Currency code of the displayed amounts. Overrides "+EnvDefaultCurrency+".")
var decimals = flag.Int("decimals", envInt(EnvDecimals, ror.DefaultPercentDecimals), "Fractional digits of displayed rates. Overrides "+EnvDecimals+".")

// Verbose enables debug logs on stderr.
var Verbose = flag.Bool("v", envBool(EnvVerbose), "Verbose output. Overrides "+EnvVerbose+".")

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

// Logger returns the CLI logger, writing to stderr.
func Logger() *slog.Logger {
	level := "warn"
	if *Verbose {
		level = "debug"
	}
	return logging.New(os.Stderr, logging.Options{Level: level, Prefix: "rorc"})
}

// printMarkdown renders markdown for the terminal, or prints it as is when
// stdout is not a terminal.
func printMarkdown(md string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
