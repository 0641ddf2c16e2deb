// Package logging builds the slog loggers of the server and the CLI.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Options configures New.
type Options struct {
	Level      string // debug, info, warn or error
	Format     string // text or json
	TimeFormat string
	Prefix     string
	// ReportCaller adds the source location of every record.
	ReportCaller bool
}

var levels = map[string]log.Level{
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
}

var formatters = map[string]log.Formatter{
	"json": log.JSONFormatter,
	"text": log.TextFormatter,
}

// New returns a slog.Logger writing to w through a charmbracelet logger.
// Unknown levels fall back to info and unknown formats to text.
func New(w io.Writer, opts Options) *slog.Logger {
	level, ok := levels[strings.ToLower(opts.Level)]
	if !ok {
		level = log.InfoLevel
	}
	formatter, ok := formatters[strings.ToLower(opts.Format)]
	if !ok {
		formatter = log.TextFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    opts.ReportCaller,
		ReportTimestamp: opts.TimeFormat != "",
		TimeFormat:      opts.TimeFormat,
		Level:           level,
		Prefix:          opts.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles())
	return slog.New(logger)
}

func styles() *log.Styles {
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	level := func(symbol string, color lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().SetString(symbol).Bold(true).Padding(0, 1).Foreground(color)
	}
	styles.Levels[log.ErrorLevel] = level("ERRO", errorTxtColor)
	styles.Levels[log.InfoLevel] = level("INFO", infoTxtColor)
	styles.Levels[log.WarnLevel] = level("WARN", warnTxtColor)
	styles.Levels[log.DebugLevel] = level("DEBU", debugTxtColor)

	styles.Keys["error"] = lipgloss.NewStyle().Foreground(errorTxtColor)
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["cause"] = lipgloss.NewStyle().Foreground(errorTxtColor)
	styles.Keys["rate"] = lipgloss.NewStyle().Foreground(infoTxtColor)
	styles.Values["rate"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["request_id"] = lipgloss.NewStyle().Foreground(debugTxtColor)
	return styles
}
