package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/edu2101/ror/api"
	"github.com/edu2101/ror/cache"
	"github.com/edu2101/ror/config"
	"github.com/edu2101/ror/logging"
	"github.com/google/subcommands"
)

type serveCmd struct {
	envFile string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the calculator HTTP API" }
func (*serveCmd) Usage() string {
	return `rorc serve [-env <file>]

  Serves the calculator HTTP API until interrupted.
  The server is configured with ROR_* environment variables, see 'rorc topic server'.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.envFile, "env", ".env", "Environment file to load, if it exists")
}

// newCache is the redis cache when configured, an in memory cache otherwise.
// The in memory cache is swept every TTL until the returned close function is called.
func newCache(ctx context.Context, cfg *config.App, logger *slog.Logger) (cache.Cache, func(), error) {
	if cfg.Cache.URL == "" {
		mem := cache.NewMemory(cfg.Cache.TTL)
		ctx, cancel := context.WithCancel(ctx)
		go mem.Cleanup(ctx, cfg.Cache.TTL)
		return mem, cancel, nil
	}
	r, err := cache.NewRedis(cfg.Cache.URL, cfg.Cache.Prefix, cfg.Cache.TTL, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := r.Ping(ctx); err != nil {
		r.Close()
		return nil, nil, fmt.Errorf("redis unreachable: %w", err)
	}
	return r, func() { r.Close() }, nil
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load(c.envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	level := cfg.Log.Level
	if *Verbose {
		level = "debug"
	}
	logger := logging.New(os.Stderr, logging.Options{
		Level:        level,
		Format:       cfg.Log.Format,
		TimeFormat:   cfg.Log.TimeFormat,
		Prefix:       "rorc",
		ReportCaller: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := newCache(ctx, cfg, logger)
	if err != nil {
		logger.Error("Cache unavailable", "error", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	app := api.NewApp(api.Options{
		Cache:       store,
		Currency:    cfg.DefaultCurrency,
		Logger:      logger,
		MaxRequests: cfg.RateLimit.MaxRequests,
		Window:      cfg.RateLimit.Window,
	})

	errc := make(chan error, 1)
	go func() {
		logger.Info("Serving", "addr", cfg.Addr(), "env", cfg.Env)
		errc <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errc:
		logger.Error("Server stopped", "error", err)
		return subcommands.ExitFailure
	case <-ctx.Done():
		logger.Info("Shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error("Shutdown failed", "error", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
