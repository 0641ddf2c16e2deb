// Package config loads the configuration of the rorc HTTP server.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable.
const Prefix = "ROR"

type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0" validate:"required"`
	Port int    `envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
}

type Log struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format     string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"100" validate:"min=1"`
	Window      time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m" validate:"min=1ms"`
}

type Cache struct {
	// URL of a redis server; evaluations are cached in memory when empty.
	URL    string        `envconfig:"CACHE_URL" validate:"omitempty,url"`
	TTL    time.Duration `envconfig:"CACHE_TTL" default:"10m" validate:"min=1s"`
	Prefix string        `envconfig:"CACHE_PREFIX" default:"ror:"`
}

// App is the complete server configuration. The embedded groups share the
// flat ROR_ namespace.
type App struct {
	Env             string `envconfig:"ENV" default:"development" validate:"oneof=development production test"`
	DefaultCurrency string `envconfig:"DEFAULT_CURRENCY" default:"USD" validate:"len=3,alpha"`
	Server
	Log
	RateLimit
	Cache
}

// Addr is the listening address of the server.
func (a *App) Addr() string { return fmt.Sprintf("%s:%d", a.Server.Host, a.Server.Port) }

// Load reads the configuration from the environment, after loading the
// first env file that exists among envFilePath. Variables already set in the
// environment win over the file.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	for _, path := range envFilePath {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("Environment file not loaded", "path", path, "error", err)
			continue
		}
		logger.Info("Loaded environment file", "path", path)
		break
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	slog.Default().Debug("App config loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"cache_url", maskValue(cfg.Cache.URL),
		"cache_ttl", cfg.Cache.TTL,
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
