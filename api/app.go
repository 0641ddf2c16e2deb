// Package api serves the rate of return calculator over HTTP.
package api

import (
	"log/slog"
	"time"

	"github.com/edu2101/ror"
	"github.com/edu2101/ror/cache"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// Options configures NewApp. Zero values get defaults.
type Options struct {
	Cache    cache.Cache // in memory for 10 minutes by default
	Currency string      // ror.DefaultCurrency by default
	Logger   *slog.Logger

	// Requests allowed per client IP and window; no limit when MaxRequests is 0.
	MaxRequests int
	Window      time.Duration
}

func NewApp(opts Options) *fiber.App {
	if opts.Cache == nil {
		opts.Cache = cache.NewMemory(10 * time.Minute)
	}
	if opts.Currency == "" {
		opts.Currency = ror.DefaultCurrency
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Window <= 0 {
		opts.Window = time.Minute
	}

	app := fiber.New(fiber.Config{
		AppName:               "rorc",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default to 500 if status code cannot be determined
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			if status >= fiber.StatusInternalServerError {
				opts.Logger.Error("Request failed", "error", err, "path", c.Path(), "request_id", requestID(c))
			}
			return ErrorResponseJSON(c, status, utils.StatusMessage(status), err.Error())
		},
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(recover.New())
	app.Use(accessLog(opts.Logger))
	if opts.MaxRequests > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        opts.MaxRequests,
			Expiration: opts.Window,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
			},
		}))
	}

	h := &handlers{cache: opts.Cache, currency: opts.Currency, logger: opts.Logger}

	app.Get("/healthz", healthz)

	v1 := app.Group("/api/v1")
	v1.Post("/ror", h.rateOfReturn)
	v1.Get("/ror/report.html", h.reportHTML)
	v1.Post("/future-value", h.futureValue)
	v1.Post("/present-value", h.presentValue)
	v1.Get("/bands", h.bands)

	return app
}

// accessLog logs every request at debug level, and server errors at error level.
func accessLog(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Debug("Request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
			"request_id", requestID(c),
		)
		return err
	}
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	return id
}
