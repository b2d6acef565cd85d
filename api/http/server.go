package http

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"github.com/Gogul-D/Ai-bot/api/http/presenter"
)

type Options struct {
	AppName string
	// AllowOrigins is "*" or a comma-separated list of origins.
	AllowOrigins string
}

// NewApp builds the Fiber app with the middleware stack every route shares.
// Routes are added separately with Register.
func NewApp(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               opts.AppName,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(requestLogger())
	app.Use(recover.New())
	app.Use(cors.New(corsConfig(opts.AllowOrigins)))

	return app
}

func corsConfig(allowOrigins string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodHead, fiber.MethodPut, fiber.MethodDelete, fiber.MethodPatch, fiber.MethodOptions}, ","),
		AllowCredentials: true,
	}
	origins := splitOrigins(allowOrigins)
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		// Fiber rejects a literal "*" together with credentials; reflect the
		// request origin instead.
		cfg.AllowOriginsFunc = func(string) bool { return true }
		return cfg
	}
	cfg.AllowOrigins = strings.Join(origins, ",")
	return cfg
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// errorHandler renders every error that escapes a handler in the same
// {"detail": ...} envelope the chat endpoint uses.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	detail := utils.StatusMessage(code)

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		detail = fe.Message
		if code == fiber.StatusNotFound || code == fiber.StatusMethodNotAllowed {
			detail = utils.StatusMessage(code)
		}
	} else {
		slog.Error("unhandled_error",
			"request_id", c.Locals("requestid"),
			"path", c.Path(),
			"err", err,
		)
	}
	return presenter.Error(c, code, detail)
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		slog.Info("http_request",
			"request_id", c.Locals("requestid"),
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}
}
