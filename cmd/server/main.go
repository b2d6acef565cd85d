// @title       Mr.Cool AI
// @version     1.0.0
// @description Forwards a text prompt to a generative model and returns its reply.
// @BasePath    /
// @schemes     http
// @host        localhost:8080
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gogul-D/Ai-bot/docs"

	// internal imports
	"github.com/Gogul-D/Ai-bot/api/http"
	"github.com/Gogul-D/Ai-bot/api/http/handlers"
	"github.com/Gogul-D/Ai-bot/pkg/chat"
	"github.com/Gogul-D/Ai-bot/pkg/config"
	"github.com/Gogul-D/Ai-bot/pkg/llm"
	"github.com/Gogul-D/Ai-bot/pkg/llm/gemini"
	"github.com/Gogul-D/Ai-bot/pkg/llm/openrouter"
	"github.com/Gogul-D/Ai-bot/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration from env/.env
	cfg := config.Load()

	if _, err := logging.Init(cfg); err != nil {
		slog.Warn("log file unavailable, logging to stdout", "path", cfg.LogFile, "err", err)
	}

	// The model credential is required before anything is served.
	if err := cfg.Validate(); err != nil {
		fatal("invalid configuration", err)
	}

	gen, model, err := newGenerator(ctx, cfg)
	if err != nil {
		fatal("failed to create generator", err)
	}
	slog.Info("generator_ready", "provider", cfg.LLMProvider, "model", model)

	chatUC, err := chat.NewService(gen, time.Duration(cfg.GenerationTimeoutSeconds)*time.Second)
	if err != nil {
		fatal("failed to create chat service", err)
	}
	chatHandler, err := handlers.NewChatHandler(chatUC)
	if err != nil {
		fatal("failed to create chat handler", err)
	}
	healthHandler := handlers.NewHealthHandler(cfg.ServiceName)

	docs.SwaggerInfo.Title = cfg.ServiceName

	app := http.NewApp(http.Options{AppName: cfg.ServiceName, AllowOrigins: cfg.CORSAllowOrigins})
	http.Register(app, healthHandler, chatHandler)

	go func() {
		<-ctx.Done()
		slog.Info("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			slog.Error("shutdown failed", "err", err)
		}
	}()

	port := cfg.Port
	slog.Info("HTTP server listening", "addr", ":"+port)
	if err := app.Listen(":" + port); err != nil {
		fatal("server stopped", err)
	}
}

// newGenerator builds the single provider handle shared by all requests.
func newGenerator(ctx context.Context, cfg config.Config) (llm.Generator, string, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		c, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, "", err
		}
		return c, c.Model(), nil
	case config.ProviderOpenRouter:
		c, err := openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBase,
			cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle,
			cfg.OpenRouterReferer,
		)
		if err != nil {
			return nil, "", err
		}
		return c, c.Model(), nil
	default:
		return nil, "", fmt.Errorf("unknown provider %q", cfg.LLMProvider)
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
