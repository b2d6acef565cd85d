package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

type Config struct {
	Port        string
	ServiceName string

	LLMProvider string

	GeminiAPIKey string
	GeminiModel  string

	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	GenerationTimeoutSeconds int
	CORSAllowOrigins         string

	LogLevel  string
	LogFormat string
	LogFile   string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:                     getEnv("PORT", "8080"),
		ServiceName:              getEnv("SERVICE_NAME", "Mr.Cool AI"),
		LLMProvider:              strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		GeminiAPIKey:             strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:              getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenRouterAPIKey:         strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")),
		OpenRouterBase:           getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:          getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct"),
		OpenRouterAppTitle:       os.Getenv("OPENROUTER_APP_TITLE"),
		OpenRouterReferer:        os.Getenv("OPENROUTER_REFERER"),
		GenerationTimeoutSeconds: getEnvInt("GENERATION_TIMEOUT_SECONDS", 60),
		CORSAllowOrigins:         getEnv("CORS_ALLOW_ORIGINS", "*"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		LogFormat:                getEnv("LOG_FORMAT", "json"),
		LogFile:                  os.Getenv("LOG_FILE"),
	}
	return cfg
}

// Validate reports configuration the service cannot start without.
func (c Config) Validate() error {
	switch c.LLMProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY environment variable is not set")
		}
	case ProviderOpenRouter:
		if c.OpenRouterAPIKey == "" {
			return errors.New("OPENROUTER_API_KEY environment variable is not set")
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q (expected %q or %q)", c.LLMProvider, ProviderGemini, ProviderOpenRouter)
	}
	if c.GenerationTimeoutSeconds < 0 {
		return fmt.Errorf("GENERATION_TIMEOUT_SECONDS must not be negative, got %d", c.GenerationTimeoutSeconds)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}
