// Package config loads the application configuration from the
// environment, with optional .env support for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LLM provider names accepted in LLM_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderGroq   = "groq"
)

// Config holds the configuration for the application. All AI and API
// credentials are optional: without them the planner still works through
// its local sources and built-in recipes.
type Config struct {
	DBPath            string
	LLMProvider       string
	GeminiAPIKey      string
	GroqAPIKey        string
	SpoonacularAPIKey string
	DailyCalories     float64
	Servings          int
}

// NewFromEnv creates a new Config object from environment variables. A
// .env file in the working directory is loaded first when present.
func NewFromEnv() (*Config, error) {
	// Missing .env is the normal production case.
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:            getEnv("NUTRIPLAN_DB_PATH", "data/nutriplan.db"),
		LLMProvider:       getEnv("LLM_PROVIDER", ProviderGemini),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GroqAPIKey:        os.Getenv("GROQ_API_KEY"),
		SpoonacularAPIKey: os.Getenv("SPOONACULAR_API_KEY"),
		DailyCalories:     2000,
		Servings:          1,
	}

	if raw := os.Getenv("NUTRIPLAN_DAILY_CALORIES"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			cfg.DailyCalories = v
		}
	}
	if raw := os.Getenv("NUTRIPLAN_SERVINGS"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			cfg.Servings = v
		}
	}

	return cfg, nil
}

// HasAICredentials reports whether any LLM provider is usable.
func (c *Config) HasAICredentials() bool {
	return c.GeminiAPIKey != "" || c.GroqAPIKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
