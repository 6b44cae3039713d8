package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"NUTRIPLAN_DB_PATH", "LLM_PROVIDER", "GEMINI_API_KEY", "GROQ_API_KEY",
		"SPOONACULAR_API_KEY", "NUTRIPLAN_DAILY_CALORIES", "NUTRIPLAN_SERVINGS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "data/nutriplan.db", cfg.DBPath)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, 2000.0, cfg.DailyCalories)
	assert.Equal(t, 1, cfg.Servings)
	assert.False(t, cfg.HasAICredentials())
}

func TestNewFromEnv_ReadsValues(t *testing.T) {
	t.Setenv("NUTRIPLAN_DB_PATH", "/tmp/test.db")
	t.Setenv("LLM_PROVIDER", ProviderGroq)
	t.Setenv("GROQ_API_KEY", "groq_key")
	t.Setenv("NUTRIPLAN_DAILY_CALORIES", "2400")
	t.Setenv("NUTRIPLAN_SERVINGS", "3")

	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, ProviderGroq, cfg.LLMProvider)
	assert.Equal(t, 2400.0, cfg.DailyCalories)
	assert.Equal(t, 3, cfg.Servings)
	assert.True(t, cfg.HasAICredentials())
}

func TestNewFromEnv_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("NUTRIPLAN_DAILY_CALORIES", "beaucoup")
	t.Setenv("NUTRIPLAN_SERVINGS", "-2")

	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 2000.0, cfg.DailyCalories)
	assert.Equal(t, 1, cfg.Servings)
}
