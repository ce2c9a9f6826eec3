package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENV", "OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL",
		"DEEPSEEK_API_KEY", "DEEPSEEK_BASE_URL", "DEEPSEEK_MODEL",
		"PROVIDER_TIMEOUT_SECONDS", "REDIS_URL", "CACHE_ENABLED", "CACHE_TTL_SECONDS", "DATABASE_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAIBaseURL)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
	assert.Equal(t, "https://api.deepseek.com/v1", cfg.DeepSeekBaseURL)
	assert.Equal(t, "deepseek-chat", cfg.DeepSeekModel)
	assert.Equal(t, 30*time.Second, cfg.ProviderTimeout)
	assert.False(t, cfg.HasAnyProvider())
	assert.False(t, cfg.CacheActive(), "cache needs REDIS_URL")
	assert.Equal(t, time.Hour, cfg.CacheTTL())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("DEEPSEEK_API_KEY", "ds-key")
	t.Setenv("PROVIDER_TIMEOUT_SECONDS", "5")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("CACHE_TTL_SECONDS", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "ds-key", cfg.DeepSeekAPIKey)
	assert.True(t, cfg.HasAnyProvider())
	assert.Equal(t, 5*time.Second, cfg.ProviderTimeout)
	assert.True(t, cfg.CacheActive())
	assert.Equal(t, time.Minute, cfg.CacheTTL())
}

func TestLoadCacheDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("CACHE_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.CacheActive())
}

func TestLoadRejectsBadPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "http")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROVIDER_TIMEOUT_SECONDS", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.ProviderTimeout)
}
