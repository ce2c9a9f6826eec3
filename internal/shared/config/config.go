package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the server
type Config struct {
	// Server
	Port string
	Env  string

	// Provider credentials and endpoints
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModel     string
	DeepSeekAPIKey  string
	DeepSeekBaseURL string
	DeepSeekModel   string

	// ProviderTimeout bounds every upstream completion call
	ProviderTimeout time.Duration

	// Redis (optional HTML cache)
	RedisURL        string
	CacheEnabled    bool
	CacheTTLSeconds int

	// Database (optional generation log)
	DatabaseURL string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "5000"),
		Env:             getEnv("ENV", "development"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		DeepSeekAPIKey:  getEnv("DEEPSEEK_API_KEY", ""),
		DeepSeekBaseURL: getEnv("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1"),
		DeepSeekModel:   getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
		ProviderTimeout: time.Duration(getEnvInt("PROVIDER_TIMEOUT_SECONDS", 30)) * time.Second,
		RedisURL:        getEnv("REDIS_URL", ""),
		CacheEnabled:    getEnvBool("CACHE_ENABLED", true),
		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 3600),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}

	// No provider keys is fine: the server runs in template-only mode.
	return cfg, nil
}

// HasAnyProvider reports whether at least one provider key is configured
func (c *Config) HasAnyProvider() bool {
	return c.OpenAIAPIKey != "" || c.DeepSeekAPIKey != ""
}

// CacheActive reports whether the Redis HTML cache should be used
func (c *Config) CacheActive() bool {
	return c.CacheEnabled && c.RedisURL != ""
}

// CacheTTL returns the cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
