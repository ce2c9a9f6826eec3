package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/mrmushfiq/cloud-ide-server/internal/shared/redis"
)

// Cache stores provider-generated HTML in Redis
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

// New creates a new cache instance
func New(redisClient *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: redisClient, ttl: ttl}
}

// Key generates a hash of the generation inputs for caching
func Key(provider, model, description string) string {
	keyData := fmt.Sprintf("%s|%s|%s", provider, model, description)

	hash := sha256.Sum256([]byte(keyData))
	return "cache:site:" + hex.EncodeToString(hash[:])
}

// Get retrieves cached HTML
func (c *Cache) Get(ctx context.Context, provider, model, description string) (string, error) {
	return c.redis.Get(ctx, Key(provider, model, description))
}

// Set stores HTML in cache
func (c *Cache) Set(ctx context.Context, provider, model, description, html string) error {
	if html == "" {
		return fmt.Errorf("refusing to cache empty document")
	}
	return c.redis.Set(ctx, Key(provider, model, description), html, c.ttl)
}
