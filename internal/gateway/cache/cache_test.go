package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmushfiq/cloud-ide-server/internal/shared/redis"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := redis.New(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return New(client, ttl), mr
}

func TestKey(t *testing.T) {
	k := Key("deepseek", "deepseek-chat", "a blog")
	assert.Regexp(t, `^cache:site:[0-9a-f]{64}$`, k)
	assert.Equal(t, k, Key("deepseek", "deepseek-chat", "a blog"))
	assert.NotEqual(t, k, Key("openai", "deepseek-chat", "a blog"))
	assert.NotEqual(t, k, Key("deepseek", "deepseek-chat", "A blog"))
}

func TestCacheRoundTrip(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)
	ctx := context.Background()

	_, err := c.Get(ctx, "openai", "gpt-3.5-turbo", "a blog")
	assert.ErrorIs(t, err, redis.ErrNotFound)

	require.NoError(t, c.Set(ctx, "openai", "gpt-3.5-turbo", "a blog", "<html></html>"))

	html, err := c.Get(ctx, "openai", "gpt-3.5-turbo", "a blog")
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", html)
	assert.Equal(t, time.Hour, mr.TTL(Key("openai", "gpt-3.5-turbo", "a blog")))
}

func TestCacheRejectsEmpty(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	assert.Error(t, c.Set(context.Background(), "openai", "m", "d", ""))
}
