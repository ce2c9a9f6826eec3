package generator

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmushfiq/cloud-ide-server/internal/gateway/providers"
)

// scriptedProvider plugs canned answers into a real providers.Manager
type scriptedProvider struct {
	name  string
	html  string
	err   error
	calls int
	last  providers.ChatRequest
}

func (p *scriptedProvider) ChatCompletion(ctx context.Context, req providers.ChatRequest) (*providers.ChatResponse, error) {
	p.calls++
	p.last = req
	if p.err != nil {
		return nil, p.err
	}
	resp := &providers.ChatResponse{}
	if p.html != "" {
		resp.Choices = append(resp.Choices, completionChoice(p.html))
	}
	return resp, nil
}

func (p *scriptedProvider) GetProviderName() string { return p.name }
func (p *scriptedProvider) GetModel() string        { return p.name + "-model" }
func (p *scriptedProvider) GetDisplayName() string {
	if p.name == providers.OpenAI {
		return "OpenAI GPT-3.5-turbo"
	}
	return "DeepSeek"
}

func completionChoice(content string) openai.ChatCompletionChoice {
	return openai.ChatCompletionChoice{
		Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
	}
}

type memCache struct {
	entries map[string]string
	setErr  error
}

func newMemCache() *memCache { return &memCache{entries: map[string]string{}} }

func (c *memCache) key(provider, model, description string) string {
	return fmt.Sprintf("%s|%s|%s", provider, model, description)
}

func (c *memCache) Get(ctx context.Context, provider, model, description string) (string, error) {
	html, ok := c.entries[c.key(provider, model, description)]
	if !ok {
		return "", errors.New("miss")
	}
	return html, nil
}

func (c *memCache) Set(ctx context.Context, provider, model, description, html string) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[c.key(provider, model, description)] = html
	return nil
}

func TestGenerateRejectsEmptyDescription(t *testing.T) {
	g := New(providers.NewManagerWith(0), nil)

	_, err := g.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func TestGenerateTemplateOnlyMode(t *testing.T) {
	g := New(providers.NewManagerWith(0), nil)

	for _, choice := range []string{"", "auto", "openai", "deepseek", "bogus"} {
		res, err := g.Generate(context.Background(), Request{Description: "I need a portfolio site", Provider: choice})
		require.NoError(t, err)
		assert.Equal(t, MethodTemplate, res.Method)
		assert.True(t, res.UsedFallback())
		assert.Equal(t, TemplatePortfolio.HTML(), res.HTML)
		assert.ErrorIs(t, res.FallbackReason, providers.ErrNoProvider)
	}
}

func TestGenerateAutoPrefersDeepSeek(t *testing.T) {
	oa := &scriptedProvider{name: providers.OpenAI, html: "<html>oa</html>"}
	ds := &scriptedProvider{name: providers.DeepSeek, html: "<html>ds</html>"}
	g := New(providers.NewManagerWith(0, oa, ds), nil)

	res, err := g.Generate(context.Background(), Request{Description: "a blog"})
	require.NoError(t, err)

	assert.Equal(t, "<html>ds</html>", res.HTML)
	assert.Equal(t, "DeepSeek (auto-selected)", res.Method)
	assert.Equal(t, "auto", res.Provider)
	assert.Equal(t, providers.DeepSeek, res.Source)
	assert.Equal(t, 1, ds.calls)
	assert.Equal(t, 0, oa.calls)

	require.Len(t, ds.last.Messages, 2)
	assert.Contains(t, ds.last.Messages[1].Content, `"a blog"`)
	assert.Equal(t, MaxTokens, *ds.last.MaxTokens)
}

func TestGenerateExplicitProvider(t *testing.T) {
	oa := &scriptedProvider{name: providers.OpenAI, html: "<html>oa</html>"}
	ds := &scriptedProvider{name: providers.DeepSeek, html: "<html>ds</html>"}
	g := New(providers.NewManagerWith(0, oa, ds), nil)

	res, err := g.Generate(context.Background(), Request{Description: "a blog", Provider: "openai"})
	require.NoError(t, err)

	assert.Equal(t, "<html>oa</html>", res.HTML)
	assert.Equal(t, "OpenAI GPT-3.5-turbo", res.Method)
	assert.Equal(t, "openai", res.Provider)
	assert.Nil(t, res.FallbackReason)
}

func TestGenerateExplicitUnconfiguredFallsBack(t *testing.T) {
	oa := &scriptedProvider{name: providers.OpenAI, html: "<html>oa</html>"}
	g := New(providers.NewManagerWith(0, oa), nil)

	res, err := g.Generate(context.Background(), Request{Description: "marketing site", Provider: "deepseek"})
	require.NoError(t, err)

	assert.Equal(t, MethodTemplate, res.Method)
	assert.Equal(t, TemplateLanding.HTML(), res.HTML)
	assert.Equal(t, 0, oa.calls, "no silent switch to another provider")
}

func TestGenerateProviderFailureFallsBack(t *testing.T) {
	ds := &scriptedProvider{name: providers.DeepSeek, err: errors.New("status 503")}
	g := New(providers.NewManagerWith(0, ds), nil)

	res, err := g.Generate(context.Background(), Request{Description: "hello"})
	require.NoError(t, err)

	assert.Equal(t, MethodTemplate, res.Method)
	assert.Equal(t, TemplateHelloWorld.HTML(), res.HTML)

	var perr *providers.ProviderError
	require.ErrorAs(t, res.FallbackReason, &perr)
	assert.Equal(t, providers.DeepSeek, perr.Provider)
}

func TestGenerateEmptyCompletionFallsBack(t *testing.T) {
	ds := &scriptedProvider{name: providers.DeepSeek}
	g := New(providers.NewManagerWith(0, ds), nil)

	res, err := g.Generate(context.Background(), Request{Description: "resume"})
	require.NoError(t, err)

	assert.Equal(t, TemplatePortfolio.HTML(), res.HTML)
	assert.ErrorIs(t, res.FallbackReason, providers.ErrEmptyCompletion)
}

func TestGenerateUsesCache(t *testing.T) {
	ds := &scriptedProvider{name: providers.DeepSeek, html: "<html>ds</html>"}
	cache := newMemCache()
	g := New(providers.NewManagerWith(0, ds), cache)

	first, err := g.Generate(context.Background(), Request{Description: "a blog", Provider: "deepseek"})
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	second, err := g.Generate(context.Background(), Request{Description: "a blog", Provider: "deepseek"})
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, "<html>ds</html>", second.HTML)
	assert.Equal(t, "DeepSeek", second.Method)
	assert.Equal(t, 1, ds.calls)
}

func TestGenerateCacheSetFailureIsIgnored(t *testing.T) {
	ds := &scriptedProvider{name: providers.DeepSeek, html: "<html>ds</html>"}
	cache := newMemCache()
	cache.setErr = errors.New("redis down")
	g := New(providers.NewManagerWith(0, ds), cache)

	res, err := g.Generate(context.Background(), Request{Description: "a blog"})
	require.NoError(t, err)
	assert.Equal(t, "<html>ds</html>", res.HTML)
}

func TestGenerateNeverCachesTemplates(t *testing.T) {
	ds := &scriptedProvider{name: providers.DeepSeek, err: errors.New("boom")}
	cache := newMemCache()
	g := New(providers.NewManagerWith(0, ds), cache)

	_, err := g.Generate(context.Background(), Request{Description: "a blog"})
	require.NoError(t, err)
	assert.Empty(t, cache.entries)
}
