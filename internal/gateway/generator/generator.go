package generator

import (
	"context"
	"log"

	"github.com/mrmushfiq/cloud-ide-server/internal/gateway/providers"
)

const (
	// ChoiceAuto lets the registry pick a provider by availability
	ChoiceAuto = "auto"

	// MethodTemplate is the method label for the static fallback path
	MethodTemplate = "template"

	autoSuffix = " (auto-selected)"
)

// Registry is the slice of the provider manager the generator needs
type Registry interface {
	Resolve(choice string) (name string, auto bool, err error)
	Invoke(ctx context.Context, name string, req providers.ChatRequest) (string, error)
	DisplayName(name string) string
	Model(name string) string
}

// Cache stores provider-produced HTML. Implementations report a miss as an error.
type Cache interface {
	Get(ctx context.Context, provider, model, description string) (string, error)
	Set(ctx context.Context, provider, model, description, html string) error
}

// Request is one generation call
type Request struct {
	Description string
	Provider    string
}

// Result is the outcome of a generation. Generation always yields HTML; the
// Method label tells the caller which path produced it.
type Result struct {
	HTML     string
	Method   string
	Provider string // as requested by the caller
	Source   string // openai, deepseek or template
	CacheHit bool

	// FallbackReason is the error that sent the request to the templates, if any
	FallbackReason error
}

// UsedFallback reports whether the result came from the static templates
func (r *Result) UsedFallback() bool {
	return r.Source == MethodTemplate
}

// Generator resolves a provider, calls it, and falls back to templates on any failure
type Generator struct {
	registry Registry
	cache    Cache
}

// New creates a generator. cache may be nil.
func New(registry Registry, cache Cache) *Generator {
	return &Generator{registry: registry, cache: cache}
}

// Generate produces HTML for a description. The only error is ErrEmptyDescription.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if req.Description == "" {
		return nil, ErrEmptyDescription
	}

	choice := req.Provider
	if choice == "" {
		choice = ChoiceAuto
	}
	result := &Result{Provider: choice}

	name, auto, err := g.registry.Resolve(choice)
	if err != nil {
		log.Printf("LLM not configured for %q, using template fallback: %v", choice, err)
		return g.fallback(result, req.Description, err), nil
	}

	html, cacheHit, err := g.complete(ctx, name, req.Description)
	if err != nil {
		log.Printf("LLM generation failed, falling back to templates: %v", err)
		return g.fallback(result, req.Description, err), nil
	}

	result.HTML = html
	result.Source = name
	result.CacheHit = cacheHit
	result.Method = g.registry.DisplayName(name)
	if auto {
		result.Method += autoSuffix
	}

	return result, nil
}

// complete returns provider HTML, consulting the cache first when one is set
func (g *Generator) complete(ctx context.Context, name, description string) (string, bool, error) {
	model := g.registry.Model(name)

	if g.cache != nil {
		if html, err := g.cache.Get(ctx, name, model, description); err == nil && html != "" {
			return html, true, nil
		}
	}

	log.Printf("Using %s for website generation...", g.registry.DisplayName(name))
	html, err := g.registry.Invoke(ctx, name, BuildPrompt(description).ChatRequest())
	if err != nil {
		return "", false, err
	}

	if g.cache != nil {
		if err := g.cache.Set(ctx, name, model, description, html); err != nil {
			log.Printf("cache set failed: %v", err)
		}
	}

	return html, false, nil
}

func (g *Generator) fallback(result *Result, description string, reason error) *Result {
	result.HTML = SelectTemplate(description)
	result.Method = MethodTemplate
	result.Source = MethodTemplate
	result.FallbackReason = reason
	return result
}
