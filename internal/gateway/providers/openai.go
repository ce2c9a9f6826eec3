package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider handles requests to any OpenAI-compatible chat completions API.
// DeepSeek is served by the same type pointed at its own base URL.
type OpenAIProvider struct {
	client      *openai.Client
	name        string
	displayName string
	model       string
}

// NewOpenAIProvider creates a provider for the OpenAI API
func NewOpenAIProvider(apiKey, baseURL, model string, timeout time.Duration) *OpenAIProvider {
	return newCompatibleProvider(OpenAI, openAIDisplayName(model), apiKey, baseURL, model, timeout)
}

// NewDeepSeekProvider creates a provider for the DeepSeek API
func NewDeepSeekProvider(apiKey, baseURL, model string, timeout time.Duration) *OpenAIProvider {
	return newCompatibleProvider(DeepSeek, "DeepSeek", apiKey, baseURL, model, timeout)
}

func newCompatibleProvider(name, displayName, apiKey, baseURL, model string, timeout time.Duration) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(cfg),
		name:        name,
		displayName: displayName,
		model:       model,
	}
}

// openAIDisplayName turns "gpt-3.5-turbo" into "OpenAI GPT-3.5-turbo"
func openAIDisplayName(model string) string {
	if strings.HasPrefix(model, "gpt-") {
		return "OpenAI GPT-" + strings.TrimPrefix(model, "gpt-")
	}
	return "OpenAI " + model
}

// ChatCompletion makes a chat completion request
func (p *OpenAIProvider) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	startTime := time.Now()

	model := req.Model
	if model == "" {
		model = p.model
	}

	openaiReq := openai.ChatCompletionRequest{
		Model:    model,
		Messages: req.Messages,
	}

	if req.Temperature != nil {
		openaiReq.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		openaiReq.MaxTokens = *req.MaxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, openaiReq)
	if err != nil {
		return nil, fmt.Errorf("%s API error: %w", Label(p.name), err)
	}

	return &ChatResponse{
		ID:        resp.ID,
		Model:     resp.Model,
		Choices:   resp.Choices,
		Usage:     resp.Usage,
		LatencyMs: int(time.Since(startTime).Milliseconds()),
	}, nil
}

// GetProviderName returns the provider name
func (p *OpenAIProvider) GetProviderName() string {
	return p.name
}

// GetDisplayName returns the label used in generation results
func (p *OpenAIProvider) GetDisplayName() string {
	return p.displayName
}

// GetModel returns the default model id
func (p *OpenAIProvider) GetModel() string {
	return p.model
}
