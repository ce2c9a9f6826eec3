package providers

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// Known provider names
const (
	OpenAI   = "openai"
	DeepSeek = "deepseek"
)

// ChatRequest represents a chat completion request
type ChatRequest struct {
	Model       string                         `json:"model"`
	Messages    []openai.ChatCompletionMessage `json:"messages"`
	Temperature *float32                       `json:"temperature,omitempty"`
	MaxTokens   *int                           `json:"max_tokens,omitempty"`
}

// ChatResponse represents a chat completion response
type ChatResponse struct {
	ID        string                        `json:"id"`
	Model     string                        `json:"model"`
	Choices   []openai.ChatCompletionChoice `json:"choices"`
	Usage     openai.Usage                  `json:"usage"`
	LatencyMs int                           `json:"latency_ms,omitempty"`
}

// Content returns the text of the first choice, or "" if there is none
func (r *ChatResponse) Content() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// Provider is the interface all LLM providers must implement
type Provider interface {
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	GetProviderName() string
	// GetDisplayName is the human label reported as the generation method
	GetDisplayName() string
	GetModel() string
}

// Label returns the short product name for a provider ("OpenAI", "DeepSeek")
func Label(name string) string {
	switch name {
	case OpenAI:
		return "OpenAI"
	case DeepSeek:
		return "DeepSeek"
	}
	return name
}

// APIKeyEnv returns the environment variable that enables a provider
func APIKeyEnv(name string) string {
	switch name {
	case OpenAI:
		return "OPENAI_API_KEY"
	case DeepSeek:
		return "DEEPSEEK_API_KEY"
	}
	return ""
}
