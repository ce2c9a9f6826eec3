package generator

import (
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/mrmushfiq/cloud-ide-server/internal/gateway/providers"
)

// Fixed generation parameters. Not configurable per request.
const (
	MaxTokens   = 2000
	Temperature = float32(0.7)
)

const systemPrompt = "You are an expert web developer who creates beautiful, modern websites. " +
	"Always return complete, working HTML files. Keep responses concise but complete."

const userPromptFormat = `You are an expert web developer. Create a complete, modern, responsive HTML website based on this description: "%s"

Requirements:
- Include complete HTML, CSS, and JavaScript in a single file
- Make it responsive and mobile-friendly
- Use modern CSS with gradients, shadows, and animations
- Include interactive elements if appropriate
- Make it visually appealing and professional
- Use semantic HTML5 elements
- Include proper meta tags and viewport settings
- Keep the code clean and well-structured
- Optimize for token usage efficiency

Return ONLY the complete HTML file with embedded CSS and JavaScript. No explanations, just the code.`

// Prompt is the system/user message pair sent to a provider
type Prompt struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

// BuildPrompt embeds the description verbatim into the fixed prompt pair
func BuildPrompt(description string) Prompt {
	return Prompt{
		System:      systemPrompt,
		User:        fmt.Sprintf(userPromptFormat, description),
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	}
}

// ChatRequest converts the prompt into a provider request. Model is left
// empty so each provider uses its configured default.
func (p Prompt) ChatRequest() providers.ChatRequest {
	maxTokens := p.MaxTokens
	temperature := p.Temperature

	return providers.ChatRequest{
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.System},
			{Role: openai.ChatMessageRoleUser, Content: p.User},
		},
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	}
}
