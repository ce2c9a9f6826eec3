package providers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mrmushfiq/cloud-ide-server/internal/shared/config"
)

// Manager is the provider registry. It holds at most one client per known
// provider and a display-only "current provider" value.
type Manager struct {
	providers map[string]Provider
	timeout   time.Duration

	mu      sync.RWMutex
	current string
}

// NewManager creates a new provider manager
func NewManager(cfg *config.Config) *Manager {
	var list []Provider

	// Initialize providers based on available API keys
	if cfg.OpenAIAPIKey != "" {
		list = append(list, NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.ProviderTimeout))
	}
	if cfg.DeepSeekAPIKey != "" {
		list = append(list, NewDeepSeekProvider(cfg.DeepSeekAPIKey, cfg.DeepSeekBaseURL, cfg.DeepSeekModel, cfg.ProviderTimeout))
	}

	return NewManagerWith(cfg.ProviderTimeout, list...)
}

// NewManagerWith builds a manager from already constructed providers
func NewManagerWith(timeout time.Duration, list ...Provider) *Manager {
	m := &Manager{
		providers: make(map[string]Provider),
		timeout:   timeout,
		current:   OpenAI,
	}
	for _, p := range list {
		m.providers[p.GetProviderName()] = p
	}
	return m
}

// Has reports whether a provider is configured
func (m *Manager) Has(name string) bool {
	_, ok := m.providers[name]
	return ok
}

// GetProvider returns the configured provider for a name
func (m *Manager) GetProvider(name string) (Provider, error) {
	provider, ok := m.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (set %s)", ErrNoProvider, name, APIKeyEnv(name))
	}
	return provider, nil
}

// Resolve maps a caller choice to a configured provider name. "auto" (or "")
// prefers deepseek, then openai. The bool reports whether auto-selection ran.
func (m *Manager) Resolve(choice string) (string, bool, error) {
	if choice == "" || choice == "auto" {
		switch {
		case m.Has(DeepSeek):
			return DeepSeek, true, nil
		case m.Has(OpenAI):
			return OpenAI, true, nil
		}
		return "", true, ErrNoProvider
	}

	if _, err := m.GetProvider(choice); err != nil {
		return "", false, err
	}
	return choice, false, nil
}

// Invoke runs one completion against the named provider and returns the text
// of the first choice. Every failure comes back as a *ProviderError.
func (m *Manager) Invoke(ctx context.Context, name string, req ChatRequest) (string, error) {
	provider, err := m.GetProvider(name)
	if err != nil {
		return "", &ProviderError{Provider: name, Err: err}
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	resp, err := provider.ChatCompletion(ctx, req)
	if err != nil {
		return "", &ProviderError{Provider: name, Err: err}
	}

	content := resp.Content()
	if content == "" {
		return "", &ProviderError{Provider: name, Err: ErrEmptyCompletion}
	}

	return content, nil
}

// DisplayName returns the method label for a configured provider
func (m *Manager) DisplayName(name string) string {
	if p, ok := m.providers[name]; ok {
		return p.GetDisplayName()
	}
	return Label(name)
}

// Model returns the model id a configured provider uses
func (m *Manager) Model(name string) string {
	if p, ok := m.providers[name]; ok {
		return p.GetModel()
	}
	return ""
}

// Current returns the display-only current provider
func (m *Manager) Current() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// SetCurrent updates the current provider. It does not change auto-selection.
func (m *Manager) SetCurrent(name string) error {
	if !m.Has(name) {
		return fmt.Errorf("%w: %s", ErrNoProvider, name)
	}

	m.mu.Lock()
	m.current = name
	m.mu.Unlock()
	return nil
}
