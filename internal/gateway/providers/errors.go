package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProvider is returned when the requested provider (or any provider, for auto) is not configured
	ErrNoProvider = errors.New("no LLM provider configured")

	// ErrEmptyCompletion is returned when the upstream response carries no completion content
	ErrEmptyCompletion = errors.New("empty completion from provider")
)

// ProviderError wraps a failed upstream call with the provider it came from
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
