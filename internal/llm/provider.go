package llm

import (
	"context"
)

// Provider is the interface all generator backends must implement
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends one prompt and returns the decoded response body
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Ping checks if the provider is reachable
	Ping(ctx context.Context) error
}

// CompletionRequest represents a request to the generator
type CompletionRequest struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// CompletionResponse holds the backend's answer before normalization
type CompletionResponse struct {
	// Raw is the decoded JSON body (map[string]any, []any or a scalar)
	Raw        any
	StatusCode int
	Model      string
}

// NewRequest creates a single-prompt request
func NewRequest(model, prompt string) *CompletionRequest {
	return &CompletionRequest{
		Model:       model,
		Prompt:      prompt,
		MaxTokens:   300,
		Temperature: 0.8,
	}
}
