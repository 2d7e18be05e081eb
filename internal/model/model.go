package model

import (
	"context"
	"errors"
)

// ErrInference marks failures of the text-generation call. Providers wrap
// their transport, status, and decode errors with it.
var ErrInference = errors.New("inference failure")

// Params are the generation parameters sent with a completion request.
type Params struct {
	Temperature float32
	TopK        int
	TopP        float32
	MaxTokens   int
}

// DefaultParams returns the stock sampling configuration.
func DefaultParams() Params {
	return Params{
		Temperature: 0.7,
		TopK:        50,
		TopP:        0.95,
		MaxTokens:   200,
	}
}

// Completion is the common response model for all providers.
type Completion struct {
	Content      string
	InputTokens  int
	OutputTokens int
}

// Provider is the inference abstraction. Implementations run one blocking
// prompt-in/text-out generation.
type Provider interface {
	Complete(ctx context.Context, prompt string, params Params) (Completion, error)
}
