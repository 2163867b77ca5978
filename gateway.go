package fitcoach

import (
	"context"
	"fmt"
)

// Gateway sends a conversation to a hosted language model and returns the
// generated assistant text. Failures are returned as errors wrapping
// ErrMissingCredential, ErrGatewayUnavailable or ErrRemoteCall; the session
// turns them into transcript text with Warning.
type Gateway interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request carries model selection and generation parameters.
// The gateway uses its own defaults when fields are zero/nil.
type Request struct {
	Model        string // model ID, provider-specific; empty = provider default
	SystemPrompt string
	Messages     []Message
	MaxTokens    int      // 0 = provider default
	Temperature  *float64 // nil = provider default
}

// Validate checks universal constraints on Request.
// Gateway implementations may apply additional provider-specific validation.
func (r Request) Validate() error {
	if r.Temperature != nil {
		if *r.Temperature < 0 || *r.Temperature > 2 {
			return fmt.Errorf("temperature must be in [0, 2], got %g: %w", *r.Temperature, ErrValidation)
		}
	}
	if r.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must be non-negative, got %d: %w", r.MaxTokens, ErrValidation)
	}
	return nil
}
