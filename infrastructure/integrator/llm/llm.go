// Package llm holds the contract shared by the language-model clients that
// write audits.
package llm

import (
	"context"
	"errors"
)

//go:generate mockgen -source=llm.go -destination=mocks/mock_llm.go -package=mocks

var ErrEmptyCompletion = errors.New("language model returned no content")

type CompletionRequest struct {
	APIKey      string
	System      string
	Prompt      string
	Temperature float64
	// MaxTokens of 0 leaves the provider default in place.
	MaxTokens int
	// JSONMode asks the provider to answer with a single JSON object.
	JSONMode bool
}

type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
