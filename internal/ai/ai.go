// Package ai provides a backend-neutral text completion client with Gemini
// and OpenAI implementations.
package ai

import (
	"context"
	"errors"
)

var (
	// ErrBlocked reports that the backend refused or truncated the answer on
	// safety grounds. Any partial text is discarded.
	ErrBlocked = errors.New("response blocked by safety filter")

	// ErrEmptyResponse reports a response without usable candidate text.
	ErrEmptyResponse = errors.New("response has no usable content")
)

// GenerationParams bounds a completion request.
type GenerationParams struct {
	Temperature     float32
	TopK            float32
	TopP            float32
	MaxOutputTokens int32
}

// Request is a single-turn completion request.
type Request struct {
	Prompt string
	Params GenerationParams
}

// Response carries the text of the first candidate.
type Response struct {
	Text         string
	FinishReason string
}

// Client performs one completion call. Implementations make a single attempt
// and honour ctx cancellation; callers bound the call with a timeout.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}
