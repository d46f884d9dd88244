package port

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is returned when an operation that requires a credential
// is invoked without one. It aborts the operation before any external call.
var ErrMissingAPIKey = errors.New("missing api key")

// GenerateRequest carries one text-generation call. The credential is
// supplied per request because keys are entered by the operator for a single
// session rather than configured on the server.
type GenerateRequest struct {
	Prompt      string
	APIKey      string
	MaxTokens   int
	Temperature float64
}

// TextGenerator is the outbound port to a third-party chat-completion
// endpoint. Implementations return the first completion's message content
// with surrounding whitespace trimmed. Non-2xx responses surface as errors.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// ImageGenerator issues an image reference for a campaign asset. The real
// integration is out of scope; the shipped implementation returns a
// placeholder URL after a fixed delay.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
