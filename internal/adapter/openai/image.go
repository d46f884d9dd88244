package openai

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StubImageGenerator stands in for a real image-generation integration. It
// returns a placeholder image URL after a fixed delay that imitates the
// latency of a real call. Implements port.ImageGenerator.
type StubImageGenerator struct {
	delay time.Duration
}

// NewStubImageGenerator creates the stub with the given simulated latency.
func NewStubImageGenerator(delay time.Duration) *StubImageGenerator {
	return &StubImageGenerator{delay: delay}
}

// Generate ignores the prompt and returns a randomized placeholder URL.
func (g *StubImageGenerator) Generate(ctx context.Context, _ string) (string, error) {
	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return "https://picsum.photos/512/512?random=" + uuid.NewString(), nil
}
