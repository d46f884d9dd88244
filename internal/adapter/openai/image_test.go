package openai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestStubImageGenerator(t *testing.T) {
	g := NewStubImageGenerator(0)
	url, err := g.Generate(context.Background(), "puppy food campaign")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(url, "https://picsum.photos/512/512?random=") {
		t.Fatalf("unexpected url: %q", url)
	}

	other, _ := g.Generate(context.Background(), "puppy food campaign")
	if other == url {
		t.Fatal("urls should be randomized per call")
	}
}

func TestStubImageGeneratorCancel(t *testing.T) {
	g := NewStubImageGenerator(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, "puppy food campaign")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
