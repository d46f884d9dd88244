package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"pawfuel/internal/core/domain"
	"pawfuel/internal/core/port"
	"pawfuel/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestEnrichAllOrderAndLength ensures the loop preserves input length and
// order and attaches each generated description to its own record.
func TestEnrichAllOrderAndLength(t *testing.T) {
	texts := mocks.NewMockTextGenerator(t)
	texts.EXPECT().
		Generate(mock.Anything, mock.AnythingOfType("port.GenerateRequest")).
		RunAndReturn(func(_ context.Context, req port.GenerateRequest) (string, error) {
			return "desc: " + req.Prompt, nil
		})

	svc := NewEnrichmentService(texts, discardLogger(), 0)
	records := []domain.DataRecord{
		{ProductID: 1, ProductName: "Mug", Price: 9.99, Category: "Home"},
		{ProductID: 2, ProductName: "Mouse", Price: 79.99, Category: "Electronics"},
	}

	var progress [][2]int
	out, err := svc.EnrichAll(context.Background(), records, "sk-test", func(done, total int) {
		progress = append(progress, [2]int{done, total})
	})
	if err != nil {
		t.Fatalf("EnrichAll error: %v", err)
	}
	if len(out) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(out))
	}
	for i := range records {
		if out[i].ProductID != records[i].ProductID {
			t.Fatalf("record %d out of order: %+v", i, out[i])
		}
		if out[i].Description == "" {
			t.Fatalf("record %d missing description", i)
		}
	}
	// input must not be mutated
	for i := range records {
		if records[i].Description != "" {
			t.Fatalf("input record %d mutated: %+v", i, records[i])
		}
	}
	if len(progress) != 2 || progress[0] != [2]int{1, 2} || progress[1] != [2]int{2, 2} {
		t.Fatalf("unexpected progress sequence: %v", progress)
	}
}

// TestEnrichAllFailureContainment ensures a failed call attaches the
// placeholder and never aborts the batch.
func TestEnrichAllFailureContainment(t *testing.T) {
	texts := mocks.NewMockTextGenerator(t)
	calls := 0
	texts.EXPECT().
		Generate(mock.Anything, mock.AnythingOfType("port.GenerateRequest")).
		RunAndReturn(func(_ context.Context, _ port.GenerateRequest) (string, error) {
			calls++
			if calls == 2 {
				return "", errors.New("rate limited")
			}
			return "fine", nil
		})

	svc := NewEnrichmentService(texts, discardLogger(), 0)
	records := []domain.DataRecord{
		{ProductID: 1, ProductName: "A", Category: "Toys"},
		{ProductID: 2, ProductName: "B", Category: "Toys"},
		{ProductID: 3, ProductName: "C", Category: "Toys"},
	}
	out, err := svc.EnrichAll(context.Background(), records, "sk-test", nil)
	if err != nil {
		t.Fatalf("EnrichAll error: %v", err)
	}
	if out[0].Description != "fine" || out[2].Description != "fine" {
		t.Fatalf("unexpected descriptions: %+v", out)
	}
	if out[1].Description != "Failed to generate description" {
		t.Fatalf("expected placeholder for failed record, got %q", out[1].Description)
	}
}

// TestEnrichAllRequiresAPIKey ensures a missing credential rejects the
// batch before any record is processed.
func TestEnrichAllRequiresAPIKey(t *testing.T) {
	texts := mocks.NewMockTextGenerator(t)
	svc := NewEnrichmentService(texts, discardLogger(), 0)

	_, err := svc.EnrichAll(context.Background(), []domain.DataRecord{{ProductName: "A"}}, "  ", nil)
	if !errors.Is(err, port.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

// TestEnrichAllRequestShape checks prompt, token cap and temperature of the
// generation request.
func TestEnrichAllRequestShape(t *testing.T) {
	texts := mocks.NewMockTextGenerator(t)
	var got port.GenerateRequest
	texts.EXPECT().
		Generate(mock.Anything, mock.AnythingOfType("port.GenerateRequest")).
		RunAndReturn(func(_ context.Context, req port.GenerateRequest) (string, error) {
			got = req
			return "ok", nil
		})

	svc := NewEnrichmentService(texts, discardLogger(), 0)
	_, err := svc.EnrichAll(context.Background(), []domain.DataRecord{
		{ProductName: "Yoga Mat", Category: "Sports & Fitness"},
	}, "sk-test", nil)
	if err != nil {
		t.Fatalf("EnrichAll error: %v", err)
	}
	wantPrompt := "Write a short, engaging product description for a Sports & Fitness called Yoga Mat."
	if got.Prompt != wantPrompt {
		t.Fatalf("unexpected prompt: %q", got.Prompt)
	}
	if got.MaxTokens != 100 || got.Temperature != 0.7 || got.APIKey != "sk-test" {
		t.Fatalf("unexpected request: %+v", got)
	}
}
