package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pawfuel/internal/core/domain"
	"pawfuel/internal/core/port"
)

// Substituted when a single record's generation call fails. The batch
// continues; failure is contained to the record.
const descriptionFallback = "Failed to generate description"

const (
	descriptionMaxTokens   = 100
	descriptionTemperature = 0.7
)

// EnrichmentService runs the sequential description-enrichment loop against
// a text-generation endpoint. It implements port.Enricher.
type EnrichmentService struct {
	texts  port.TextGenerator
	logger *slog.Logger

	// recordDelay is the fixed pause between records (not after the last).
	// It mitigates externally imposed rate limits; it is not a backoff.
	recordDelay time.Duration
}

// NewEnrichmentService creates the enrichment loop with the given generator
// and inter-record delay.
func NewEnrichmentService(texts port.TextGenerator, logger *slog.Logger, recordDelay time.Duration) *EnrichmentService {
	return &EnrichmentService{texts: texts, logger: logger, recordDelay: recordDelay}
}

// EnrichAll processes records strictly one at a time in input order,
// attaching a generated description to each. A missing credential rejects
// the whole batch before any record is processed; a per-record failure
// attaches descriptionFallback and continues. onProgress fires exactly once
// per record, after that record's outcome is known. The input slice is never
// mutated; the result has the same length and order.
func (s *EnrichmentService) EnrichAll(ctx context.Context, records []domain.DataRecord, apiKey string, onProgress port.ProgressFunc) ([]domain.DataRecord, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, port.ErrMissingAPIKey
	}

	total := len(records)
	enriched := make([]domain.DataRecord, 0, total)
	for i, record := range records {
		prompt := fmt.Sprintf("Write a short, engaging product description for a %s called %s.",
			record.Category, record.ProductName)
		text, err := s.texts.Generate(ctx, port.GenerateRequest{
			Prompt:      prompt,
			APIKey:      apiKey,
			MaxTokens:   descriptionMaxTokens,
			Temperature: descriptionTemperature,
		})
		if err != nil {
			s.logger.Warn("description generation failed",
				slog.String("product", record.ProductName), slog.Any("error", err))
			text = descriptionFallback
		} else if text == "" {
			text = "Description not available"
		}
		record.Description = text
		enriched = append(enriched, record)

		if onProgress != nil {
			onProgress(i+1, total)
		}
		if i < total-1 {
			time.Sleep(s.recordDelay)
		}
	}
	return enriched, nil
}
