package port

import (
	"context"
	"errors"

	"pawfuel/internal/core/domain"
)

// ErrEmptyCatalog rejects a campaign run started without any catalog rows.
var ErrEmptyCatalog = errors.New("empty product catalog")

// ErrRunNotFound is returned when a run ID is unknown to the registry.
var ErrRunNotFound = errors.New("run not found")

// ProgressFunc reports fractional progress of a sequential loop. It is
// invoked exactly once per completed item, after that item's outcome is
// known, with done in [1,total].
type ProgressFunc func(done, total int)

// Enricher is the primary port for the sequential description-enrichment
// loop. Implementations process records strictly one at a time in input
// order; a single record's generation failure is absorbed locally and never
// aborts the batch. The returned slice has the same length and order as the
// input, which is never mutated.
type Enricher interface {
	EnrichAll(ctx context.Context, records []domain.DataRecord, apiKey string, onProgress ProgressFunc) ([]domain.DataRecord, error)
}

// CampaignGenerator is the primary port for the campaign matrix. It iterates
// products x languages in row-major order and produces exactly
// len(products)*len(languages) results in enumeration order. An empty apiKey
// selects the deterministic fallback content mode, which is a first-class
// supported mode rather than an error path.
type CampaignGenerator interface {
	Generate(ctx context.Context, products []domain.Product, languages []string, cfg domain.CampaignConfig,
		analytics, feedback []domain.RawRow, apiKey string, onProgress ProgressFunc) ([]domain.CampaignResult, error)
}

// StartRunInput is everything a campaign run needs, captured as a frozen
// snapshot for the duration of the run.
type StartRunInput struct {
	Config    domain.CampaignConfig `json:"config"`
	Catalog   []domain.RawRow       `json:"catalog"`
	Analytics []domain.RawRow       `json:"analytics,omitempty"`
	Feedback  []domain.RawRow       `json:"feedback,omitempty"`
	APIKey    string                `json:"api_key,omitempty"`
}

// RunRegistry owns campaign runs. Start validates the input and rejects the
// run before any pair is processed when the configuration is malformed;
// accepted runs execute asynchronously and are observed through Get. There
// is no cancellation: once started, a run proceeds to completed or failed.
type RunRegistry interface {
	Start(in StartRunInput) (string, error)
	Get(id string) (domain.CampaignRun, error)
}

// SocialUseCase generates segment-targeted social posts, either from the
// built-in templates or via the text-generation endpoint when a credential
// is supplied.
type SocialUseCase interface {
	Posts(productName, segment string, healthFocus, interests []string) []domain.SocialPost
	AICopy(ctx context.Context, productName, targetAudience string, healthFocus []string, apiKey string) (string, error)
}
