package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"pawfuel/internal/core/domain"
	"pawfuel/internal/core/port"
)

// Runner owns campaign generation runs. A run is created in the running
// state, executed on its own goroutine and observed through Get; setup
// failures reject the run before any pair is processed. There is no
// cancellation: a started run proceeds to completed or failed and the
// operator re-invokes to retry.
type Runner struct {
	campaigns port.CampaignGenerator
	journal   port.JournalRepository
	logger    *slog.Logger
	validate  *validator.Validate

	mu   sync.Mutex
	runs map[string]*domain.CampaignRun
}

// NewRunner creates a run registry executing campaigns with the given
// generator.
func NewRunner(campaigns port.CampaignGenerator, journal port.JournalRepository, logger *slog.Logger) *Runner {
	return &Runner{
		campaigns: campaigns,
		journal:   journal,
		logger:    logger,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		runs:      make(map[string]*domain.CampaignRun),
	}
}

// Start validates the run input and, when accepted, launches the generation
// goroutine. A malformed configuration or empty catalog is an unrecoverable
// setup failure: the error is returned to the caller and no run is created.
func (r *Runner) Start(in port.StartRunInput) (string, error) {
	if len(in.Catalog) == 0 {
		return "", port.ErrEmptyCatalog
	}
	if err := r.validate.Struct(in.Config); err != nil {
		return "", fmt.Errorf("invalid campaign config: %w", err)
	}

	products := productsFromRows(in.Catalog)
	id := uuid.NewString()
	run := &domain.CampaignRun{
		ID:        id,
		Status:    domain.RunRunning,
		Total:     len(products) * len(in.Config.Languages),
		StartedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.runs[id] = run
	r.mu.Unlock()

	r.journal.AppendLog(domain.LogInfo, domain.TypeAIAPI, "campaign generation run started",
		fmt.Sprintf("run=%s products=%d languages=%d", id, len(products), len(in.Config.Languages)))
	r.logger.Info("campaign run started", slog.String("run_id", id), slog.Int("total", run.Total))

	go r.execute(id, products, in)
	return id, nil
}

// Get returns a snapshot of the run with the given ID.
func (r *Runner) Get(id string) (domain.CampaignRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[id]
	if !ok {
		return domain.CampaignRun{}, port.ErrRunNotFound
	}
	return *run, nil
}

func (r *Runner) execute(id string, products []domain.Product, in port.StartRunInput) {
	results, err := r.campaigns.Generate(context.Background(), products, in.Config.Languages, in.Config,
		in.Analytics, in.Feedback, in.APIKey, func(done, total int) {
			r.setProgress(id, done, total)
		})

	r.mu.Lock()
	run, ok := r.runs[id]
	if !ok {
		r.mu.Unlock()
		return
	}
	run.FinishedAt = time.Now().UTC()
	if err != nil {
		run.Status = domain.RunFailed
		run.Error = err.Error()
	} else {
		run.Status = domain.RunCompleted
		run.Results = results
	}
	r.mu.Unlock()

	if err != nil {
		r.journal.AppendLog(domain.LogError, domain.TypeAIAPI, "campaign generation run failed", err.Error())
		r.journal.RaiseAlert(domain.SeverityHigh, "AI API Issue", "Campaign generation run failed")
		r.logger.Error("campaign run failed", slog.String("run_id", id), slog.Any("error", err))
		return
	}
	r.journal.AppendLog(domain.LogSuccess, domain.TypeAIAPI,
		fmt.Sprintf("Generated content for %d campaign variations", len(results)),
		fmt.Sprintf("run=%s", id))
	r.logger.Info("campaign run completed", slog.String("run_id", id), slog.Int("results", len(results)))
}

func (r *Runner) setProgress(id string, done, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[id]
	if !ok {
		return
	}
	run.Done = done
	run.Total = total
	if total > 0 {
		run.Progress = float64(done) / float64(total) * 100
	}
}

// productsFromRows maps raw catalog rows onto Product fields. Unknown
// columns are ignored; missing columns become empty strings and are handled
// by the generator's normalization.
func productsFromRows(rows []domain.RawRow) []domain.Product {
	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, domain.Product{
			Name:        fieldString(row["product_name"]),
			Category:    fieldString(row["category"]),
			Ingredients: fieldString(row["ingredients"]),
			Benefits:    fieldString(row["benefits"]),
			Price:       fieldString(row["price"]),
		})
	}
	return products
}
