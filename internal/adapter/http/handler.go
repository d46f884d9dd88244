package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"pawfuel/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter:
// it holds the pipeline usecases and session stores and registers handlers
// for each endpoint on a chi.Router.
type Handler struct {
	enricher port.Enricher
	runs     port.RunRegistry
	social   port.SocialUseCase
	journal  port.JournalRepository
	rules    port.RuleRepository
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(enricher port.Enricher, runs port.RunRegistry, social port.SocialUseCase,
	journal port.JournalRepository, rules port.RuleRepository, logger *slog.Logger) *Handler {

	h := &Handler{
		enricher: enricher,
		runs:     runs,
		social:   social,
		journal:  journal,
		rules:    rules,
		logger:   logger,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/data/validate", h.handleDataValidate)
		r.Post("/data/enrich", h.handleDataEnrich)
		r.Post("/data/export", h.handleDataExport)

		r.Post("/campaigns/runs", h.handleRunStart)
		r.Get("/campaigns/runs/{id}", h.handleRunStatus)
		r.Get("/campaigns/runs/{id}/results", h.handleRunResults)
		r.Get("/campaigns/runs/{id}/export", h.handleRunExport)

		r.Get("/journal/logs", h.handleLogs)
		r.Get("/journal/alerts", h.handleAlerts)
		r.Post("/journal/alerts/{id}/ack", h.handleAcknowledgeAlert)
		r.Post("/journal/alerts/ack-all", h.handleAcknowledgeAllAlerts)

		r.Get("/rules", h.handleRulesList)
		r.Post("/rules", h.handleRuleAdd)
		r.Delete("/rules/{id}", h.handleRuleDelete)
		r.Post("/rules/apply", h.handleRulesApply)

		r.Post("/social/posts", h.handleSocialPosts)
		r.Post("/social/copy", h.handleSocialCopy)
		r.Post("/seo/research", h.handleSEOResearch)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := encodeJSON(w, v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
