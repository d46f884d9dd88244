package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pawfuel/internal/adapter/csvio"
	"pawfuel/internal/core/domain"
	"pawfuel/internal/core/port"
)

// handleRunStart starts a campaign generation run. Malformed configuration
// or an empty catalog rejects the run with HTTP 400 before any pair is
// processed; an accepted run returns HTTP 202 with its ID.
func (h *Handler) handleRunStart(w http.ResponseWriter, r *http.Request) {
	var in port.StartRunInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	id, err := h.runs.Start(in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusAccepted, map[string]string{"run_id": id})
}

// handleRunStatus returns the run's state and progress without its results.
func (h *Handler) handleRunStatus(w http.ResponseWriter, r *http.Request) {
	run, ok := h.lookupRun(w, r)
	if !ok {
		return
	}
	run.Results = nil
	h.writeJSON(w, http.StatusOK, run)
}

// handleRunResults returns the generated assets once the run has completed.
// A run still in progress produces HTTP 409; a failed run HTTP 500.
func (h *Handler) handleRunResults(w http.ResponseWriter, r *http.Request) {
	run, ok := h.lookupRun(w, r)
	if !ok {
		return
	}
	switch run.Status {
	case domain.RunCompleted:
		h.writeJSON(w, http.StatusOK, map[string]any{"results": run.Results})
	case domain.RunFailed:
		http.Error(w, run.Error, http.StatusInternalServerError)
	default:
		http.Error(w, "run still in progress", http.StatusConflict)
	}
}

// handleRunExport streams a completed run's assets as campaign_assets.csv.
func (h *Handler) handleRunExport(w http.ResponseWriter, r *http.Request) {
	run, ok := h.lookupRun(w, r)
	if !ok {
		return
	}
	if run.Status != domain.RunCompleted {
		http.Error(w, "run not completed", http.StatusConflict)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="campaign_assets.csv"`)
	if err := csvio.WriteCampaignResults(w, run.Results); err != nil {
		h.logger.Error("campaign export error", slog.Any("error", err))
	}
}

func (h *Handler) lookupRun(w http.ResponseWriter, r *http.Request) (domain.CampaignRun, bool) {
	id := chi.URLParam(r, "id")
	run, err := h.runs.Get(id)
	if err != nil {
		if errors.Is(err, port.ErrRunNotFound) {
			http.NotFound(w, r)
		} else {
			h.logger.Error("run lookup error", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return domain.CampaignRun{}, false
	}
	return run, true
}
