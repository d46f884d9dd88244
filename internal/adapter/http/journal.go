package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pawfuel/internal/core/port"
)

// handleLogs lists journal entries. Optional query parameters `level`,
// `type` and `q` narrow the listing; `q` is a case-insensitive substring
// match against message and details.
func (h *Handler) handleLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	logs := h.journal.Logs(port.LogFilter{
		Level: q.Get("level"),
		Type:  q.Get("type"),
		Query: q.Get("q"),
	})
	h.writeJSON(w, http.StatusOK, map[string]any{"logs": logs})
}

// handleAlerts lists alerts, optionally filtered by `severity`.
func (h *Handler) handleAlerts(w http.ResponseWriter, r *http.Request) {
	alerts := h.journal.Alerts(r.URL.Query().Get("severity"))
	h.writeJSON(w, http.StatusOK, map[string]any{"alerts": alerts})
}

// handleAcknowledgeAlert marks one alert acknowledged. Unknown IDs produce
// HTTP 404.
func (h *Handler) handleAcknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing alert id", http.StatusBadRequest)
		return
	}
	if !h.journal.Acknowledge(id) {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAcknowledgeAllAlerts marks every alert acknowledged.
func (h *Handler) handleAcknowledgeAllAlerts(w http.ResponseWriter, _ *http.Request) {
	h.journal.AcknowledgeAll()
	w.WriteHeader(http.StatusNoContent)
}
