package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pawfuel/internal/core/domain"
)

// handleRulesList lists all declared transformation rules.
func (h *Handler) handleRulesList(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"rules": h.rules.List()})
}

// handleRuleAdd stores a new transformation rule. Name and description are
// required.
func (h *Handler) handleRuleAdd(w http.ResponseWriter, r *http.Request) {
	var rule domain.TransformationRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if rule.Name == "" || rule.Description == "" {
		http.Error(w, "name and description are required", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusCreated, h.rules.Add(rule))
}

// handleRuleDelete removes a rule by ID. Unknown IDs produce HTTP 404.
func (h *Handler) handleRuleDelete(w http.ResponseWriter, r *http.Request) {
	if !h.rules.Delete(chi.URLParam(r, "id")) {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRulesApply reports how many rules are active.
func (h *Handler) handleRulesApply(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]int{"applied": h.rules.ApplyActive()})
}
