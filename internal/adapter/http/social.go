package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"pawfuel/internal/adapter/usecase"
	"pawfuel/internal/core/port"
)

type socialPostsRequest struct {
	ProductName string   `json:"product_name"`
	Segment     string   `json:"segment"`
	HealthFocus []string `json:"health_focus"`
	Interests   []string `json:"interests"`
}

// handleSocialPosts generates templated social posts for a segment.
func (h *Handler) handleSocialPosts(w http.ResponseWriter, r *http.Request) {
	var req socialPostsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.ProductName == "" {
		http.Error(w, "product_name is required", http.StatusBadRequest)
		return
	}
	posts := h.social.Posts(req.ProductName, req.Segment, req.HealthFocus, req.Interests)
	h.writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

type socialCopyRequest struct {
	ProductName    string   `json:"product_name"`
	TargetAudience string   `json:"target_audience"`
	HealthFocus    []string `json:"health_focus"`
	APIKey         string   `json:"api_key"`
}

// handleSocialCopy asks the text-generation endpoint for a short post.
func (h *Handler) handleSocialCopy(w http.ResponseWriter, r *http.Request) {
	var req socialCopyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	text, err := h.social.AICopy(r.Context(), req.ProductName, req.TargetAudience, req.HealthFocus, req.APIKey)
	if err != nil {
		if errors.Is(err, port.ErrMissingAPIKey) {
			http.Error(w, "api_key is required", http.StatusBadRequest)
			return
		}
		h.logger.Error("social copy error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"content": text})
}

type seoResearchRequest struct {
	ProductName string   `json:"product_name"`
	HealthFocus []string `json:"health_focus"`
}

// handleSEOResearch returns the keyword research table for a product plus a
// generated meta description.
func (h *Handler) handleSEOResearch(w http.ResponseWriter, r *http.Request) {
	var req seoResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.ProductName == "" {
		http.Error(w, "product_name is required", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"keywords":         usecase.ResearchKeywords(req.ProductName, req.HealthFocus),
		"meta_description": usecase.MetaDescription(req.ProductName, req.HealthFocus),
	})
}
