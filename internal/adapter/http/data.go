package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"pawfuel/internal/adapter/csvio"
	"pawfuel/internal/adapter/usecase"
	"pawfuel/internal/core/domain"
	"pawfuel/internal/core/port"
)

func encodeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// handleDataValidate accepts a CSV upload (multipart field "file" or a raw
// text/csv body), runs the validation pipeline and returns the partition of
// valid records and field errors. Upload and outcome are recorded in the
// operations journal. Parsing errors produce HTTP 400.
func (h *Handler) handleDataValidate(w http.ResponseWriter, r *http.Request) {
	body, filename, err := uploadBody(r)
	if err != nil {
		http.Error(w, "missing CSV upload", http.StatusBadRequest)
		return
	}
	rows, err := csvio.ReadRows(body)
	if err != nil {
		http.Error(w, "invalid CSV: "+err.Error(), http.StatusBadRequest)
		return
	}

	h.journal.AppendLog(domain.LogInfo, domain.TypeIngestion,
		"New CSV file uploaded: "+filename,
		fmt.Sprintf("Rows: %d", len(rows)))

	result := usecase.ValidateAll(rows)
	if len(result.Errors) > 0 {
		h.journal.AppendLog(domain.LogWarning, domain.TypeValidation,
			fmt.Sprintf("Validation failed for %d fields", len(result.Errors)),
			fmt.Sprintf("Valid records: %d of %d rows", len(result.Valid), len(rows)))
		h.journal.RaiseAlert(domain.SeverityMedium, "Validation Error",
			fmt.Sprintf("%d validation errors in %s", len(result.Errors), filename))
	} else {
		h.journal.AppendLog(domain.LogSuccess, domain.TypeValidation,
			"CSV file validation completed successfully",
			fmt.Sprintf("Processed %d rows", len(rows)))
	}

	h.writeJSON(w, http.StatusOK, result)
}

// uploadBody extracts the CSV payload from a multipart form or the raw
// request body.
func uploadBody(r *http.Request) (io.Reader, string, error) {
	if f, header, err := r.FormFile("file"); err == nil {
		return f, header.Filename, nil
	}
	if r.Body == nil {
		return nil, "", errors.New("empty body")
	}
	return r.Body, "upload.csv", nil
}

type enrichRequest struct {
	Records []domain.DataRecord `json:"records"`
	APIKey  string              `json:"api_key"`
}

// handleDataEnrich runs the sequential description-enrichment loop over the
// submitted records. A missing API key produces HTTP 400 before any record
// is processed; per-record generation failures are absorbed into fallback
// descriptions and the call still succeeds.
func (h *Handler) handleDataEnrich(w http.ResponseWriter, r *http.Request) {
	var req enrichRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	enriched, err := h.enricher.EnrichAll(r.Context(), req.Records, req.APIKey, func(done, total int) {
		h.logger.Debug("enrichment progress", slog.Int("done", done), slog.Int("total", total))
	})
	if err != nil {
		if errors.Is(err, port.ErrMissingAPIKey) {
			http.Error(w, "api_key is required", http.StatusBadRequest)
			return
		}
		h.logger.Error("enrichment error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.journal.AppendLog(domain.LogSuccess, domain.TypeAIAPI,
		fmt.Sprintf("Generated descriptions for %d products", len(enriched)), "")
	h.writeJSON(w, http.StatusOK, map[string]any{"records": enriched})
}

type exportRequest struct {
	Records  []domain.DataRecord `json:"records"`
	Filename string              `json:"filename"`
}

// handleDataExport streams the submitted records back as a text/csv
// attachment.
func (h *Handler) handleDataExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	filename := req.Filename
	if filename == "" {
		filename = "enriched_data.csv"
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := csvio.WriteRecords(w, req.Records); err != nil {
		h.logger.Error("csv export error", slog.Any("error", err))
	}
}
