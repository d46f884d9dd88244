package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"pawfuel/internal/core/domain"
	"pawfuel/internal/core/port"
)

// Journal is the in-memory operations journal. Entries live for the process
// lifetime only; there is deliberately no persistence. Safe for concurrent
// use: campaign runs append from their own goroutines.
type Journal struct {
	mu     sync.Mutex
	logs   []domain.LogEntry
	alerts []domain.Alert
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

var _ port.JournalRepository = (*Journal)(nil)

// AppendLog records one journal entry and returns it with ID and timestamp
// assigned. Newest entries are listed first.
func (j *Journal) AppendLog(level, typ, message, details string) domain.LogEntry {
	entry := domain.LogEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Level:     level,
		Type:      typ,
		Message:   message,
		Details:   details,
	}
	j.mu.Lock()
	j.logs = append([]domain.LogEntry{entry}, j.logs...)
	j.mu.Unlock()
	return entry
}

// RaiseAlert records an unacknowledged alert. Newest alerts are listed first.
func (j *Journal) RaiseAlert(severity, typ, message string) domain.Alert {
	alert := domain.Alert{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Severity:  severity,
		Type:      typ,
		Message:   message,
	}
	j.mu.Lock()
	j.alerts = append([]domain.Alert{alert}, j.alerts...)
	j.mu.Unlock()
	return alert
}

// Logs lists entries matching the filter, newest first.
func (j *Journal) Logs(f port.LogFilter) []domain.LogEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]domain.LogEntry, 0, len(j.logs))
	query := strings.ToLower(f.Query)
	for _, e := range j.logs {
		if f.Level != "" && e.Level != f.Level {
			continue
		}
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Message), query) &&
			!strings.Contains(strings.ToLower(e.Details), query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Alerts lists alerts, optionally filtered by severity, newest first.
func (j *Journal) Alerts(severity string) []domain.Alert {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]domain.Alert, 0, len(j.alerts))
	for _, a := range j.alerts {
		if severity != "" && a.Severity != severity {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Acknowledge marks the alert with the given ID acknowledged. It reports
// whether the alert was found.
func (j *Journal) Acknowledge(id string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i := range j.alerts {
		if j.alerts[i].ID == id {
			j.alerts[i].Acknowledged = true
			return true
		}
	}
	return false
}

// AcknowledgeAll marks every alert acknowledged.
func (j *Journal) AcknowledgeAll() {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i := range j.alerts {
		j.alerts[i].Acknowledged = true
	}
}

// Seed loads the demo journal shown on a fresh dashboard.
func (j *Journal) Seed() {
	j.AppendLog(domain.LogSuccess, domain.TypeAIAPI, "Generated descriptions for 245 products", "Average response time: 1.2s per description")
	j.AppendLog(domain.LogError, domain.TypeAIAPI, "OpenAI API rate limit exceeded", "Rate limit: 60 requests per minute. Current usage: 65 requests")
	j.AppendLog(domain.LogInfo, domain.TypeIngestion, "New CSV file uploaded: products_batch_3.csv", "File size: 2.4MB, Expected rows: 1,247")
	j.AppendLog(domain.LogWarning, domain.TypeValidation, "Price validation failed for 18 products", "Found negative price values in rows: 45, 78, 156...")
	j.AppendLog(domain.LogSuccess, domain.TypeValidation, "CSV file validation completed successfully", "Processed 1,247 rows with 98.5% success rate")

	j.RaiseAlert(domain.SeverityMedium, "Validation Error", "Multiple products with negative prices detected")
	j.RaiseAlert(domain.SeverityHigh, "AI API Issue", "OpenAI API rate limit exceeded - content generation paused")
	low := j.RaiseAlert(domain.SeverityLow, "System Alert", "Disk space usage above 80%")
	j.Acknowledge(low.ID)
}
