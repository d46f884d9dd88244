package port

import "pawfuel/internal/core/domain"

// LogFilter narrows journal listings. Empty fields match everything; Query
// is a case-insensitive substring match against message and details.
type LogFilter struct {
	Level string
	Type  string
	Query string
}

// JournalRepository stores the session-scoped operations journal. It is an
// outbound port; the shipped implementation is in-memory and must be safe
// for concurrent use because runs append from their own goroutines.
type JournalRepository interface {
	AppendLog(level, typ, message, details string) domain.LogEntry
	RaiseAlert(severity, typ, message string) domain.Alert
	Logs(f LogFilter) []domain.LogEntry
	Alerts(severity string) []domain.Alert
	Acknowledge(id string) bool
	AcknowledgeAll()
}

// RuleRepository stores declared transformation rules for the session.
type RuleRepository interface {
	List() []domain.TransformationRule
	Add(r domain.TransformationRule) domain.TransformationRule
	Delete(id string) bool
	// ApplyActive reports how many rules are currently active.
	ApplyActive() int
}
