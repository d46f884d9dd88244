package domain

import "time"

// Log levels recorded by the pipelines.
const (
	LogInfo    = "INFO"
	LogWarning = "WARNING"
	LogError   = "ERROR"
	LogSuccess = "SUCCESS"
)

// Log and alert categories.
const (
	TypeValidation = "Validation"
	TypeIngestion  = "Ingestion"
	TypeAIAPI      = "AI_API"
	TypeSystem     = "System"
)

// Alert severities.
const (
	SeverityHigh   = "HIGH"
	SeverityMedium = "MEDIUM"
	SeverityLow    = "LOW"
)

// LogEntry is one line in the operations journal.
type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
}

// Alert is an operator-facing notification raised by the pipelines. It stays
// listed until acknowledged.
type Alert struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Severity     string    `json:"severity"`
	Type         string    `json:"type"`
	Message      string    `json:"message"`
	Acknowledged bool      `json:"acknowledged"`
}
