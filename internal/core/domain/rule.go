package domain

// Rule statuses.
const (
	RuleActive   = "Active"
	RuleInactive = "Inactive"
	RuleDraft    = "Draft"
)

// TransformationRule describes one declared pipeline transformation. Rules
// are display/bookkeeping entities; applying them reports how many are
// active rather than rewriting data.
type TransformationRule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TargetLayer string `json:"target_layer"` // Silver or Gold
	Status      string `json:"status"`
	Type        string `json:"type"` // Data Cleaning, Enrichment, Validation, Format
}
