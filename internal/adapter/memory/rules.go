package memory

import (
	"sync"

	"github.com/google/uuid"

	"pawfuel/internal/core/domain"
	"pawfuel/internal/core/port"
)

// Rules is the in-memory transformation-rule store.
type Rules struct {
	mu    sync.Mutex
	rules []domain.TransformationRule
}

// NewRules creates an empty rule store.
func NewRules() *Rules {
	return &Rules{}
}

var _ port.RuleRepository = (*Rules)(nil)

// List returns the rules in insertion order.
func (r *Rules) List() []domain.TransformationRule {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.TransformationRule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Add stores the rule, assigning an ID, and returns it.
func (r *Rules) Add(rule domain.TransformationRule) domain.TransformationRule {
	rule.ID = uuid.NewString()
	if rule.Status == "" {
		rule.Status = domain.RuleDraft
	}
	r.mu.Lock()
	r.rules = append(r.rules, rule)
	r.mu.Unlock()
	return rule
}

// Delete removes the rule with the given ID, reporting whether it existed.
func (r *Rules) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rules {
		if r.rules[i].ID == id {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			return true
		}
	}
	return false
}

// ApplyActive reports how many rules are currently active.
func (r *Rules) ApplyActive() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rule := range r.rules {
		if rule.Status == domain.RuleActive {
			n++
		}
	}
	return n
}

// Seed loads the default rule set for a fresh session.
func (r *Rules) Seed() {
	defaults := []domain.TransformationRule{
		{Name: "Price Normalization", Description: "Ensure all prices are positive and formatted to 2 decimal places", TargetLayer: "Silver", Status: domain.RuleActive, Type: "Data Cleaning"},
		{Name: "Product Name Cleanup", Description: "Remove extra whitespace and standardize product naming", TargetLayer: "Silver", Status: domain.RuleActive, Type: "Data Cleaning"},
		{Name: "Category Standardization", Description: "Map product categories to standard taxonomy", TargetLayer: "Gold", Status: domain.RuleActive, Type: "Enrichment"},
		{Name: "Currency Conversion", Description: "Convert all prices to USD using current exchange rates", TargetLayer: "Gold", Status: domain.RuleDraft, Type: "Enrichment"},
	}
	for _, rule := range defaults {
		r.Add(rule)
	}
}
