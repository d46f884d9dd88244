package usecase

import "strings"

// complianceRule flags a banned or risky term for a region.
type complianceRule struct {
	term    string
	region  string
	message string
}

// Fixed rule table maintained with the regulatory team. Matching is
// case-insensitive substring search against the generated description.
var complianceRules = []complianceRule{
	{term: "miracle", region: "EU", message: "EU: 'Miracle' is not allowed in health claims."},
	{term: "cure", region: "US", message: "US: Avoid 'cure' claims."},
	{term: "guaranteed", region: "EU", message: "EU: 'Guaranteed' requires substantiation."},
	{term: "best", region: "APAC", message: "APAC: Superlative claims need comparative evidence."},
}

// EvaluateCompliance returns the messages of every rule whose term appears
// in the description and whose region is among the configured regions. Zero
// or more messages may accumulate for one description.
func EvaluateCompliance(description string, regions []string) []string {
	lower := strings.ToLower(description)
	active := make(map[string]struct{}, len(regions))
	for _, r := range regions {
		active[r] = struct{}{}
	}

	var issues []string
	for _, rule := range complianceRules {
		if _, ok := active[rule.region]; !ok {
			continue
		}
		if strings.Contains(lower, rule.term) {
			issues = append(issues, rule.message)
		}
	}
	return issues
}
