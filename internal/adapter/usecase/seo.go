package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"pawfuel/internal/core/domain"
)

var nonWord = regexp.MustCompile(`\W+`)

// Common English words excluded from keyword extraction.
var stopWords = map[string]struct{}{
	"that": {}, "with": {}, "have": {}, "this": {}, "will": {}, "your": {},
	"from": {}, "they": {}, "know": {}, "want": {}, "been": {}, "good": {},
	"much": {}, "some": {}, "time": {}, "very": {}, "when": {}, "come": {},
	"here": {}, "just": {}, "like": {}, "long": {}, "make": {}, "many": {},
	"over": {}, "such": {}, "take": {}, "than": {}, "them": {}, "well": {},
	"were": {},
}

// CleanText collapses embedded newlines into spaces and trims the result.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
}

// SEOKeywords derives a comma-separated keyword string from generated text
// using a word-frequency heuristic: lowercase, tokenize on non-word
// boundaries, drop stop words and tokens of length <= 3, count frequencies
// and keep the ten most frequent. Ties keep first-encountered order (the
// sort is pinned stable so fixtures are reproducible). Any externally
// supplied analytics keywords are unioned in afterwards, de-duplicated.
func SEOKeywords(text, analyticsKeywords string) string {
	counts := make(map[string]int)
	var order []string
	for _, w := range nonWord.Split(strings.ToLower(text), -1) {
		if len(w) <= 3 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 10 {
		order = order[:10]
	}

	keywords := order
	if analyticsKeywords != "" {
		seen := make(map[string]struct{}, len(keywords))
		for _, k := range keywords {
			seen[k] = struct{}{}
		}
		for _, k := range strings.Split(analyticsKeywords, ",") {
			k = strings.TrimSpace(k)
			if k == "" {
				continue
			}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			keywords = append(keywords, k)
		}
	}
	return strings.Join(keywords, ", ")
}

// Researched keyword table for the puppy-food vertical. Static data; search
// volumes come from the marketing team's last keyword audit.
var puppyFoodKeywords = []domain.SEOKeyword{
	{Keyword: "best dog food for puppies", SearchVolume: 3200, Difficulty: "high", Category: "general", Intent: "commercial"},
	{Keyword: "dog food for gut health", SearchVolume: 800, Difficulty: "medium", Category: "health", Intent: "informational"},
	{Keyword: "puppy food for bone strength", SearchVolume: 500, Difficulty: "low", Category: "health", Intent: "commercial"},
	{Keyword: "gut healthy puppy food", SearchVolume: 300, Difficulty: "low", Category: "health", Intent: "commercial"},
	{Keyword: "puppy digestive health food", SearchVolume: 250, Difficulty: "low", Category: "health", Intent: "informational"},
	{Keyword: "bone development puppy nutrition", SearchVolume: 180, Difficulty: "low", Category: "health", Intent: "informational"},
	{Keyword: "probiotic puppy food", SearchVolume: 400, Difficulty: "medium", Category: "health", Intent: "commercial"},
	{Keyword: "calcium rich puppy food", SearchVolume: 220, Difficulty: "low", Category: "nutrition", Intent: "commercial"},
}

// ResearchKeywords returns the keyword table extended with product-specific
// entries derived from the health focus, sorted by search volume, capped at
// fifteen entries.
func ResearchKeywords(productName string, healthFocus []string) []domain.SEOKeyword {
	keywords := make([]domain.SEOKeyword, len(puppyFoodKeywords))
	copy(keywords, puppyFoodKeywords)

	focus := make(map[string]struct{}, len(healthFocus))
	for _, f := range healthFocus {
		focus[f] = struct{}{}
	}
	lower := strings.ToLower(productName)
	if _, ok := focus["gut_health"]; ok {
		keywords = append(keywords,
			domain.SEOKeyword{Keyword: lower + " gut health", SearchVolume: 150, Difficulty: "low", Category: "branded", Intent: "commercial"},
			domain.SEOKeyword{Keyword: "puppy digestive support", SearchVolume: 180, Difficulty: "low", Category: "health", Intent: "informational"},
		)
	}
	if _, ok := focus["bone_strength"]; ok {
		keywords = append(keywords,
			domain.SEOKeyword{Keyword: lower + " bone development", SearchVolume: 120, Difficulty: "low", Category: "branded", Intent: "commercial"},
			domain.SEOKeyword{Keyword: "puppy joint health food", SearchVolume: 200, Difficulty: "medium", Category: "health", Intent: "commercial"},
		)
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].SearchVolume > keywords[j].SearchVolume
	})
	if len(keywords) > 15 {
		keywords = keywords[:15]
	}
	return keywords
}

// MetaDescription builds a storefront meta description from the product's
// health focus.
func MetaDescription(productName string, healthFocus []string) string {
	benefits := make([]string, 0, len(healthFocus))
	for _, f := range healthFocus {
		switch f {
		case "gut_health":
			benefits = append(benefits, "digestive wellness")
		case "bone_strength":
			benefits = append(benefits, "strong bones & joints")
		case "immune_support":
			benefits = append(benefits, "immune system support")
		default:
			benefits = append(benefits, strings.ReplaceAll(f, "_", " "))
		}
	}
	return fmt.Sprintf("Discover %s - premium puppy food specially formulated for %s. Vet-approved nutrition for healthy growth. Shop now!",
		productName, strings.Join(benefits, " & "))
}
