package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pawfuel/internal/core/domain"
	"pawfuel/internal/core/port"
)

const (
	campaignMaxTokens   = 200
	campaignTemperature = 0.8
)

// CampaignService builds per-(product, language) campaign assets. It
// implements port.CampaignGenerator.
type CampaignService struct {
	texts  port.TextGenerator
	images port.ImageGenerator
	logger *slog.Logger

	// pairDelay is the fixed pause between pairs (skipped after the last)
	// to reduce request burst rate.
	pairDelay time.Duration

	// now is stubbed in tests to pin the result date.
	now func() time.Time
}

// NewCampaignService creates the matrix generator.
func NewCampaignService(texts port.TextGenerator, images port.ImageGenerator, logger *slog.Logger, pairDelay time.Duration) *CampaignService {
	return &CampaignService{texts: texts, images: images, logger: logger, pairDelay: pairDelay, now: time.Now}
}

// Generate iterates the Cartesian product of products x languages in
// row-major order (outer loop over products) and produces exactly
// len(products)*len(languages) results in enumeration order. Each pair
// normalizes the catalog text, merges the analytics/feedback lookups,
// generates content (falling back to a deterministic template without a
// credential or after a failed call), derives SEO keywords, evaluates
// compliance and attaches an image reference. onProgress fires after each
// pair. Per-pair content failures are absorbed locally; the returned error
// is reserved for unrecoverable failures that abort the run.
func (s *CampaignService) Generate(ctx context.Context, products []domain.Product, languages []string, cfg domain.CampaignConfig,
	analytics, feedback []domain.RawRow, apiKey string, onProgress port.ProgressFunc) ([]domain.CampaignResult, error) {

	// Lookup tables keyed by product name. Duplicate names overwrite
	// earlier rows (last-write-wins).
	analyticsByName := indexByProductName(analytics)
	feedbackByName := indexByProductName(feedback)

	total := len(products) * len(languages)
	results := make([]domain.CampaignResult, 0, total)
	date := s.now().Format("2006-01-02")
	done := 0

	for _, product := range products {
		for _, language := range languages {
			name := CleanText(product.Name)
			if name == "" {
				name = fmt.Sprintf("SKU_%d", done+1)
			}
			category := CleanText(product.Category)
			ingredients := CleanText(product.Ingredients)
			benefits := CleanText(product.Benefits)
			price := ""
			if product.Price != "" {
				price = "$" + product.Price
			}

			analyticsKeywords := fieldString(analyticsByName[name]["seo_keywords"])
			feedbackText := fieldString(feedbackByName[name]["comment"])

			description := s.content(ctx, contentArgs{
				productName: name, category: category, ingredients: ingredients,
				benefits: benefits, price: price, language: language,
				analyticsKeywords: analyticsKeywords, feedbackText: feedbackText,
			}, cfg, apiKey)

			seoKeywords := SEOKeywords(description, analyticsKeywords)
			issues := EvaluateCompliance(description, cfg.Regions)

			imagePrompt := fmt.Sprintf("%s food campaign for %s | %s | %s | %s | Campaign: %s",
				cfg.PetType, cfg.Segment, cfg.Tone, cfg.BrandVoice, name, cfg.CampaignName)
			imageURL, err := s.images.Generate(ctx, imagePrompt)
			if err != nil {
				s.logger.Warn("image generation failed", slog.String("sku", name), slog.Any("error", err))
				imageURL = ""
			}

			results = append(results, domain.CampaignResult{
				SKU:              name,
				Language:         language,
				Campaign:         cfg.CampaignName,
				BusinessUnit:     cfg.BusinessUnit,
				Segment:          cfg.Segment,
				PetType:          cfg.PetType,
				BrandVoice:       cfg.BrandVoice,
				Tone:             cfg.Tone,
				Description:      description,
				SEOKeywords:      seoKeywords,
				Hashtags:         cfg.DefaultHashtags,
				ComplianceIssues: strings.Join(issues, "; "),
				ImageURL:         imageURL,
				Date:             date,
			})

			done++
			if onProgress != nil {
				onProgress(done, total)
			}
			if done < total {
				time.Sleep(s.pairDelay)
			}
		}
	}
	return results, nil
}

type contentArgs struct {
	productName, category, ingredients, benefits, price string
	language, analyticsKeywords, feedbackText           string
}

// content produces the pair's marketing description. Without a credential
// the deterministic template is used; with one, the chat-completion endpoint
// is called and a short fallback substituted if the call fails.
func (s *CampaignService) content(ctx context.Context, a contentArgs, cfg domain.CampaignConfig, apiKey string) string {
	if apiKey == "" {
		return fallbackContent(a, cfg)
	}

	prompt := fmt.Sprintf(`Act as a marketing expert and generate %s campaign content (language: %s) for %s food.
Business Unit: %s | Campaign: %s | Segment: %s.
Product name: %s. Category: %s.
Ingredients: %s. Benefits: %s. Price info: %s.
Brand guidance: %s.
Analytics: seo_keywords: %s.
User feedback: %s.
Output as a creative marketing description and Instagram post.
Use these hashtags: %s.
Ensure the content complies for regions: %s.`,
		cfg.Tone, a.language, cfg.PetType,
		cfg.BusinessUnit, cfg.CampaignName, cfg.Segment,
		a.productName, a.category,
		a.ingredients, a.benefits, a.price,
		cfg.BrandVoice,
		a.analyticsKeywords,
		a.feedbackText,
		cfg.DefaultHashtags,
		strings.Join(cfg.Regions, ", "))

	text, err := s.texts.Generate(ctx, port.GenerateRequest{
		Prompt:      prompt,
		APIKey:      apiKey,
		MaxTokens:   campaignMaxTokens,
		Temperature: campaignTemperature,
	})
	if err != nil {
		s.logger.Warn("content generation failed", slog.String("sku", a.productName), slog.Any("error", err))
		return shortFallbackContent(a, cfg)
	}
	if text == "" {
		return "Custom content generated!"
	}
	return text
}

// fallbackContent is the full templated description used when no credential
// is supplied. This mode is first-class: the run is still considered
// successful.
func fallbackContent(a contentArgs, cfg domain.CampaignConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s marketing content for %s owners%s!\n\n", cfg.Tone, cfg.PetType, languageSuffix(a.language))
	fmt.Fprintf(&b, "%s delivers exceptional %s for your beloved pet. Our %s features premium %s at %s.\n\n",
		a.productName, a.benefits, a.category, a.ingredients, a.price)
	fmt.Fprintf(&b, "Perfect for %s who want the best nutrition. %s approach ensures your pet thrives with every meal!\n\n",
		cfg.Segment, cfg.BrandVoice)
	fmt.Fprintf(&b, "Campaign: %s | %s", cfg.CampaignName, cfg.DefaultHashtags)
	if a.feedbackText != "" {
		fmt.Fprintf(&b, "\n\nBased on customer feedback: %q", a.feedbackText)
	}
	return b.String()
}

// shortFallbackContent replaces a failed API call.
func shortFallbackContent(a contentArgs, cfg domain.CampaignConfig) string {
	return fmt.Sprintf("%s marketing content for %s owners%s! %s delivers exceptional nutrition. %s",
		cfg.Tone, cfg.PetType, languageSuffix(a.language), a.productName, cfg.DefaultHashtags)
}

func languageSuffix(language string) string {
	if language == "EN" {
		return ""
	}
	return fmt.Sprintf(" (%s)", language)
}

func indexByProductName(rows []domain.RawRow) map[string]domain.RawRow {
	byName := make(map[string]domain.RawRow, len(rows))
	for _, row := range rows {
		if name := fieldString(row["product_name"]); name != "" {
			byName[name] = row
		}
	}
	return byName
}
