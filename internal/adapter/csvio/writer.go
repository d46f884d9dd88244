package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"pawfuel/internal/core/domain"
)

// WriteRecords exports enriched product records as CSV. Fields containing a
// comma or double quote are wrapped in double quotes with internal quotes
// doubled, per encoding/csv. Rows are newline-joined (no CRLF).
func WriteRecords(w io.Writer, records []domain.DataRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"product_id", "product_name", "price", "category", "description"}); err != nil {
		return err
	}
	for _, r := range records {
		err := cw.Write([]string{
			strconv.Itoa(r.ProductID),
			r.ProductName,
			strconv.FormatFloat(r.Price, 'f', -1, 64),
			r.Category,
			r.Description,
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCampaignResults exports campaign assets as CSV with the dashboard's
// column layout.
func WriteCampaignResults(w io.Writer, results []domain.CampaignResult) error {
	cw := csv.NewWriter(w)
	header := []string{"SKU", "Language", "Campaign", "Business Unit", "Segment", "Pet Type",
		"Brand Voice", "Tone", "Description & IG Post", "SEO Keywords", "Hashtags",
		"Compliance Issues", "Image URL", "Date"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		err := cw.Write([]string{
			r.SKU, r.Language, r.Campaign, r.BusinessUnit, r.Segment, r.PetType,
			r.BrandVoice, r.Tone, r.Description, r.SEOKeywords, r.Hashtags,
			r.ComplianceIssues, r.ImageURL, r.Date,
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
