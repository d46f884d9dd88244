package domain

import "time"

// Product is one catalog row fed into the campaign matrix. All fields are
// free text straight from the upload; the generator normalizes them itself.
type Product struct {
	Name        string `json:"product_name"`
	Category    string `json:"category"`
	Ingredients string `json:"ingredients"`
	Benefits    string `json:"benefits"`
	Price       string `json:"price"`
}

// CampaignConfig is the operator-supplied setup for a generation run. It is
// mutated freely before a run and treated as a frozen snapshot once a run
// starts. Validation tags mark the fields a run cannot proceed without.
type CampaignConfig struct {
	BusinessUnit    string   `json:"business_unit" validate:"required"`
	Languages       []string `json:"languages" validate:"min=1,dive,required"`
	CampaignName    string   `json:"campaign_name" validate:"required"`
	PetType         string   `json:"pet_type"`
	Segment         string   `json:"segment"`
	BrandVoice      string   `json:"brand_voice"`
	Tone            string   `json:"tone"`
	Regions         []string `json:"regions"`
	DefaultHashtags string   `json:"default_hashtags"`
}

// CampaignResult is one generated (product, language) asset. Results are
// immutable after creation and live only for the duration of the session.
type CampaignResult struct {
	SKU              string `json:"sku"`
	Language         string `json:"language"`
	Campaign         string `json:"campaign"`
	BusinessUnit     string `json:"business_unit"`
	Segment          string `json:"segment"`
	PetType          string `json:"pet_type"`
	BrandVoice       string `json:"brand_voice"`
	Tone             string `json:"tone"`
	Description      string `json:"description"`
	SEOKeywords      string `json:"seo_keywords"`
	Hashtags         string `json:"hashtags"`
	ComplianceIssues string `json:"compliance_issues"`
	ImageURL         string `json:"image_url,omitempty"`
	Date             string `json:"date"`
}

// RunStatus is the lifecycle state of one campaign generation run.
type RunStatus string

const (
	RunIdle      RunStatus = "idle"
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// CampaignRun tracks a single generation run. Progress is a percentage in
// [0,100]. Results are populated only once Status is RunCompleted; Error is
// set only when Status is RunFailed.
type CampaignRun struct {
	ID         string           `json:"id"`
	Status     RunStatus        `json:"status"`
	Done       int              `json:"done"`
	Total      int              `json:"total"`
	Progress   float64          `json:"progress"`
	Results    []CampaignResult `json:"results,omitempty"`
	Error      string           `json:"error,omitempty"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at,omitzero"`
}
