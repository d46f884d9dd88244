package domain

// User segments recognised by the social post templates.
const (
	SegmentNewPuppyOwner    = "new_puppy_owner"
	SegmentExperiencedOwner = "experienced_owner"
	SegmentVeterinarian     = "veterinarian"
	SegmentBreeder          = "breeder"
)

// SocialPost is a templated social-media post targeted at a user segment.
type SocialPost struct {
	ID            string   `json:"id"`
	Platform      string   `json:"platform"`
	Content       string   `json:"content"`
	Hashtags      []string `json:"hashtags"`
	TargetSegment string   `json:"target_segment"`
}

// SEOKeyword is one entry from the keyword research table.
type SEOKeyword struct {
	Keyword      string `json:"keyword"`
	SearchVolume int    `json:"search_volume"`
	Difficulty   string `json:"difficulty"` // low, medium, high
	Category     string `json:"category"`
	Intent       string `json:"intent"` // informational, commercial, transactional
}
