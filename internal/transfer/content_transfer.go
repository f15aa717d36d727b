package transfer

import "github.com/maheshrc27/creatorflow/internal/models"

type UserInfo struct {
	*models.User
	HasProfile bool `json:"has_profile"`
}

type ProfileRequest struct {
	BusinessName     string `json:"business_name"`
	Industry         string `json:"industry"`
	TargetAudience   string `json:"target_audience"`
	BrandTone        string `json:"brand_tone"`
	PrimaryGoal      string `json:"primary_goal"`
	PostingFrequency string `json:"posting_frequency"`
}

// ContentUpdate holds a manual edit. A nil field was not sent and is left
// alone; a pointer to "" clears the field.
type ContentUpdate struct {
	ContentIdea    *string `json:"content_idea"`
	Hook           *string `json:"hook"`
	Caption        *string `json:"caption"`
	Hashtags       *string `json:"hashtags"`
	Script         *string `json:"script"`
	CTA            *string `json:"cta"`
	SEOTitle       *string `json:"seo_title"`
	SEODescription *string `json:"seo_description"`
	SEOTags        *string `json:"seo_tags"`
}

type ImageSuggestion struct {
	Day              int    `json:"day"`
	Platform         string `json:"platform"`
	ContentIdea      string `json:"content_idea"`
	Caption          string `json:"caption"`
	CTA              string `json:"cta"`
	ImagePrompt      string `json:"image_prompt"`
	ImageURL         string `json:"image_url"`
	FallbackImageURL string `json:"fallback_image_url"`
}

type RatePostRequest struct {
	Caption  string `json:"caption" form:"caption"`
	URL      string `json:"url" form:"url"`
	HasImage bool   `json:"has_image" form:"has_image"`
	Platform string `json:"platform" form:"platform"`
}

type RatePostResponse struct {
	Score       int      `json:"score"`
	Reason      string   `json:"reason"`
	Suggestions []string `json:"suggestions"`
	ImageURL    string   `json:"image_url,omitempty"`
}
