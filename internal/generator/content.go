package generator

import "strings"

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformYoutube   Platform = "youtube"
)

// PlanDays is the fixed length of a generated plan.
const PlanDays = 5

// PlanSchedule maps plan position (day-1) to platform.
var PlanSchedule = [PlanDays]Platform{
	PlatformInstagram,
	PlatformFacebook,
	PlatformYoutube,
	PlatformInstagram,
	PlatformFacebook,
}

func ParsePlatform(s string) (Platform, bool) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformInstagram, PlatformFacebook, PlatformYoutube:
		return p, true
	default:
		return "", false
	}
}

// Draft is the generated shape of one planned post.
type Draft struct {
	Day            int      `json:"day"`
	Platform       Platform `json:"platform"`
	ContentIdea    string   `json:"content_idea"`
	Hook           string   `json:"hook"`
	Caption        string   `json:"caption"`
	Hashtags       string   `json:"hashtags"`
	Script         string   `json:"script"`
	CTA            string   `json:"cta"`
	SEOTitle       string   `json:"seo_title"`
	SEODescription string   `json:"seo_description"`
	SEOTags        string   `json:"seo_tags"`
}

// Text field names, in storage order.
const (
	FieldContentIdea    = "content_idea"
	FieldHook           = "hook"
	FieldCaption        = "caption"
	FieldHashtags       = "hashtags"
	FieldScript         = "script"
	FieldCTA            = "cta"
	FieldSEOTitle       = "seo_title"
	FieldSEODescription = "seo_description"
	FieldSEOTags        = "seo_tags"
)

var TextFields = []string{
	FieldContentIdea,
	FieldHook,
	FieldCaption,
	FieldHashtags,
	FieldScript,
	FieldCTA,
	FieldSEOTitle,
	FieldSEODescription,
	FieldSEOTags,
}

func IsTextField(name string) bool {
	for _, f := range TextFields {
		if f == name {
			return true
		}
	}
	return false
}

// Field returns a pointer to the named text field, or nil for unknown names.
func (d *Draft) Field(name string) *string {
	switch name {
	case FieldContentIdea:
		return &d.ContentIdea
	case FieldHook:
		return &d.Hook
	case FieldCaption:
		return &d.Caption
	case FieldHashtags:
		return &d.Hashtags
	case FieldScript:
		return &d.Script
	case FieldCTA:
		return &d.CTA
	case FieldSEOTitle:
		return &d.SEOTitle
	case FieldSEODescription:
		return &d.SEODescription
	case FieldSEOTags:
		return &d.SEOTags
	}
	return nil
}

// Patch is a partial set of text fields produced by an item-level task.
// Day and platform are never part of a patch.
type Patch map[string]string

// Apply merges p into d. A key only overwrites when its value is non-empty,
// so an absent or blank field in a generated result means "no change".
func (p Patch) Apply(d *Draft) {
	for k, v := range p {
		if v == "" {
			continue
		}
		if f := d.Field(k); f != nil {
			*f = v
		}
	}
}

// patchFromDraft copies every text field of d, empty ones included.
func patchFromDraft(d Draft) Patch {
	p := make(Patch, len(TextFields))
	for _, name := range TextFields {
		p[name] = *d.Field(name)
	}
	return p
}

type RateRequest struct {
	Caption  string   `json:"caption"`
	URL      string   `json:"url"`
	HasImage bool     `json:"has_image"`
	Platform Platform `json:"platform"`
}

type Rating struct {
	Score       int      `json:"score"`
	Reason      string   `json:"reason"`
	Suggestions []string `json:"suggestions"`
}

const (
	MinScore = 5
	MaxScore = 8
)

func clampScore(n int) int {
	if n < MinScore {
		return MinScore
	}
	if n > MaxScore {
		return MaxScore
	}
	return n
}
