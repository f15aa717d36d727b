package generator

import "strings"

const (
	ToneProfessional = "professional"
	ToneFun          = "fun"
	ToneEducational  = "educational"
	ToneBold         = "bold"

	GoalGrowth     = "growth"
	GoalSales      = "sales"
	GoalEngagement = "engagement"
)

var (
	Tones       = []string{ToneProfessional, ToneFun, ToneEducational, ToneBold}
	Goals       = []string{GoalGrowth, GoalSales, GoalEngagement}
	Frequencies = []string{"daily", "3x/week", "weekly"}
)

// Profile is the brand profile generation reads from. It is never mutated.
type Profile struct {
	BusinessName     string `json:"business_name"`
	Industry         string `json:"industry"`
	TargetAudience   string `json:"target_audience"`
	BrandTone        string `json:"brand_tone"`
	PrimaryGoal      string `json:"primary_goal"`
	PostingFrequency string `json:"posting_frequency"`
}

// ProfileDefaults fills attributes a partially completed profile left empty.
var ProfileDefaults = Profile{
	BusinessName:     "Your Business",
	Industry:         "business",
	TargetAudience:   "your audience",
	BrandTone:        ToneProfessional,
	PrimaryGoal:      GoalGrowth,
	PostingFrequency: "weekly",
}

// WithDefaults returns a copy of p where every blank attribute is replaced
// by its entry in ProfileDefaults.
func (p Profile) WithDefaults() Profile {
	out := p
	fill := func(v *string, def string) {
		if strings.TrimSpace(*v) == "" {
			*v = def
		}
	}
	fill(&out.BusinessName, ProfileDefaults.BusinessName)
	fill(&out.Industry, ProfileDefaults.Industry)
	fill(&out.TargetAudience, ProfileDefaults.TargetAudience)
	fill(&out.BrandTone, ProfileDefaults.BrandTone)
	fill(&out.PrimaryGoal, ProfileDefaults.PrimaryGoal)
	fill(&out.PostingFrequency, ProfileDefaults.PostingFrequency)
	return out
}

func ValidTone(s string) bool      { return contains(Tones, s) }
func ValidGoal(s string) bool      { return contains(Goals, s) }
func ValidFrequency(s string) bool { return contains(Frequencies, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
