package models

import (
	"time"

	"github.com/maheshrc27/creatorflow/internal/generator"
)

type BrandProfile struct {
	ID               int64     `db:"id" json:"id"`
	UserID           int64     `db:"user_id" json:"user_id"`
	BusinessName     string    `db:"business_name" json:"business_name"`
	Industry         string    `db:"industry" json:"industry"`
	TargetAudience   string    `db:"target_audience" json:"target_audience"`
	BrandTone        string    `db:"brand_tone" json:"brand_tone"`
	PrimaryGoal      string    `db:"primary_goal" json:"primary_goal"`
	PostingFrequency string    `db:"posting_frequency" json:"posting_frequency"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// Generation returns the attributes generation reads. A nil profile yields
// an empty one, which generation fills with defaults.
func (b *BrandProfile) Generation() generator.Profile {
	if b == nil {
		return generator.Profile{}
	}
	return generator.Profile{
		BusinessName:     b.BusinessName,
		Industry:         b.Industry,
		TargetAudience:   b.TargetAudience,
		BrandTone:        b.BrandTone,
		PrimaryGoal:      b.PrimaryGoal,
		PostingFrequency: b.PostingFrequency,
	}
}
