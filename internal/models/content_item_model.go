package models

import (
	"time"

	"github.com/maheshrc27/creatorflow/internal/generator"
)

// ContentItem is one stored day of a user's plan.
type ContentItem struct {
	ID             int64     `db:"id" json:"id"`
	UserID         int64     `db:"user_id" json:"user_id"`
	Day            int       `db:"day" json:"day"`
	Platform       string    `db:"platform" json:"platform"`
	ContentIdea    string    `db:"content_idea" json:"content_idea"`
	Hook           string    `db:"hook" json:"hook"`
	Caption        string    `db:"caption" json:"caption"`
	Hashtags       string    `db:"hashtags" json:"hashtags"`
	Script         string    `db:"script" json:"script"`
	CTA            string    `db:"cta" json:"cta"`
	SEOTitle       string    `db:"seo_title" json:"seo_title"`
	SEODescription string    `db:"seo_description" json:"seo_description"`
	SEOTags        string    `db:"seo_tags" json:"seo_tags"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

func NewContentItem(userID int64, d generator.Draft) *ContentItem {
	item := &ContentItem{UserID: userID}
	item.SetDraft(d)
	return item
}

func (c *ContentItem) Draft() generator.Draft {
	return generator.Draft{
		Day:            c.Day,
		Platform:       generator.Platform(c.Platform),
		ContentIdea:    c.ContentIdea,
		Hook:           c.Hook,
		Caption:        c.Caption,
		Hashtags:       c.Hashtags,
		Script:         c.Script,
		CTA:            c.CTA,
		SEOTitle:       c.SEOTitle,
		SEODescription: c.SEODescription,
		SEOTags:        c.SEOTags,
	}
}

func (c *ContentItem) SetDraft(d generator.Draft) {
	c.Day = d.Day
	c.Platform = string(d.Platform)
	c.ContentIdea = d.ContentIdea
	c.Hook = d.Hook
	c.Caption = d.Caption
	c.Hashtags = d.Hashtags
	c.Script = d.Script
	c.CTA = d.CTA
	c.SEOTitle = d.SEOTitle
	c.SEODescription = d.SEODescription
	c.SEOTags = d.SEOTags
}
