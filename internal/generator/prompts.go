package generator

import (
	"fmt"
	"strings"
	"text/template"
)

// System instructions, one per task.
const (
	PlanSystem = "You are a world-class social media content strategist. " +
		"Always respond with valid JSON exactly as instructed. " +
		"Return ONLY a JSON array of exactly 5 objects, no markdown fences, no extra text."
	ImproveSystem    = "You are an expert social media content strategist. Always respond with valid JSON only."
	EngagingSystem   = "You are a viral content expert. Always respond with valid JSON only."
	RegenerateSystem = "You are an expert social media content strategist. Always respond with valid JSON only."
	RateSystem       = "You are a social media expert. Always respond with valid JSON only."
)

var prompts = template.Must(template.New("prompts").Funcs(template.FuncMap{
	"title": platformTitle,
}).Parse(`
{{define "plan"}}Generate a {{.Days}}-day social media content plan as a JSON array.

Business: {{.Profile.BusinessName}}
Industry: {{.Profile.Industry}}
Audience: {{.Profile.TargetAudience}}
Tone: {{.Profile.BrandTone}}
Goal: {{.Profile.PrimaryGoal}}

Return ONLY a JSON array of {{.Days}} objects with these exact keys:
day, platform, content_idea, hook, caption, hashtags, script, cta, seo_title, seo_description, seo_tags

Rules:
- platform is one of: instagram, facebook, youtube (lowercase)
- Day 1,4 = Instagram (short caption, 10 hashtags, empty script/seo fields)
- Day 2,5 = Facebook (story caption, 3 hashtags, end with question, empty script/seo fields)
- Day 3 = YouTube (seo_title max 70 characters, seo_tags, write script field, empty hashtags)
- Every value is a string except day, which is an integer.
- No markdown. No explanation. JSON array only.
{{end}}
{{define "improve"}}Improve this {{title .Draft.Platform}} content for a {{.Profile.BrandTone}} brand.

Hook: {{.Draft.Hook}}
Caption: {{.Draft.Caption}}
CTA: {{.Draft.CTA}}

Return ONLY a JSON object with keys: hook, caption, hashtags, cta, script
Leave a key empty to keep the current value. No explanation. JSON only.
{{end}}
{{define "engaging"}}Make this {{title .Draft.Platform}} content more viral and engaging for {{.Profile.TargetAudience}}.

Hook: {{.Draft.Hook}}
Caption: {{.Draft.Caption}}

Return ONLY a JSON object with keys: hook, caption, hashtags, cta, script
Use power words, curiosity gaps, emotion. JSON only.
{{end}}
{{define "regenerate"}}Create new Day {{.Day}} content for {{title .Platform}}.

Business: {{.Profile.BusinessName}}
Industry: {{.Profile.Industry}}
Tone: {{.Profile.BrandTone}}
Goal: {{.Profile.PrimaryGoal}}

Return ONLY a JSON object with keys:
content_idea, hook, caption, hashtags, script, cta, seo_title, seo_description, seo_tags
{{if eq .Platform "youtube"}}Write the script and seo fields; leave hashtags empty.{{else}}Leave script, seo_title, seo_description and seo_tags empty.{{end}}
JSON only.
{{end}}
{{define "rate"}}Rate this {{.Platform}} post out of 10 (be realistic, score between 5 and 8).
Caption: {{if .Caption}}{{.Caption}}{{else}}No caption provided{{end}}
URL: {{if .URL}}{{.URL}}{{else}}No URL{{end}}
Has image: {{.HasImage}}

Respond ONLY as JSON with keys: score (int 5-8), reason (2-3 sentences), suggestions (list of 3 strings).
{{end}}`))

func platformTitle(p Platform) string {
	switch p {
	case PlatformYoutube:
		return "YouTube"
	case PlatformInstagram:
		return "Instagram"
	case PlatformFacebook:
		return "Facebook"
	}
	return string(p)
}

func render(name string, data any) (string, error) {
	var b strings.Builder
	if err := prompts.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPromptRender, name, err)
	}
	return strings.TrimSpace(b.String()), nil
}

func PlanPrompt(p Profile, days int) (string, error) {
	return render("plan", struct {
		Profile Profile
		Days    int
	}{p.WithDefaults(), days})
}

func ImprovePrompt(d Draft, p Profile) (string, error) {
	return render("improve", struct {
		Draft   Draft
		Profile Profile
	}{d, p.WithDefaults()})
}

func EngagingPrompt(d Draft, p Profile) (string, error) {
	return render("engaging", struct {
		Draft   Draft
		Profile Profile
	}{d, p.WithDefaults()})
}

func RegeneratePrompt(day int, platform Platform, p Profile) (string, error) {
	return render("regenerate", struct {
		Day      int
		Platform Platform
		Profile  Profile
	}{day, platform, p.WithDefaults()})
}

func RatePrompt(req RateRequest) (string, error) {
	if req.Platform == "" {
		req.Platform = PlatformInstagram
	}
	return render("rate", req)
}
