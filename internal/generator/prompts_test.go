package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanPrompt(t *testing.T) {
	prompt, err := PlanPrompt(lunaCafe, PlanDays)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Generate a 5-day social media content plan")
	assert.Contains(t, prompt, "Business: Luna Cafe")
	assert.Contains(t, prompt, "day, platform, content_idea, hook, caption, hashtags, script, cta, seo_title, seo_description, seo_tags")
	assert.Contains(t, prompt, "Day 1,4 = Instagram")
	assert.Contains(t, prompt, "Day 3 = YouTube")
	assert.Contains(t, prompt, "JSON array only")
}

func TestPromptsTolerateEmptyProfile(t *testing.T) {
	prompt, err := RegeneratePrompt(3, PlatformYoutube, Profile{})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Create new Day 3 content for YouTube.")
	assert.Contains(t, prompt, "Business: Your Business")
	assert.Contains(t, prompt, "Write the script and seo fields")

	prompt, err = RegeneratePrompt(1, PlatformInstagram, Profile{})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Leave script, seo_title, seo_description and seo_tags empty.")
}

func TestItemPrompts(t *testing.T) {
	d := Draft{Platform: PlatformInstagram, Hook: "H", Caption: "C", CTA: "A"}

	improve, err := ImprovePrompt(d, lunaCafe)
	require.NoError(t, err)
	assert.Contains(t, improve, "Hook: H\nCaption: C\nCTA: A")
	assert.Contains(t, improve, "keys: hook, caption, hashtags, cta, script")

	engaging, err := EngagingPrompt(d, lunaCafe)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(engaging, "Make this Instagram content more viral"))
}

func TestRatePromptPlaceholders(t *testing.T) {
	prompt, err := RatePrompt(RateRequest{})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Rate this instagram post")
	assert.Contains(t, prompt, "Caption: No caption provided")
	assert.Contains(t, prompt, "URL: No URL")
	assert.Contains(t, prompt, "Has image: false")
}

func TestBuildImagePrompt(t *testing.T) {
	d := Draft{Platform: PlatformInstagram, ContentIdea: "Barista's pick, this week — Luna Cafe"}

	prompt := BuildImagePrompt(d, lunaCafe)

	assert.True(t, strings.HasPrefix(prompt, "Baristas pick this week — Luna Cafe, cozy cafe interior"))
	assert.Contains(t, prompt, toneStyles[ToneFun])
	assert.Contains(t, prompt, platformFraming[PlatformInstagram])
	assert.True(t, strings.HasSuffix(prompt, "no text, no watermark, no logo"))
}

func TestBuildImagePromptUnknownIndustry(t *testing.T) {
	p := Profile{Industry: "Plumbing", BrandTone: "quirky"}
	prompt := BuildImagePrompt(Draft{Platform: "tiktok", ContentIdea: "Fix a leak"}, p)

	assert.Contains(t, prompt, "plumbing business environment, professional setting")
	assert.Contains(t, prompt, "professional commercial photography, social media optimized composition")
}
