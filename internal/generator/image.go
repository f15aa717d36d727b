package generator

import (
	"fmt"
	"strings"
)

const maxImageIdea = 80

var toneStyles = map[string]string{
	ToneProfessional: "clean corporate photography, soft studio lighting, muted tones",
	ToneFun:          "vibrant colorful lifestyle photography, golden hour light, playful energy",
	ToneEducational:  "flat lay desk setup, natural daylight, organized workspace",
	ToneBold:         "dramatic cinematic lighting, high contrast, strong composition",
}

// industryScenes is ordered; the first key contained in the industry wins.
var industryScenes = []struct {
	key, scene string
}{
	{"cafe", "cozy cafe interior, latte art, wooden tables, warm ambient light"},
	{"restaurant", "beautifully plated gourmet food, restaurant ambiance, bokeh background"},
	{"fitness", "modern gym, athlete in action, motivational energy, dramatic lighting"},
	{"fashion", "high-fashion editorial shoot, model, studio backdrop, elegant styling"},
	{"tech", "sleek technology product on minimal desk, dark mode aesthetic"},
	{"beauty", "skincare products arranged aesthetically, pastel background, macro lens"},
	{"real estate", "luxury interior design, wide angle, natural light, modern furniture"},
	{"education", "open books, laptop, study space, natural window light"},
	{"healthcare", "clean medical clinic environment, professional, trustworthy"},
	{"finance", "professional office, suited person, glass building, city backdrop"},
}

var platformFraming = map[Platform]string{
	PlatformInstagram: "square composition 1:1, Instagram-worthy aesthetic, lifestyle photography",
	PlatformFacebook:  "16:9 landscape format, warm community feel, engaging visual story",
	PlatformYoutube:   "16:9 YouTube thumbnail composition, bold and eye-catching, rule of thirds",
}

const imageSuffix = "photorealistic, 8K ultra-detailed, shallow depth of field, " +
	"professional commercial photography, no text, no watermark, no logo"

// BuildImagePrompt describes a photo for d suitable for a text-to-image model.
func BuildImagePrompt(d Draft, p Profile) string {
	p = p.WithDefaults()
	industry := strings.ToLower(p.Industry)
	idea := strings.NewReplacer(",", "", "'", "").Replace(d.ContentIdea)
	idea = truncateRunes(idea, maxImageIdea)

	style, ok := toneStyles[strings.ToLower(p.BrandTone)]
	if !ok {
		style = "professional commercial photography"
	}

	scene := fmt.Sprintf("%s business environment, professional setting", industry)
	for _, s := range industryScenes {
		if strings.Contains(industry, s.key) {
			scene = s.scene
			break
		}
	}

	framing, ok := platformFraming[d.Platform]
	if !ok {
		framing = "social media optimized composition"
	}

	return fmt.Sprintf("%s, %s, %s, %s, %s", idea, scene, style, framing, imageSuffix)
}
