package generator

import "strings"

var ratingReasons = map[int]string{
	5: "Your post has potential but needs more work. The caption lacks a clear hook and doesn't immediately " +
		"communicate value to your audience. Without a compelling opening line, most users will scroll past " +
		"before reading further.",
	6: "Your content shows promise with a decent message, but it could be stronger. The caption is informative " +
		"but doesn't create urgency or emotional connection. Engagement metrics will likely be average without " +
		"stronger storytelling.",
	7: "Good post overall! The content is relevant and the message is clear. However, it could benefit from a " +
		"stronger call-to-action and more targeted hashtags to reach a wider audience and drive meaningful interaction.",
	8: "Solid post with a clear message and good structure. The caption flows well and shows personality. " +
		"A few tweaks to the CTA and hashtag strategy could push this into top-performing territory for your niche.",
}

var ratingSuggestions = map[int][]string{
	5: {
		"Add a strong hook in the first line — start with a bold question or surprising fact.",
		"Include a clear CTA like 'Comment below' or 'Tag a friend who needs to see this'.",
		"Add 8–12 relevant hashtags mixing popular and niche tags for maximum reach.",
	},
	6: {
		"Use storytelling — share a personal experience or client story to build emotional connection.",
		"Break up long captions with line breaks and emojis to improve readability.",
		"Post at peak hours (7–9 AM or 6–9 PM) for your target audience's timezone.",
	},
	7: {
		"Test carousel posts — they drive 3x more engagement than single images on average.",
		"Respond to every comment within the first hour to boost algorithmic reach.",
		"Add a location tag if relevant — it increases discoverability by up to 79%.",
	},
	8: {
		"Collaborate with a micro-influencer in your niche to amplify this content.",
		"Repurpose this content as a Reel or YouTube Short for additional reach.",
		"Pin this post to the top of your profile if it performs above your average.",
	},
}

// Rate scores a post from a random base in [MinScore, MaxScore], one point
// off each for a missing caption and a missing image, never below MinScore.
func (f *Fallback) Rate(req RateRequest) Rating {
	score := MinScore + f.rnd.Intn(MaxScore-MinScore+1)
	if strings.TrimSpace(req.Caption) == "" {
		score--
	}
	if !req.HasImage {
		score--
	}
	score = clampScore(score)

	suggestions := make([]string, len(ratingSuggestions[score]))
	copy(suggestions, ratingSuggestions[score])
	return Rating{
		Score:       score,
		Reason:      ratingReasons[score],
		Suggestions: suggestions,
	}
}
