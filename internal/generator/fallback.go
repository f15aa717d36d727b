package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	maxSEOTitle       = 70
	maxSEODescription = 300
)

var (
	instagramIdeas = []string{
		"Behind-the-scenes look at our process",
		"Client success story spotlight",
		"Top 3 tips for your industry",
		"Product/service feature highlight",
		"Team introduction post",
	}
	facebookIdeas = []string{
		"Industry insight and community discussion",
		"Customer testimonial story",
		"How-to guide for your audience",
		"Company milestone celebration",
		"Q&A session invitation",
	}
	youtubeIdeas = []string{
		"Full tutorial: Getting started guide",
		"Expert interview: Industry insights",
		"Case study walkthrough",
		"Product demo and review",
		"Top 5 mistakes to avoid",
	}

	// InstagramCTAs is the pool instagram calls to action are drawn from.
	InstagramCTAs = []string{
		"Follow us for more!",
		"Save this post!",
		"Share with someone who needs this!",
		"Comment your thoughts below!",
		"Link in bio to learn more!",
		"Subscribe for weekly tips!",
		"Tag a friend!",
	}

	// PowerPhrases prefix hooks in the engaging variant.
	PowerPhrases = []string{
		"🔥 STOP scrolling!",
		"⚡ This changed everything!",
		"🚀 Nobody talks about this but...",
	}
)

const (
	facebookCTA = "Tell us in the comments!"
	youtubeCTA  = "Like, Subscribe, and hit the notification bell! 🔔"

	ImproveHookPrefix = "✨"
	ImproveCaptionTip = "\n\n💡 Pro tip: Consistency is key to growth. Keep showing up!"
	improveHashtags   = " #Growth #ContentStrategy"
	improveCTA        = "Save this post and share it with someone who needs to see it! 🔖"

	engagingCaptionPrefix = "🎯 "
	engagingCaptionSuffix = "\n\n👇 Double tap if this resonates with you!"
	engagingHashtags      = " #Viral #MustSee #Trending"
	engagingCTA           = "TAG someone who needs to see this RIGHT NOW! 👇"
)

// Rand is the source of the few random choices the templates make.
type Rand interface {
	Intn(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// NewRand returns a Rand safe for concurrent use.
func NewRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

// Fallback produces content from fixed templates without any network call.
// None of its methods fail.
type Fallback struct {
	rnd Rand
}

func NewFallback(rnd Rand) *Fallback {
	if rnd == nil {
		rnd = NewRand(time.Now().UnixNano())
	}
	return &Fallback{rnd: rnd}
}

func (f *Fallback) Plan(p Profile) []Draft {
	days := make([]Draft, 0, PlanDays)
	for i, platform := range PlanSchedule {
		days = append(days, f.Day(i+1, platform, p))
	}
	return days
}

// Day builds the content for one day on one platform. Unknown platforms are
// treated as instagram.
func (f *Fallback) Day(day int, platform Platform, p Profile) Draft {
	p = p.WithDefaults()
	switch platform {
	case PlatformFacebook:
		return f.facebookDay(day, p)
	case PlatformYoutube:
		return f.youtubeDay(day, p)
	default:
		return f.instagramDay(day, p)
	}
}

func (f *Fallback) instagramDay(day int, p Profile) Draft {
	idea := pick(instagramIdeas, day)
	return Draft{
		Day:         day,
		Platform:    PlatformInstagram,
		ContentIdea: fmt.Sprintf("%s — %s", idea, p.BusinessName),
		Hook:        fmt.Sprintf("🚀 Did you know that %s businesses are changing fast?", p.Industry),
		Caption: fmt.Sprintf(
			"At %s, we're passionate about helping %s.\n\n"+
				"Our %s approach means you always get results focused on %s.\n\n"+
				"Here's what we've been working on: %s. "+
				"We believe in transparency and sharing the journey with you.\n\n"+
				"What's one thing you'd like to see us post about? Drop it in the comments! 👇",
			p.BusinessName, p.TargetAudience, p.BrandTone, p.PrimaryGoal, strings.ToLower(idea)),
		Hashtags: fmt.Sprintf(
			"#%s #%s #ContentCreator #SmallBusiness #GrowthMindset "+
				"#Marketing #BusinessTips #Entrepreneur #Success #Instagram",
			hashtagWord(p.Industry), hashtagWord(p.BusinessName)),
		CTA: InstagramCTAs[f.rnd.Intn(len(InstagramCTAs))],
	}
}

func (f *Fallback) facebookDay(day int, p Profile) Draft {
	idea := pick(facebookIdeas, day)
	return Draft{
		Day:         day,
		Platform:    PlatformFacebook,
		ContentIdea: fmt.Sprintf("%s — %s", idea, p.BusinessName),
		Hook:        fmt.Sprintf("We want to hear from you, %s!", p.TargetAudience),
		Caption: fmt.Sprintf(
			"Hello from %s! 👋\n\n"+
				"Today we're talking about: %s.\n\n"+
				"In the %s space, we know that %s face real challenges every day. "+
				"That's why our goal is %s for every single client we work with.\n\n"+
				"We take a %s approach to everything we do, and it's making a real difference.\n\n"+
				"👉 What's the biggest challenge you're facing right now in %s? "+
				"Let us know in the comments — we read every single one!",
			p.BusinessName, idea, p.Industry, p.TargetAudience, p.PrimaryGoal, p.BrandTone, p.Industry),
		Hashtags: fmt.Sprintf("#%s #%s #Community", hashtagWord(p.Industry), hashtagWord(p.BusinessName)),
		CTA:      facebookCTA,
	}
}

func (f *Fallback) youtubeDay(day int, p Profile) Draft {
	idea := pick(youtubeIdeas, day)
	title := truncateRunes(fmt.Sprintf("%s | %s", idea, p.BusinessName), maxSEOTitle)
	topic := strings.TrimSpace(strings.SplitN(idea, ":", 2)[0])
	return Draft{
		Day:         day,
		Platform:    PlatformYoutube,
		ContentIdea: fmt.Sprintf("%s — %s", idea, p.BusinessName),
		Hook:        fmt.Sprintf("In the next few minutes, you'll learn exactly how to %s.", strings.ToLower(idea)),
		Caption:     fmt.Sprintf("Watch our latest video: %s", title),
		Script: fmt.Sprintf(
			"[INTRO]\nHey everyone, welcome back to the %s channel! I'm so glad you're here today.\n\n"+
				"[HOOK]\nToday's video is all about: %s. "+
				"If you're in %s and targeting %s, this is going to be super valuable for you.\n\n"+
				"[MAIN CONTENT]\n"+
				"Point 1: Understanding the basics of %s\n"+
				"Point 2: How %s approaches this for %s\n"+
				"Point 3: Our %s strategy that works\n\n"+
				"[OUTRO]\nIf you found this helpful, please hit LIKE and SUBSCRIBE "+
				"for weekly content like this. See you in the next video!",
			p.BusinessName, idea, p.Industry, p.TargetAudience,
			strings.ToLower(idea), p.BusinessName, p.PrimaryGoal, p.BrandTone),
		CTA:      youtubeCTA,
		SEOTitle: title,
		SEODescription: truncateRunes(fmt.Sprintf(
			"%s — In this video, %s shares expert insights for %s in the %s industry. "+
				"Our goal is your %s. Subscribe for weekly tips and strategies!",
			idea, p.BusinessName, p.TargetAudience, p.Industry, p.PrimaryGoal), maxSEODescription),
		SEOTags: fmt.Sprintf(
			"%s, %s, %s, tutorial, tips, %s, %s, how to, guide, strategy",
			p.Industry, p.BusinessName, topic, p.TargetAudience, p.PrimaryGoal),
	}
}

// Improve polishes an existing item. The hook prefix is added once; the
// caption tip is appended on every call.
func (f *Fallback) Improve(d Draft) Patch {
	hook := d.Hook
	if hook != "" && !strings.HasPrefix(hook, ImproveHookPrefix) {
		hook = ImproveHookPrefix + " " + hook
	}
	return Patch{
		FieldHook:     hook,
		FieldCaption:  d.Caption + ImproveCaptionTip,
		FieldHashtags: d.Hashtags + improveHashtags,
		FieldCTA:      improveCTA,
		FieldScript:   d.Script,
	}
}

func (f *Fallback) Engaging(d Draft) Patch {
	phrase := PowerPhrases[f.rnd.Intn(len(PowerPhrases))]
	return Patch{
		FieldHook:     phrase + " " + d.Hook,
		FieldCaption:  engagingCaptionPrefix + d.Caption + engagingCaptionSuffix,
		FieldHashtags: d.Hashtags + engagingHashtags,
		FieldCTA:      engagingCTA,
		FieldScript:   d.Script,
	}
}

// Regenerate rebuilds the day's content; day and platform are left to the caller.
func (f *Fallback) Regenerate(day int, platform Platform, p Profile) Patch {
	return patchFromDraft(f.Day(day, platform, p))
}

func pick(pool []string, day int) string {
	n := len(pool)
	return pool[((day%n)+n)%n]
}

// hashtagWord keeps only letters and digits.
func hashtagWord(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
