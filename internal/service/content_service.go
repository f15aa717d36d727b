package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/maheshrc27/creatorflow/internal/generator"
	"github.com/maheshrc27/creatorflow/internal/models"
	"github.com/maheshrc27/creatorflow/internal/repository"
	"github.com/maheshrc27/creatorflow/internal/transfer"
)

const confirmPlanItems = 2

// ContentGenerator produces plans, patches and ratings. Its methods always
// return a usable result.
type ContentGenerator interface {
	GeneratePlan(ctx context.Context, p generator.Profile) []generator.Draft
	Improve(ctx context.Context, d generator.Draft, p generator.Profile) generator.Patch
	MakeEngaging(ctx context.Context, d generator.Draft, p generator.Profile) generator.Patch
	RegenerateDay(ctx context.Context, day int, platform generator.Platform, p generator.Profile) generator.Patch
	RatePost(ctx context.Context, req generator.RateRequest) generator.Rating
}

type ContentService interface {
	Generate(ctx context.Context, userID int64) ([]*models.ContentItem, error)
	Calendar(ctx context.Context, userID int64) ([]*models.ContentItem, error)
	Update(ctx context.Context, userID, id int64, upd *transfer.ContentUpdate) (*models.ContentItem, error)
	Improve(ctx context.Context, userID, id int64) (*models.ContentItem, error)
	MakeEngaging(ctx context.Context, userID, id int64) (*models.ContentItem, error)
	Regenerate(ctx context.Context, userID, id int64) (*models.ContentItem, error)
	ConfirmPlan(ctx context.Context, userID int64) ([]transfer.ImageSuggestion, error)
	RatePost(ctx context.Context, userID int64, req *transfer.RatePostRequest, image []byte) (*transfer.RatePostResponse, error)
}

type contentService struct {
	gen   ContentGenerator
	c     repository.ContentRepository
	bp    repository.ProfileRepository
	media MediaService
}

func NewContentService(
	gen ContentGenerator,
	c repository.ContentRepository,
	bp repository.ProfileRepository,
	media MediaService) ContentService {
	return &contentService{
		gen:   gen,
		c:     c,
		bp:    bp,
		media: media,
	}
}

// Generate replaces the user's plan with a freshly generated one.
func (s *contentService) Generate(ctx context.Context, userID int64) ([]*models.ContentItem, error) {
	profile, isExist, err := s.bp.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !isExist {
		slog.Info(ErrProfileRequired.Error())
		return nil, ErrProfileRequired
	}

	drafts := s.gen.GeneratePlan(ctx, profile.Generation())

	items := make([]*models.ContentItem, 0, len(drafts))
	for _, d := range drafts {
		items = append(items, models.NewContentItem(userID, d))
	}
	return s.c.ReplaceForUser(ctx, userID, items)
}

func (s *contentService) Calendar(ctx context.Context, userID int64) ([]*models.ContentItem, error) {
	return s.c.ListByUserID(ctx, userID, 0)
}

// Update applies a manual edit. Fields present in upd overwrite the stored
// value, empty strings included.
func (s *contentService) Update(ctx context.Context, userID, id int64, upd *transfer.ContentUpdate) (*models.ContentItem, error) {
	item, err := s.item(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if upd == nil {
		return item, nil
	}

	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&item.ContentIdea, upd.ContentIdea)
	set(&item.Hook, upd.Hook)
	set(&item.Caption, upd.Caption)
	set(&item.Hashtags, upd.Hashtags)
	set(&item.Script, upd.Script)
	set(&item.CTA, upd.CTA)
	set(&item.SEOTitle, upd.SEOTitle)
	set(&item.SEODescription, upd.SEODescription)
	set(&item.SEOTags, upd.SEOTags)

	if err := s.c.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *contentService) Improve(ctx context.Context, userID, id int64) (*models.ContentItem, error) {
	return s.patch(ctx, userID, id, func(d generator.Draft, p generator.Profile) generator.Patch {
		return s.gen.Improve(ctx, d, p)
	})
}

func (s *contentService) MakeEngaging(ctx context.Context, userID, id int64) (*models.ContentItem, error) {
	return s.patch(ctx, userID, id, func(d generator.Draft, p generator.Profile) generator.Patch {
		return s.gen.MakeEngaging(ctx, d, p)
	})
}

// Regenerate rewrites the item's content for its own day and platform.
func (s *contentService) Regenerate(ctx context.Context, userID, id int64) (*models.ContentItem, error) {
	return s.patch(ctx, userID, id, func(d generator.Draft, p generator.Profile) generator.Patch {
		return s.gen.RegenerateDay(ctx, d.Day, d.Platform, p)
	})
}

func (s *contentService) patch(ctx context.Context, userID, id int64, run func(generator.Draft, generator.Profile) generator.Patch) (*models.ContentItem, error) {
	item, err := s.item(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	// A missing profile is tolerated; generation fills in defaults.
	profile, _, err := s.bp.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	draft := item.Draft()
	run(draft, profile.Generation()).Apply(&draft)

	day, platform := item.Day, item.Platform
	item.SetDraft(draft)
	item.Day, item.Platform = day, platform

	if err := s.c.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *contentService) item(ctx context.Context, userID, id int64) (*models.ContentItem, error) {
	item, isExist, err := s.c.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !isExist {
		slog.Info(ErrContentNotFound.Error())
		return nil, ErrContentNotFound
	}
	return item, nil
}

// ConfirmPlan suggests images for the first planned posts.
func (s *contentService) ConfirmPlan(ctx context.Context, userID int64) ([]transfer.ImageSuggestion, error) {
	items, err := s.c.ListByUserID(ctx, userID, confirmPlanItems)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoContent
	}

	profile, _, err := s.bp.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	suggestions := make([]transfer.ImageSuggestion, 0, len(items))
	for _, item := range items {
		prompt := generator.BuildImagePrompt(item.Draft(), profile.Generation())
		seed := imageSeed(item)
		suggestions = append(suggestions, transfer.ImageSuggestion{
			Day:              item.Day,
			Platform:         item.Platform,
			ContentIdea:      item.ContentIdea,
			Caption:          item.Caption,
			CTA:              item.CTA,
			ImagePrompt:      prompt,
			ImageURL:         generatedImageURL(prompt, item.Platform, seed),
			FallbackImageURL: fmt.Sprintf("https://picsum.photos/seed/%d/512/512", seed),
		})
	}
	return suggestions, nil
}

func imageSeed(item *models.ContentItem) uint32 {
	key := item.ContentIdea
	if key == "" {
		key = strconv.Itoa(item.Day)
	}
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32()%900 + 10
}

func generatedImageURL(prompt, platform string, seed uint32) string {
	width, height := 1080, 1080
	if platform != string(generator.PlatformInstagram) {
		width, height = 1280, 720
	}
	q := url.Values{}
	q.Set("width", strconv.Itoa(width))
	q.Set("height", strconv.Itoa(height))
	q.Set("seed", strconv.FormatUint(uint64(seed), 10))
	q.Set("nologo", "true")
	return "https://image.pollinations.ai/prompt/" + url.PathEscape(prompt) + "?" + q.Encode()
}

// RatePost scores a draft post. An attached image is stored first and
// counts as having an image.
func (s *contentService) RatePost(ctx context.Context, userID int64, req *transfer.RatePostRequest, image []byte) (*transfer.RatePostResponse, error) {
	if req == nil {
		req = &transfer.RatePostRequest{}
	}

	platform, ok := generator.ParsePlatform(req.Platform)
	if !ok {
		platform = generator.PlatformInstagram
	}

	var imageURL string
	hasImage := req.HasImage
	if len(image) > 0 {
		u, err := s.media.UploadImage(ctx, userID, image)
		if err != nil {
			return nil, err
		}
		imageURL = u
		hasImage = true
	}

	rating := s.gen.RatePost(ctx, generator.RateRequest{
		Caption:  strings.TrimSpace(req.Caption),
		URL:      strings.TrimSpace(req.URL),
		HasImage: hasImage,
		Platform: platform,
	})

	return &transfer.RatePostResponse{
		Score:       rating.Score,
		Reason:      rating.Reason,
		Suggestions: rating.Suggestions,
		ImageURL:    imageURL,
	}, nil
}
