package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maheshrc27/creatorflow/internal/generator"
	"github.com/maheshrc27/creatorflow/internal/models"
	"github.com/maheshrc27/creatorflow/internal/repository"
	"github.com/maheshrc27/creatorflow/internal/transfer"
)

type ProfileService interface {
	Get(ctx context.Context, userID int64) (*models.BrandProfile, error)
	Upsert(ctx context.Context, userID int64, req *transfer.ProfileRequest) (*models.BrandProfile, error)
}

type profileService struct {
	bp repository.ProfileRepository
}

func NewProfileService(bp repository.ProfileRepository) ProfileService {
	return &profileService{bp: bp}
}

// Get returns the user's profile, or nil when none was saved yet.
func (s *profileService) Get(ctx context.Context, userID int64) (*models.BrandProfile, error) {
	p, _, err := s.bp.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) Upsert(ctx context.Context, userID int64, req *transfer.ProfileRequest) (*models.BrandProfile, error) {
	if err := ValidateProfile(req); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return s.bp.Upsert(ctx, &models.BrandProfile{
		UserID:           userID,
		BusinessName:     strings.TrimSpace(req.BusinessName),
		Industry:         strings.TrimSpace(req.Industry),
		TargetAudience:   strings.TrimSpace(req.TargetAudience),
		BrandTone:        req.BrandTone,
		PrimaryGoal:      req.PrimaryGoal,
		PostingFrequency: req.PostingFrequency,
	})
}

// ValidateProfile requires every attribute and checks the enumerated ones.
func ValidateProfile(req *transfer.ProfileRequest) error {
	if req == nil {
		return fmt.Errorf("%w: no data provided", ErrInvalidProfile)
	}

	required := []struct{ name, value string }{
		{"business_name", req.BusinessName},
		{"industry", req.Industry},
		{"target_audience", req.TargetAudience},
		{"brand_tone", req.BrandTone},
		{"primary_goal", req.PrimaryGoal},
		{"posting_frequency", req.PostingFrequency},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: missing field: %s", ErrInvalidProfile, f.name)
		}
	}

	if !generator.ValidTone(req.BrandTone) {
		return fmt.Errorf("%w: brand_tone must be one of %s", ErrInvalidProfile, strings.Join(generator.Tones, ", "))
	}
	if !generator.ValidGoal(req.PrimaryGoal) {
		return fmt.Errorf("%w: primary_goal must be one of %s", ErrInvalidProfile, strings.Join(generator.Goals, ", "))
	}
	if !generator.ValidFrequency(req.PostingFrequency) {
		return fmt.Errorf("%w: posting_frequency must be one of %s", ErrInvalidProfile, strings.Join(generator.Frequencies, ", "))
	}
	return nil
}
