package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/creatorflow/internal/models"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.BrandProfile, bool, error)
	Upsert(ctx context.Context, p *models.BrandProfile) (*models.BrandProfile, error)
}

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `id, user_id, business_name, industry, target_audience, brand_tone,
	primary_goal, posting_frequency, created_at, updated_at`

func scanProfile(row interface{ Scan(...any) error }) (*models.BrandProfile, error) {
	var p models.BrandProfile
	err := row.Scan(&p.ID, &p.UserID, &p.BusinessName, &p.Industry, &p.TargetAudience, &p.BrandTone,
		&p.PrimaryGoal, &p.PostingFrequency, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int64) (*models.BrandProfile, bool, error) {
	query := `SELECT ` + profileColumns + ` FROM brand_profiles WHERE user_id = $1`
	p, err := scanProfile(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return p, true, nil
}

// Upsert creates the user's profile or replaces every attribute of it.
func (r *profileRepository) Upsert(ctx context.Context, p *models.BrandProfile) (*models.BrandProfile, error) {
	query := `
		INSERT INTO brand_profiles (user_id, business_name, industry, target_audience, brand_tone,
			primary_goal, posting_frequency)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			industry = EXCLUDED.industry,
			target_audience = EXCLUDED.target_audience,
			brand_tone = EXCLUDED.brand_tone,
			primary_goal = EXCLUDED.primary_goal,
			posting_frequency = EXCLUDED.posting_frequency,
			updated_at = CURRENT_TIMESTAMP
		RETURNING ` + profileColumns

	saved, err := scanProfile(r.db.QueryRowContext(ctx, query, p.UserID, p.BusinessName, p.Industry,
		p.TargetAudience, p.BrandTone, p.PrimaryGoal, p.PostingFrequency))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return saved, nil
}
