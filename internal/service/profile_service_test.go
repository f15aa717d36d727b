package service

import (
	"context"
	"testing"

	"github.com/maheshrc27/creatorflow/internal/models"
	"github.com/maheshrc27/creatorflow/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfileRequest() *transfer.ProfileRequest {
	return &transfer.ProfileRequest{
		BusinessName:     " Luna Cafe ",
		Industry:         "cafe",
		TargetAudience:   "coffee lovers",
		BrandTone:        "fun",
		PrimaryGoal:      "engagement",
		PostingFrequency: "daily",
	}
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*transfer.ProfileRequest)
		msg    string
	}{
		{"missing industry", func(r *transfer.ProfileRequest) { r.Industry = "  " }, "missing field: industry"},
		{"bad tone", func(r *transfer.ProfileRequest) { r.BrandTone = "quirky" }, "brand_tone must be one of professional, fun, educational, bold"},
		{"bad goal", func(r *transfer.ProfileRequest) { r.PrimaryGoal = "fame" }, "primary_goal must be one of"},
		{"bad frequency", func(r *transfer.ProfileRequest) { r.PostingFrequency = "hourly" }, "posting_frequency must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validProfileRequest()
			tt.mutate(req)

			err := ValidateProfile(req)
			assert.ErrorIs(t, err, ErrInvalidProfile)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	assert.NoError(t, ValidateProfile(validProfileRequest()))
	assert.ErrorIs(t, ValidateProfile(nil), ErrInvalidProfile)
}

func TestProfileUpsert(t *testing.T) {
	profiles := newFakeProfiles()
	svc := NewProfileService(profiles)
	ctx := context.Background()

	p, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = svc.Upsert(ctx, 1, validProfileRequest())
	require.NoError(t, err)
	assert.Equal(t, "Luna Cafe", p.BusinessName)
	assert.Equal(t, int64(1), p.UserID)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "fun", got.BrandTone)
}

func TestUserInfo(t *testing.T) {
	users := newFakeUsers(&models.User{Email: "a@example.com", Name: "Ada"})
	svc := NewUserService(users, newFakeProfiles(&models.BrandProfile{UserID: 1}))
	ctx := context.Background()

	info, err := svc.GetUserInfo(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", info.Name)
	assert.True(t, info.HasProfile)

	_, err = svc.GetUserInfo(ctx, 2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
