package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	config "github.com/maheshrc27/creatorflow/configs"
	"github.com/maheshrc27/creatorflow/internal/generator"
	"github.com/maheshrc27/creatorflow/internal/metrics"
	"github.com/maheshrc27/creatorflow/internal/models"
	"github.com/maheshrc27/creatorflow/internal/repository"
	"github.com/maheshrc27/creatorflow/pkg/utils"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const defaultChannelName = "YouTube Channel"

type YoutubeService interface {
	Callback(ctx context.Context, code, state string) error
	RefreshToken(ctx context.Context, accountID int64) error
}

type youtubeService struct {
	cfg      config.Config
	sa       repository.SocialAccountRepository
	endpoint oauth2.Endpoint
	apiURL   string
	client   *http.Client
}

func NewYoutubeService(cfg config.Config, sa repository.SocialAccountRepository) YoutubeService {
	return &youtubeService{
		cfg:    cfg,
		sa:     sa,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *youtubeService) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, s.client)
}

func (s *youtubeService) Callback(ctx context.Context, code, state string) error {
	userID, _, err := callbackState(s.cfg, state, generator.PlatformYoutube)
	if err != nil {
		return err
	}
	if code == "" {
		err = errors.New("code is empty")
		slog.Info(err.Error())
		return err
	}

	c, err := youtubeOAuthConfig(s.cfg, s.endpoint)
	if err != nil {
		return err
	}

	ctx = s.oauthContext(ctx)
	token, err := c.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return fmt.Errorf("youtube code exchange: %w", err)
	}

	channelID, channelName, err := s.channel(ctx, c.Client(ctx, token))
	if err != nil {
		return err
	}

	key := tokenKey(s.cfg)
	encryptedAccessToken, err := encryptToken(key, token.AccessToken)
	if err != nil {
		return err
	}
	encryptedRefreshToken, err := encryptToken(key, token.RefreshToken)
	if err != nil {
		return err
	}

	_, err = s.sa.Upsert(ctx, &models.SocialAccount{
		UserID:         userID,
		Platform:       string(generator.PlatformYoutube),
		AccountID:      channelID,
		AccountName:    channelName,
		AccessToken:    encryptedAccessToken,
		RefreshToken:   encryptedRefreshToken,
		TokenExpiresAt: token.Expiry,
		IsActive:       true,
	})
	return err
}

// channel returns the id and title of the authorized user's own channel.
func (s *youtubeService) channel(ctx context.Context, client *http.Client) (string, string, error) {
	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if s.apiURL != "" {
		opts = append(opts, option.WithEndpoint(s.apiURL))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		slog.Info(err.Error())
		return "", "", err
	}

	resp, err := service.Channels.List([]string{"snippet"}).Mine(true).Context(ctx).Do()
	if err != nil {
		slog.Info(err.Error())
		return "", "", fmt.Errorf("youtube channel lookup: %w", err)
	}

	if len(resp.Items) == 0 {
		return "", defaultChannelName, nil
	}
	ch := resp.Items[0]
	name := defaultChannelName
	if ch.Snippet != nil && ch.Snippet.Title != "" {
		name = ch.Snippet.Title
	}
	return ch.Id, name, nil
}

// RefreshToken renews the access token of a linked channel. Inactive
// accounts are skipped.
func (s *youtubeService) RefreshToken(ctx context.Context, accountID int64) (err error) {
	defer func() { metrics.ObserveTokenRefresh(string(generator.PlatformYoutube), err) }()

	account, isExist, err := s.sa.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !isExist {
		return ErrAccountNotFound
	}
	if !account.IsActive {
		slog.Info("skipping refresh of inactive account", "account_id", accountID)
		return nil
	}

	key := tokenKey(s.cfg)
	refreshToken, err := utils.Decrypt(account.RefreshToken, key)
	if err != nil {
		return err
	}
	if refreshToken == "" {
		return errors.New("account has no refresh token")
	}

	c, err := youtubeOAuthConfig(s.cfg, s.endpoint)
	if err != nil {
		return err
	}

	token, err := c.TokenSource(s.oauthContext(ctx), &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		slog.Info(err.Error())
		return fmt.Errorf("youtube token refresh: %w", err)
	}

	encryptedAccessToken, err := encryptToken(key, token.AccessToken)
	if err != nil {
		return err
	}
	var encryptedRefreshToken string
	if token.RefreshToken != "" && token.RefreshToken != refreshToken {
		if encryptedRefreshToken, err = encryptToken(key, token.RefreshToken); err != nil {
			return err
		}
	}

	return s.sa.SetToken(ctx, account.ID, account.AccessToken, &models.SocialAccount{
		AccessToken:    encryptedAccessToken,
		RefreshToken:   encryptedRefreshToken,
		TokenExpiresAt: token.Expiry,
	})
}
