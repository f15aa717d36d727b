package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	config "github.com/maheshrc27/creatorflow/configs"
	"github.com/maheshrc27/creatorflow/internal/generator"
	"github.com/maheshrc27/creatorflow/internal/models"
	"github.com/maheshrc27/creatorflow/internal/repository"
	"github.com/maheshrc27/creatorflow/internal/transfer"
	"golang.org/x/oauth2"
)

// MetaService links Instagram and Facebook accounts through the Facebook
// login dialog.
type MetaService interface {
	Callback(ctx context.Context, code, state string) (string, error)
}

type metaService struct {
	cfg      config.Config
	sa       repository.SocialAccountRepository
	graphURL string
	endpoint oauth2.Endpoint
	client   *http.Client
}

func NewMetaService(cfg config.Config, sa repository.SocialAccountRepository) MetaService {
	return &metaService{
		cfg:      cfg,
		sa:       sa,
		graphURL: metaGraphURL,
		endpoint: metaEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Callback finishes the Meta OAuth flow and returns the linked platform.
func (s *metaService) Callback(ctx context.Context, code, state string) (string, error) {
	userID, platform, err := callbackState(s.cfg, state, generator.PlatformInstagram, generator.PlatformFacebook)
	if err != nil {
		return "", err
	}
	if code == "" {
		err = errors.New("code is empty")
		slog.Info(err.Error())
		return "", err
	}

	c, err := oauthConfig(s.cfg.Meta, s.endpoint, metaScopes[platform])
	if err != nil {
		return "", err
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.client)
	token, err := c.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("meta code exchange: %w", err)
	}

	accessToken, expiresAt := token.AccessToken, token.Expiry
	long, err := s.longLivedToken(ctx, token.AccessToken)
	if err != nil {
		slog.Warn("keeping short-lived meta token", "error", err)
	} else {
		accessToken = long.AccessToken
		if long.ExpiresIn > 0 {
			expiresAt = GetExpiresAt(int(long.ExpiresIn))
		}
	}

	me, err := s.me(ctx, accessToken)
	if err != nil {
		return "", err
	}

	encrypted, err := encryptToken(tokenKey(s.cfg), accessToken)
	if err != nil {
		return "", err
	}

	_, err = s.sa.Upsert(ctx, &models.SocialAccount{
		UserID:         userID,
		Platform:       string(platform),
		AccountID:      me.ID,
		AccountName:    me.Name,
		AccessToken:    encrypted,
		TokenExpiresAt: expiresAt,
		IsActive:       true,
	})
	if err != nil {
		return "", err
	}
	return string(platform), nil
}

func (s *metaService) longLivedToken(ctx context.Context, shortLived string) (*transfer.MetaToken, error) {
	params := url.Values{}
	params.Set("grant_type", "fb_exchange_token")
	params.Set("client_id", s.cfg.Meta.ClientID)
	params.Set("client_secret", s.cfg.Meta.ClientSecret)
	params.Set("fb_exchange_token", shortLived)

	var token transfer.MetaToken
	if err := s.get(ctx, "/oauth/access_token", params, &token); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, errors.New("meta returned an empty long-lived token")
	}
	return &token, nil
}

func (s *metaService) me(ctx context.Context, accessToken string) (*transfer.MetaUserInfo, error) {
	params := url.Values{}
	params.Set("fields", "id,name")
	params.Set("access_token", accessToken)

	var me transfer.MetaUserInfo
	if err := s.get(ctx, "/me", params, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

func (s *metaService) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.graphURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr transfer.MetaErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("meta %s: %s (code %d)", path, apiErr.Error.Message, apiErr.Error.Code)
		}
		return fmt.Errorf("meta %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		slog.Info(err.Error())
		return fmt.Errorf("meta %s: %w", path, err)
	}
	return nil
}
