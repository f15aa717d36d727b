package service

import (
	"context"
	"log/slog"

	config "github.com/maheshrc27/creatorflow/configs"
	"github.com/maheshrc27/creatorflow/internal/generator"
	"github.com/maheshrc27/creatorflow/internal/models"
	"github.com/maheshrc27/creatorflow/internal/repository"
	"github.com/maheshrc27/creatorflow/pkg/utils"
	"golang.org/x/oauth2"
)

type PlatformService interface {
	ConnectURL(ctx context.Context, platform string, userID int64) (string, error)
	List(ctx context.Context, userID int64) ([]*models.SocialAccount, error)
	Disconnect(ctx context.Context, userID, accountID int64) error
}

type platformService struct {
	cfg config.Config
	sa  repository.SocialAccountRepository
}

func NewPlatformService(cfg config.Config, sa repository.SocialAccountRepository) PlatformService {
	return &platformService{
		cfg: cfg,
		sa:  sa,
	}
}

// ConnectURL returns the provider consent page. The state is a short-lived
// signed token naming the user and the platform being linked.
func (s *platformService) ConnectURL(ctx context.Context, platform string, userID int64) (string, error) {
	p, ok := generator.ParsePlatform(platform)
	if !ok {
		slog.Info(ErrUnsupportedPlatform.Error(), "platform", platform)
		return "", ErrUnsupportedPlatform
	}

	state, err := utils.GenerateStateToken(s.cfg.SecretKey, userID, string(p))
	if err != nil {
		return "", err
	}

	if p == generator.PlatformYoutube {
		c, err := youtubeOAuthConfig(s.cfg, oauth2.Endpoint{})
		if err != nil {
			return "", err
		}
		return c.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent")), nil
	}

	c, err := oauthConfig(s.cfg.Meta, metaEndpoint, metaScopes[p])
	if err != nil {
		return "", err
	}
	return c.AuthCodeURL(state), nil
}

func (s *platformService) List(ctx context.Context, userID int64) ([]*models.SocialAccount, error) {
	return s.sa.ListActiveByUserID(ctx, userID)
}

// Disconnect marks the account inactive. Tokens are kept so a reconnect can
// reuse the refresh token.
func (s *platformService) Disconnect(ctx context.Context, userID, accountID int64) error {
	_, isExist, err := s.sa.GetByIDForUser(ctx, accountID, userID)
	if err != nil {
		return err
	}
	if !isExist {
		slog.Info(ErrAccountNotFound.Error())
		return ErrAccountNotFound
	}
	return s.sa.Deactivate(ctx, accountID, userID)
}
