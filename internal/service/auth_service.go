package service

import (
	"context"
	"errors"
	"log/slog"

	config "github.com/maheshrc27/creatorflow/configs"
	"github.com/maheshrc27/creatorflow/internal/models"
	"github.com/maheshrc27/creatorflow/internal/repository"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type AuthService interface {
	LoginURL(state string) (string, error)
	LoginCallback(ctx context.Context, code string) (int64, error)
}

type authService struct {
	cfg config.Config
	u   repository.UserRepository
}

func NewAuthService(cfg config.Config, u repository.UserRepository) AuthService {
	return &authService{
		cfg: cfg,
		u:   u,
	}
}

func (s *authService) oauth2Config() (*oauth2.Config, error) {
	c := &oauth2.Config{
		ClientID:     s.cfg.Google.ClientID,
		ClientSecret: s.cfg.Google.ClientSecret,
		RedirectURL:  s.cfg.Google.RedirectURI,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
	if c.ClientID == "" || c.ClientSecret == "" || c.RedirectURL == "" {
		slog.Info(ErrOAuthConfig.Error())
		return nil, ErrOAuthConfig
	}
	return c, nil
}

func (s *authService) LoginURL(state string) (string, error) {
	c, err := s.oauth2Config()
	if err != nil {
		return "", err
	}
	return c.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent")), nil
}

// LoginCallback exchanges the Google code and returns the local user id,
// creating the user or linking an existing account with the same email.
func (s *authService) LoginCallback(ctx context.Context, code string) (int64, error) {
	if code == "" {
		err := errors.New("code is empty")
		slog.Info(err.Error())
		return 0, err
	}

	oauth2Config, err := s.oauth2Config()
	if err != nil {
		return 0, err
	}

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	userInfo, err := GetUserInfo(ctx, oauth2Config.Client(ctx, token))
	if err != nil {
		return 0, err
	}
	if userInfo.ID == "" || userInfo.Email == "" {
		err = errors.New("google user info is incomplete")
		slog.Info(err.Error())
		return 0, err
	}

	user, isExist, err := s.u.GetByGoogleID(ctx, userInfo.ID)
	if err != nil {
		return 0, err
	}
	if isExist {
		return user.ID, nil
	}

	user, isExist, err = s.u.GetByEmail(ctx, userInfo.Email)
	if err != nil {
		return 0, err
	}
	if isExist {
		user.GoogleID = userInfo.ID
		if userInfo.Picture != "" {
			user.ProfilePicture = userInfo.Picture
		}
		if err := s.u.Update(ctx, user); err != nil {
			return 0, err
		}
		return user.ID, nil
	}

	return s.u.Create(ctx, nil, &models.User{
		GoogleID:       userInfo.ID,
		Email:          userInfo.Email,
		Name:           userInfo.Name,
		ProfilePicture: userInfo.Picture,
	})
}
