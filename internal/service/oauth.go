package service

import (
	"crypto/sha256"
	"log/slog"

	config "github.com/maheshrc27/creatorflow/configs"
	"github.com/maheshrc27/creatorflow/internal/generator"
	"github.com/maheshrc27/creatorflow/pkg/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	metaGraphURL = "https://graph.facebook.com/v18.0"
	youtubeScope = "https://www.googleapis.com/auth/youtube.readonly"
)

var metaEndpoint = oauth2.Endpoint{
	AuthURL:   "https://www.facebook.com/v18.0/dialog/oauth",
	TokenURL:  metaGraphURL + "/oauth/access_token",
	AuthStyle: oauth2.AuthStyleInParams,
}

var metaScopes = map[generator.Platform][]string{
	generator.PlatformInstagram: {"instagram_basic", "instagram_content_publish", "pages_show_list"},
	generator.PlatformFacebook:  {"pages_manage_posts", "pages_read_engagement", "publish_to_groups"},
}

func oauthConfig(app config.OAuthApp, endpoint oauth2.Endpoint, scopes []string) (*oauth2.Config, error) {
	c := &oauth2.Config{
		ClientID:     app.ClientID,
		ClientSecret: app.ClientSecret,
		RedirectURL:  app.RedirectURI,
		Scopes:       scopes,
		Endpoint:     endpoint,
	}
	if c.ClientID == "" || c.ClientSecret == "" || c.RedirectURL == "" {
		slog.Info(ErrOAuthConfig.Error())
		return nil, ErrOAuthConfig
	}
	return c, nil
}

func youtubeOAuthConfig(cfg config.Config, endpoint oauth2.Endpoint) (*oauth2.Config, error) {
	if endpoint.TokenURL == "" {
		endpoint = google.Endpoint
	}
	return oauthConfig(cfg.Youtube, endpoint, []string{youtubeScope})
}

// tokenKey derives the AES-256 key used for stored platform tokens.
func tokenKey(cfg config.Config) []byte {
	secret := cfg.EncryptionKey
	if secret == "" {
		secret = cfg.SecretKey
	}
	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}

func encryptToken(key []byte, token string) (string, error) {
	if token == "" {
		return "", nil
	}
	return utils.Encrypt([]byte(token), key)
}

// callbackState checks the signed state and that it was issued for one of
// the wanted platforms.
func callbackState(cfg config.Config, state string, platforms ...generator.Platform) (int64, generator.Platform, error) {
	userID, p, err := utils.ValidateStateToken(cfg.SecretKey, state)
	if err != nil {
		slog.Info(err.Error())
		return 0, "", ErrInvalidState
	}
	for _, want := range platforms {
		if generator.Platform(p) == want {
			return userID, want, nil
		}
	}
	slog.Info("state issued for another platform", "platform", p)
	return 0, "", ErrInvalidState
}
