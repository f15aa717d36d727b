package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	config "github.com/maheshrc27/creatorflow/configs"
	"github.com/maheshrc27/creatorflow/internal/models"
	"github.com/maheshrc27/creatorflow/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

var socialCfg = config.Config{
	SecretKey:     "test-secret",
	EncryptionKey: "test-encryption",
	Meta:          config.OAuthApp{ClientID: "meta-id", ClientSecret: "meta-secret", RedirectURI: "http://localhost/api/social/callback/meta"},
	Youtube:       config.OAuthApp{ClientID: "yt-id", ClientSecret: "yt-secret", RedirectURI: "http://localhost/api/social/callback/youtube"},
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func stateFor(t *testing.T, userID int64, platform string) string {
	state, err := utils.GenerateStateToken(socialCfg.SecretKey, userID, platform)
	require.NoError(t, err)
	return state
}

func decryptToken(t *testing.T, s string) string {
	plain, err := utils.Decrypt(s, tokenKey(socialCfg))
	require.NoError(t, err)
	return plain
}

func TestConnectURL(t *testing.T) {
	svc := NewPlatformService(socialCfg, newFakeAccounts())
	ctx := context.Background()

	raw, err := svc.ConnectURL(ctx, "instagram", 42)
	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "www.facebook.com", u.Host)
	assert.Equal(t, "/v18.0/dialog/oauth", u.Path)
	assert.Contains(t, u.Query().Get("scope"), "instagram_basic")

	userID, platform, err := utils.ValidateStateToken(socialCfg.SecretKey, u.Query().Get("state"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "instagram", platform)

	raw, err = svc.ConnectURL(ctx, "YouTube", 42)
	require.NoError(t, err)
	u, err = url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", u.Host)
	assert.Equal(t, "offline", u.Query().Get("access_type"))
	assert.Equal(t, youtubeScope, u.Query().Get("scope"))
	assert.Equal(t, socialCfg.Youtube.ClientID, u.Query().Get("client_id"))
}

func TestConnectURLErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewPlatformService(socialCfg, newFakeAccounts()).ConnectURL(ctx, "tiktok", 1)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)

	_, err = NewPlatformService(config.Config{SecretKey: "s"}, newFakeAccounts()).ConnectURL(ctx, "facebook", 1)
	assert.ErrorIs(t, err, ErrOAuthConfig)
}

func TestDisconnect(t *testing.T) {
	accounts := newFakeAccounts(
		&models.SocialAccount{UserID: 1, Platform: "instagram", IsActive: true},
		&models.SocialAccount{UserID: 2, Platform: "youtube", IsActive: true},
	)
	svc := NewPlatformService(socialCfg, accounts)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Disconnect(ctx, 1, 2), ErrAccountNotFound)
	assert.ErrorIs(t, svc.Disconnect(ctx, 1, 99), ErrAccountNotFound)

	require.NoError(t, svc.Disconnect(ctx, 1, 1))
	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)

	a, _, _ := accounts.GetByID(ctx, 1)
	assert.False(t, a.IsActive)
}

func newMetaServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "abc", r.PostForm.Get("code"))
			assert.Equal(t, "meta-id", r.PostForm.Get("client_id"))
			writeJSON(w, map[string]any{"access_token": "short", "token_type": "bearer", "expires_in": 3600})
			return
		}
		q := r.URL.Query()
		assert.Equal(t, "fb_exchange_token", q.Get("grant_type"))
		assert.Equal(t, "short", q.Get("fb_exchange_token"))
		writeJSON(w, map[string]any{"access_token": "long", "token_type": "bearer", "expires_in": 5184000})
	})
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("access_token") != "long" {
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, map[string]any{"error": map[string]any{"message": "Invalid OAuth access token", "code": 190}})
			return
		}
		writeJSON(w, map[string]any{"id": "1784", "name": "Luna Cafe"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestMetaService(srv *httptest.Server, accounts *fakeAccounts) *metaService {
	return &metaService{
		cfg:      socialCfg,
		sa:       accounts,
		graphURL: srv.URL,
		endpoint: oauth2.Endpoint{
			AuthURL:   srv.URL + "/dialog/oauth",
			TokenURL:  srv.URL + "/oauth/access_token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		client: srv.Client(),
	}
}

func TestMetaCallback(t *testing.T) {
	accounts := newFakeAccounts()
	svc := newTestMetaService(newMetaServer(t), accounts)

	platform, err := svc.Callback(context.Background(), "abc", stateFor(t, 5, "facebook"))
	require.NoError(t, err)
	assert.Equal(t, "facebook", platform)

	list, err := accounts.ListActiveByUserID(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, list, 1)
	a := list[0]
	assert.Equal(t, "facebook", a.Platform)
	assert.Equal(t, "1784", a.AccountID)
	assert.Equal(t, "Luna Cafe", a.AccountName)
	assert.Equal(t, "long", decryptToken(t, a.AccessToken))
	assert.WithinDuration(t, time.Now().Add(60*24*time.Hour), a.TokenExpiresAt, time.Minute)
}

func TestMetaCallbackRejectsBadState(t *testing.T) {
	svc := newTestMetaService(newMetaServer(t), newFakeAccounts())
	ctx := context.Background()

	_, err := svc.Callback(ctx, "abc", "instagram:5")
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.Callback(ctx, "abc", stateFor(t, 5, "youtube"))
	assert.ErrorIs(t, err, ErrInvalidState)
}

func newGoogleServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		switch r.PostForm.Get("grant_type") {
		case "authorization_code":
			writeJSON(w, map[string]any{"access_token": "yt-access", "refresh_token": "yt-refresh", "token_type": "Bearer", "expires_in": 3600})
		case "refresh_token":
			assert.Equal(t, "yt-refresh", r.PostForm.Get("refresh_token"))
			writeJSON(w, map[string]any{"access_token": "yt-access-2", "token_type": "Bearer", "expires_in": 3600})
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})
	mux.HandleFunc("/youtube/v3/channels", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer yt-access", r.Header.Get("Authorization"))
		assert.Equal(t, "true", r.URL.Query().Get("mine"))
		writeJSON(w, map[string]any{"items": []any{map[string]any{"id": "UC123", "snippet": map[string]any{"title": "Luna TV"}}}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestYoutubeService(srv *httptest.Server, accounts *fakeAccounts) *youtubeService {
	return &youtubeService{
		cfg:      socialCfg,
		sa:       accounts,
		endpoint: oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token", AuthStyle: oauth2.AuthStyleInParams},
		apiURL:   srv.URL + "/",
		client:   srv.Client(),
	}
}

func TestYoutubeCallback(t *testing.T) {
	accounts := newFakeAccounts()
	svc := newTestYoutubeService(newGoogleServer(t), accounts)

	require.NoError(t, svc.Callback(context.Background(), "code", stateFor(t, 3, "youtube")))

	list, err := accounts.ListActiveByUserID(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "UC123", list[0].AccountID)
	assert.Equal(t, "Luna TV", list[0].AccountName)
	assert.Equal(t, "yt-access", decryptToken(t, list[0].AccessToken))
	assert.Equal(t, "yt-refresh", decryptToken(t, list[0].RefreshToken))
}

func TestYoutubeRefreshToken(t *testing.T) {
	key := tokenKey(socialCfg)
	access, err := encryptToken(key, "yt-access")
	require.NoError(t, err)
	refresh, err := encryptToken(key, "yt-refresh")
	require.NoError(t, err)

	accounts := newFakeAccounts(
		&models.SocialAccount{UserID: 3, Platform: "youtube", AccessToken: access, RefreshToken: refresh, IsActive: true},
		&models.SocialAccount{UserID: 4, Platform: "youtube", AccessToken: access, RefreshToken: refresh},
	)
	svc := newTestYoutubeService(newGoogleServer(t), accounts)
	ctx := context.Background()

	require.NoError(t, svc.RefreshToken(ctx, 1))
	a, _, _ := accounts.GetByID(ctx, 1)
	assert.Equal(t, "yt-access-2", decryptToken(t, a.AccessToken))
	assert.Equal(t, refresh, a.RefreshToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), a.TokenExpiresAt, time.Minute)

	require.NoError(t, svc.RefreshToken(ctx, 2))
	inactive, _, _ := accounts.GetByID(ctx, 2)
	assert.Equal(t, access, inactive.AccessToken)

	assert.ErrorIs(t, svc.RefreshToken(ctx, 99), ErrAccountNotFound)
}
