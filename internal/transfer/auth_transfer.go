package transfer

import "github.com/golang-jwt/jwt/v5"

// CustomClaims backs both session tokens and OAuth state tokens. Platform is
// only set on state tokens.
type CustomClaims struct {
	UserID   string `json:"user_id"`
	Platform string `json:"platform,omitempty"`
	jwt.RegisteredClaims
}

type GoogleUserInfo struct {
	ID            string `json:"sub"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
