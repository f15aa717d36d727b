package utils

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/maheshrc27/creatorflow/internal/transfer"
)

const (
	issuer        = "creatorflow"
	StateDuration = 10 * time.Minute
)

var ErrInvalidToken = errors.New("invalid token")

func GenerateToken(secretKey, userID string, tokenDuration time.Duration) (string, error) {
	return sign(secretKey, transfer.CustomClaims{UserID: userID}, tokenDuration)
}

// GenerateStateToken signs the OAuth state for a platform connection.
func GenerateStateToken(secretKey string, userID int64, platform string) (string, error) {
	claims := transfer.CustomClaims{UserID: strconv.FormatInt(userID, 10), Platform: platform}
	return sign(secretKey, claims, StateDuration)
}

func sign(secretKey string, claims transfer.CustomClaims, d time.Duration) (string, error) {
	if secretKey == "" {
		return "", errors.New("secret key is empty")
	}
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(d)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secretKey))
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return signedToken, nil
}

func ValidateToken(secretKey, tokenString string) (*transfer.CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &transfer.CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secretKey), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	if claims, ok := token.Claims.(*transfer.CustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// ValidateStateToken returns the user id and platform carried by an OAuth state.
func ValidateStateToken(secretKey, state string) (int64, string, error) {
	claims, err := ValidateToken(secretKey, state)
	if err != nil {
		return 0, "", err
	}
	if claims.Platform == "" {
		return 0, "", ErrInvalidToken
	}
	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil || userID <= 0 {
		return 0, "", ErrInvalidToken
	}
	return userID, claims.Platform, nil
}
