package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, "42", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Empty(t, claims.Platform)
}

func TestValidateTokenRejects(t *testing.T) {
	expired, err := GenerateToken(testSecret, "1", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateToken(testSecret, expired)
	assert.Error(t, err)

	token, err := GenerateToken(testSecret, "1", time.Hour)
	require.NoError(t, err)
	_, err = ValidateToken("other-secret", token)
	assert.Error(t, err)

	_, err = ValidateToken(testSecret, "not.a.token")
	assert.Error(t, err)
}

func TestStateToken(t *testing.T) {
	state, err := GenerateStateToken(testSecret, 7, "youtube")
	require.NoError(t, err)

	userID, platform, err := ValidateStateToken(testSecret, state)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, "youtube", platform)
}

func TestSessionTokenIsNotAState(t *testing.T) {
	token, err := GenerateToken(testSecret, "7", time.Hour)
	require.NoError(t, err)

	_, _, err = ValidateStateToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEncryptDecrypt(t *testing.T) {
	key := []byte(strings.Repeat("k", 32))

	sealed, err := Encrypt([]byte("access-token"), key)
	require.NoError(t, err)
	assert.NotContains(t, sealed, "access-token")

	plain, err := Decrypt(sealed, key)
	require.NoError(t, err)
	assert.Equal(t, "access-token", plain)

	_, err = Decrypt(sealed, []byte(strings.Repeat("x", 32)))
	assert.Error(t, err)

	_, err = Encrypt([]byte("x"), []byte("short"))
	assert.Error(t, err)

	empty, err := Decrypt("", key)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
