package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "JWT_EXPIRY_HOURS", "AI_PROVIDER", "AI_TIMEOUT_SECONDS", "GEMINI_API_KEY", "GOOGLE_CLIENT_ID", "YOUTUBE_CLIENT_ID"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 10*time.Second, cfg.AI.Timeout)
	assert.Equal(t, ProviderGemini, cfg.AI.Provider)
	assert.False(t, cfg.AIEnabled())
	assert.False(t, cfg.R2.Configured())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_EXPIRY_HOURS", "24")
	t.Setenv("AI_TIMEOUT_SECONDS", "nope")
	t.Setenv("AI_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GOOGLE_CLIENT_ID", "google-id")
	t.Setenv("YOUTUBE_CLIENT_ID", "")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 10*time.Second, cfg.AI.Timeout)
	assert.True(t, cfg.AIEnabled())
	assert.Equal(t, "google-id", cfg.Youtube.ClientID)
}

func TestAIEnabled(t *testing.T) {
	tests := []struct {
		name string
		ai   AI
		want bool
	}{
		{"gemini with key", AI{Provider: ProviderGemini, GeminiAPIKey: "k"}, true},
		{"gemini without key", AI{Provider: ProviderGemini, OpenAIAPIKey: "k"}, false},
		{"openai with key", AI{Provider: ProviderOpenAI, OpenAIAPIKey: "k"}, true},
		{"none", AI{Provider: ProviderNone, GeminiAPIKey: "k"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{AI: tt.ai}
			assert.Equal(t, tt.want, cfg.AIEnabled())
		})
	}
}
