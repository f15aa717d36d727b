package config

import (
	"os"
	"strconv"
	"time"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

// Configured reports whether uploads to R2 can be attempted.
func (r R2) Configured() bool {
	return r.AccountID != "" && r.AccessKey != "" && r.SecretKey != "" && r.BucketName != ""
}

type OAuthApp struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type AI struct {
	Provider     string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
	Timeout      time.Duration
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

type Config struct {
	Port          string
	FrontendURL   string
	PostgresURI   string
	RedisURI      string
	SecretKey     string
	JWTExpiry     time.Duration
	EncryptionKey string
	CookieName    string
	Google        OAuthApp
	Meta          OAuthApp
	Youtube       OAuthApp
	AI            AI
	R2            R2
}

func LoadConfig() *Config {
	return &Config{
		Port:          getEnv("PORT", "5000"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:5173"),
		PostgresURI:   getEnv("POSTGRES_URI", ""),
		RedisURI:      getEnv("REDIS_URI", ""),
		SecretKey:     getEnv("SECRET_KEY", ""),
		JWTExpiry:     time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 168)) * time.Hour,
		EncryptionKey: getEnv("ENCRYPTION_KEY", ""),
		CookieName:    getEnv("COOKIE_NAME", "creatorflow_token"),
		Google: OAuthApp{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURI:  getEnv("GOOGLE_REDIRECT_URI", "http://localhost:5000/api/auth/google/callback"),
		},
		Meta: OAuthApp{
			ClientID:     getEnv("META_APP_ID", ""),
			ClientSecret: getEnv("META_APP_SECRET", ""),
			RedirectURI:  getEnv("META_REDIRECT_URI", "http://localhost:5000/api/social/callback/meta"),
		},
		Youtube: OAuthApp{
			ClientID:     getEnv("YOUTUBE_CLIENT_ID", getEnv("GOOGLE_CLIENT_ID", "")),
			ClientSecret: getEnv("YOUTUBE_CLIENT_SECRET", getEnv("GOOGLE_CLIENT_SECRET", "")),
			RedirectURI:  getEnv("YOUTUBE_REDIRECT_URI", "http://localhost:5000/api/social/callback/youtube"),
		},
		AI: AI{
			Provider:     getEnv("AI_PROVIDER", ProviderGemini),
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Timeout:      time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
	}
}

// AIEnabled is true when a provider is selected and its key is present.
func (c *Config) AIEnabled() bool {
	switch c.AI.Provider {
	case ProviderGemini:
		return c.AI.GeminiAPIKey != ""
	case ProviderOpenAI:
		return c.AI.OpenAIAPIKey != ""
	default:
		return false
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
