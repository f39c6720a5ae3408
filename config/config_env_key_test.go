package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"jwt": map[string]any{
			"secret":              "",
			"cookieExpiresInDays": 90,
		},
		"stripe": map[string]any{
			"webhookSecret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "JWT_SECRET", want: "jwt.secret"},
		{envKey: "JWT_COOKIEEXPIRESINDAYS", want: "jwt.cookieExpiresInDays"},
		{envKey: "STRIPE_WEBHOOKSECRET", want: "stripe.webhookSecret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.Port = 3000
	cfg.Stripe = &StripeConfig{}

	applyDefaults(cfg)

	assert.Equal(t, "10KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 100, cfg.HTTP.RateLimit.Requests)
	assert.Equal(t, 30*time.Minute, cfg.HTTP.RateLimit.Window)
	assert.Equal(t, "http://localhost:3000", cfg.HTTP.BaseURL)
	assert.Equal(t, 90, cfg.JWT.CookieExpiresInDays)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "public", cfg.Storage.PublicDir)
	assert.Equal(t, "usd", cfg.Stripe.Currency)
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{}
	cfg.Env.Env = "Production"
	assert.True(t, cfg.IsProduction())

	cfg.Env.Env = EnvDevelopment
	assert.False(t, cfg.IsProduction())
}
