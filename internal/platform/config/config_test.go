package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRY_DURATION", "")
	t.Setenv("MEMBER_JWT_EXPIRY_DURATION", "")
	t.Setenv("LOGIN_RATE_LIMIT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 7*24*time.Hour, cfg.MemberJWTExpiryDuration)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("JWT_EXPIRY_DURATION", "2h")
	t.Setenv("MEMBER_JWT_EXPIRY_DURATION", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://kamp.example, https://admin.kamp.example ,")
	t.Setenv("LOGIN_RATE_LIMIT", "10-H")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "s3cr3t", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 7*24*time.Hour, cfg.MemberJWTExpiryDuration)
	assert.Equal(t, []string{"https://kamp.example", "https://admin.kamp.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "10-H", cfg.LoginRateLimit)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}
