package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "postgres")
	t.Setenv("DB_NAME", "cookshare_test")
	t.Setenv("DB_SSL_MODE", "disable")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	// Test database configuration
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "postgres", cfg.DBPassword)
	assert.Equal(t, "cookshare_test", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)

	// Test JWT configuration
	assert.Equal(t, "test-secret", cfg.JWTSecret)

	// Test Redis configuration
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	for _, key := range []string{
		"SERVER_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSL_MODE", "JWT_SECRET", "REDIS_URL", "ALLOWED_ORIGINS",
		"MATCH_REQUIREMENT_RATIO", "MATCH_MIN_PERCENT", "MATCH_GATE_ENABLED", "FEED_CAP",
	} {
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "cookshare", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "your-secret-key", cfg.JWTSecret)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)

	// Ranking defaults
	assert.Equal(t, 0.7, cfg.MatchRequirementRatio)
	assert.Equal(t, 80, cfg.MatchMinPercent)
	assert.True(t, cfg.MatchGateEnabled)
	assert.Equal(t, 15, cfg.FeedCap)
}

func TestLoadConfigRankingOverrides(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("MATCH_REQUIREMENT_RATIO", "0.5")
	t.Setenv("MATCH_MIN_PERCENT", "60")
	t.Setenv("MATCH_GATE_ENABLED", "false")
	t.Setenv("FEED_CAP", "30")

	cfg, err := LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, 0.5, cfg.MatchRequirementRatio)
	assert.Equal(t, 60, cfg.MatchMinPercent)
	assert.False(t, cfg.MatchGateEnabled)
	assert.Equal(t, 30, cfg.FeedCap)
}

func TestLoadConfigRejectsBadRatio(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("MATCH_REQUIREMENT_RATIO", "1.5")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSplitOrigins(t *testing.T) {
	assert.Nil(t, splitOrigins(""))
	assert.Equal(t, []string{"https://a.example", "https://b.example"},
		splitOrigins("https://a.example, https://b.example"))
}
