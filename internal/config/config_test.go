package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	// Empty values are treated as unset
	t.Setenv("PORT", "")
	t.Setenv("JWT_TTL_HOURS", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("RATE_LIMIT_BURST", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 1, cfg.JWTTTL)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 2, cfg.JWTTTL)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestLoad_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "not-a-number")
	t.Setenv("RATE_LIMIT_BURST", "also-not")

	cfg := Load()

	assert.Equal(t, 1, cfg.JWTTTL)
	assert.Equal(t, 20, cfg.RateLimitBurst)
}
