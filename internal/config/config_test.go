package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "https://services.leadconnectorhq.com", cfg.GHL.BaseURL)
	assert.Equal(t, "2021-07-28", cfg.GHL.Version)
	assert.Equal(t, 10*time.Second, cfg.GHL.Timeout)
	assert.Equal(t, 3, cfg.GHL.Breaker.FailThreshold)
	assert.Equal(t, 10, cfg.RateLimit.RPS)
	assert.Empty(t, cfg.Redis.Addr, "redis disabled by default")
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	t.Setenv("GHL_API_KEY", "pit-key")
	t.Setenv("GHL_LOCATION_ID", "loc-42")
	t.Setenv("GHL_CALENDAR_ID", "cal-7")
	t.Setenv("GHL_API_BASE", "https://example.test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "pit-key", cfg.GHL.APIKey)
	assert.Equal(t, "loc-42", cfg.GHL.LocationID)
	assert.Equal(t, "cal-7", cfg.GHL.CalendarID)
	assert.Equal(t, "https://example.test", cfg.GHL.BaseURL)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingCredentials(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Error(t, cfg.Validate())

	cfg.GHL.APIKey = "k"
	assert.Error(t, cfg.Validate(), "location id still missing")

	cfg.GHL.LocationID = "loc"
	assert.NoError(t, cfg.Validate())
}
