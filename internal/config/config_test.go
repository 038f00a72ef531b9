package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/config"
)

// clearEnv blanks every variable Load reads so host settings don't leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "CORS_ORIGINS", "SOURCE_PATH",
		"GRAPH_BASE_URL", "GRAPH_API_VERSION", "GRAPH_RATE_LIMIT",
	} {
		t.Setenv(k, "")
	}
}

// TestLoad_defaults verifies that every value falls back to its default.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "5001", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	require.Equal(t, "server/cq8_menu.csv", cfg.SourcePath)
	require.Equal(t, "https://graph.facebook.com", cfg.GraphBaseURL)
	require.Equal(t, "v22.0", cfg.GraphVersion)
	require.InDelta(t, 5.0, cfg.GraphRateLimit, 1e-9)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ORIGINS", "https://search.example.com, https://admin.example.com")
	t.Setenv("SOURCE_PATH", "/srv/data/booths.csv")
	t.Setenv("GRAPH_BASE_URL", "http://graph.local")
	t.Setenv("GRAPH_API_VERSION", "v21.0")
	t.Setenv("GRAPH_RATE_LIMIT", "0.5")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://search.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "/srv/data/booths.csv", cfg.SourcePath)
	require.Equal(t, "http://graph.local", cfg.GraphBaseURL)
	require.Equal(t, "v21.0", cfg.GraphVersion)
	require.InDelta(t, 0.5, cfg.GraphRateLimit, 1e-9)
}

// TestLoad_invalid verifies that every unusable value is named in the error.
func TestLoad_invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "http")
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("GRAPH_RATE_LIMIT", "-1")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "PORT")
	require.ErrorContains(t, err, "LOG_LEVEL")
	require.ErrorContains(t, err, "GRAPH_RATE_LIMIT")
}
