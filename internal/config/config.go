// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "5001".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// SourcePath is the CSV file served by GET /data.
	// Defaults to "server/cq8_menu.csv"; it is read on every request.
	SourcePath string

	// GraphBaseURL is the Graph API origin used by the photos passthrough.
	GraphBaseURL string

	// GraphVersion is the Graph API version path segment. Defaults to "v22.0".
	GraphVersion string

	// GraphRateLimit caps outgoing Graph API calls per second. Defaults to 5.
	// Zero disables throttling.
	GraphRateLimit float64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming every variable whose value cannot be used.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "5001"),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		SourcePath:   getEnv("SOURCE_PATH", "server/cq8_menu.csv"),
		GraphBaseURL: getEnv("GRAPH_BASE_URL", "https://graph.facebook.com"),
		GraphVersion: getEnv("GRAPH_API_VERSION", "v22.0"),
	}

	var invalid []string

	if n, err := strconv.Atoi(cfg.Port); err != nil || n < 1 || n > 65535 {
		invalid = append(invalid, "PORT")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		invalid = append(invalid, "LOG_LEVEL")
	}

	rate, err := strconv.ParseFloat(getEnv("GRAPH_RATE_LIMIT", "5"), 64)
	if err != nil || rate < 0 {
		invalid = append(invalid, "GRAPH_RATE_LIMIT")
	}
	cfg.GraphRateLimit = rate

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
