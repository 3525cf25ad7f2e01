package config

import (
	"context"
	"log"
	"os"
	"strings"
	"time"
)

// UpstreamBaseURL returns the base URL of the commerce API the gateway
// fronts. Every entity the console shows lives behind this API; the gateway
// itself owns no persistent state.
func UpstreamBaseURL() string {
	url := os.Getenv("UPSTREAM_API_URL")
	if url == "" {
		url = "http://localhost:8080"
		log.Println("⚠️ UPSTREAM_API_URL not set, using local default")
	}
	return strings.TrimRight(url, "/")
}

// UpstreamSecret returns the shared secret used to mint service tokens for
// upstream calls.
func UpstreamSecret() string {
	return os.Getenv("UPSTREAM_API_SECRET")
}

func Port() string {
	return getEnv("PORT", "8081")
}

func AllowedOrigins() []string {
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return []string{"http://localhost:3000", "http://localhost:3001"}
}

// WithTimeout returns a context with a 10s timeout for upstream calls
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
