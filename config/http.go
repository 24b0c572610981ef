package config

import (
	"strings"
	"time"
)

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the public base URL of the dashboard (e.g., "https://dojo.example.com").
	// An https base URL turns on HSTS and secure cookies.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// CompressionEnabled enables gzip compression for text-based assets.
	CompressionEnabled bool `env:"HTTP_COMPRESSION_ENABLED" envDefault:"false"`

	// CompressionLevel is the gzip compression level (1-9).
	// Default is 6 (standard gzip default).
	CompressionLevel int `env:"HTTP_COMPRESSION_LEVEL" envDefault:"6"`

	// RateLimit caps mutating requests per client IP within RateLimitWindow. Zero disables it.
	RateLimit       int           `env:"HTTP_RATE_LIMIT"        envDefault:"120"`
	RateLimitWindow time.Duration `env:"HTTP_RATE_LIMIT_WINDOW" envDefault:"1m"`

	// LoginRateLimit caps login attempts per client IP within RateLimitWindow. Zero disables it.
	LoginRateLimit int `env:"HTTP_LOGIN_RATE_LIMIT" envDefault:"20"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	// Clamp compression level to valid gzip range (1-9)
	if h.CompressionLevel < 1 {
		h.CompressionLevel = 1
	}
	if h.CompressionLevel > 9 {
		h.CompressionLevel = 9
	}
	if h.RateLimit < 0 {
		h.RateLimit = 0
	}
	if h.LoginRateLimit < 0 {
		h.LoginRateLimit = 0
	}
	if h.RateLimitWindow <= 0 {
		h.RateLimitWindow = time.Minute
	}
	if h.ShutdownTimeout <= 0 {
		h.ShutdownTimeout = 10 * time.Second
	}
	h.BaseURL = strings.TrimSuffix(strings.TrimSpace(h.BaseURL), "/")
}

// Secure reports whether the dashboard is served over https.
func (h *HTTPConfig) Secure() bool {
	return strings.HasPrefix(strings.ToLower(h.BaseURL), "https://")
}
