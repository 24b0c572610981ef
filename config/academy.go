package config

import (
	"strings"
	"time"
)

const (
	defaultAcademyTimeout = 10 * time.Second
	maxAcademyPageSize    = 100
)

// AcademyConfig configures the client of the academy REST API.
type AcademyConfig struct {
	// BaseURL is the API root, e.g. "https://api.dojo.example.com/api".
	BaseURL string        `env:"API_URL" envDefault:"http://localhost:8081/api"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// Token is a static bearer token. Ignored when client credentials are set.
	Token string `env:"TOKEN"`

	// OAuth2 client-credentials grant for service-to-service calls.
	ClientID     string   `env:"CLIENT_ID"`
	ClientSecret string   `env:"CLIENT_SECRET"`
	TokenURL     string   `env:"TOKEN_URL"`
	Scopes       []string `env:"SCOPES" envSeparator:" "`

	// PageSize is the list page size when a screen does not pick its own.
	PageSize int `env:"PAGE_SIZE" envDefault:"10"`

	// OptionListSize bounds the single page fetched for form dropdowns.
	OptionListSize int `env:"OPTION_LIST_SIZE" envDefault:"100"`

	// MessagePaths are JMESPath expressions tried in order to read an error message from a failed response.
	// Empty uses the built-in paths.
	MessagePaths []string `env:"ERROR_MESSAGE_PATHS" envSeparator:";"`
}

// Sanitize applies guardrails to academy API configuration values.
func (a *AcademyConfig) Sanitize() {
	a.BaseURL = strings.TrimSuffix(strings.TrimSpace(a.BaseURL), "/")
	if a.Timeout <= 0 {
		a.Timeout = defaultAcademyTimeout
	}
	a.PageSize = clamp(a.PageSize, 1, maxAcademyPageSize, 10)
	a.OptionListSize = clamp(a.OptionListSize, 1, maxAcademyPageSize, maxAcademyPageSize)

	paths := a.MessagePaths[:0]
	for _, p := range a.MessagePaths {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	a.MessagePaths = paths
}

// UsesClientCredentials reports whether the client-credentials grant is fully configured.
func (a *AcademyConfig) UsesClientCredentials() bool {
	return a.ClientID != "" && a.ClientSecret != "" && a.TokenURL != ""
}

func clamp(v, lo, hi, fallback int) int {
	switch {
	case v < lo:
		return fallback
	case v > hi:
		return hi
	default:
		return v
	}
}
