package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOAuth uses OAuth/OIDC for authentication.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"dojo-admin"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"dojo-admin"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`
	// GroupsClaim is a JMESPath expression selecting group names from the ID token claims.
	GroupsClaim string `env:"GROUPS_CLAIM" envDefault:"groups"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID    string   `env:"USER_ID"    envDefault:"dev-user"`
	Email     string   `env:"EMAIL"      envDefault:"dev@dojo.test"`
	FirstName string   `env:"FIRST_NAME" envDefault:"Dev"`
	LastName  string   `env:"LAST_NAME"  envDefault:"Sensei"`
	Groups    []string `env:"GROUPS"     envDefault:"dojo-admins" envSeparator:";"`
}

// RoleGroups maps identity-provider groups to dashboard roles.
type RoleGroups struct {
	AdminGroup       string `env:"ADMIN_GROUP,required"`
	CoordinatorGroup string `env:"COORDINATOR_GROUP" envDefault:"dojo-coordinators"`
	InstructorGroup  string `env:"INSTRUCTOR_GROUP"  envDefault:"dojo-instructors"`
	StudentGroup     string `env:"STUDENT_GROUP"     envDefault:"dojo-students"`
	GuardianGroup    string `env:"GUARDIAN_GROUP"    envDefault:"dojo-guardians"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	Roles RoleGroups
}

// SessionConfig controls session lifetime.
type SessionConfig struct {
	// IdleTimeout ends a session after this long without requests.
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT" envDefault:"30m"`
	// IdleWarning is how long before the idle deadline the page shows a countdown.
	IdleWarning time.Duration `env:"IDLE_WARNING" envDefault:"2m"`
	// MaxAge bounds mock-auth sessions, which carry no IdP expiry.
	MaxAge time.Duration `env:"MAX_AGE" envDefault:"8h"`
}

// Sanitize keeps the warning inside the idle window.
func (s *SessionConfig) Sanitize() {
	if s.IdleTimeout < 0 {
		s.IdleTimeout = 0
	}
	if s.MaxAge <= 0 {
		s.MaxAge = 8 * time.Hour
	}
	if s.IdleWarning < 0 || s.IdleTimeout == 0 {
		s.IdleWarning = 0
	}
	if s.IdleTimeout > 0 && s.IdleWarning >= s.IdleTimeout {
		s.IdleWarning = s.IdleTimeout / 2
	}
}
