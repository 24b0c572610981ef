package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/dojoworks/dojo-admin/config"
	"github.com/dojoworks/dojo-admin/internal/adapters/authroles"
	"github.com/dojoworks/dojo-admin/internal/adapters/devauth"
	"github.com/dojoworks/dojo-admin/internal/adapters/oidc"
	redisadapter "github.com/dojoworks/dojo-admin/internal/adapters/redis"
	"github.com/dojoworks/dojo-admin/internal/service"
)

// AuthConfig contains configuration for auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	Session     config.SessionConfig
	Redis       config.RedisConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewSessionStore builds the redis session store shared by the dashboard and the admin CLI.
func NewSessionStore(client redis.UniversalClient, redisCfg config.RedisConfig, session config.SessionConfig) *redisadapter.SessionStore {
	return redisadapter.NewSessionStore(client, redisadapter.SessionStoreOptions{
		Prefix:      redisCfg.KeyPrefix,
		IdleTimeout: session.IdleTimeout,
	})
}

// NewRoleMapper maps the configured identity-provider groups to roles.
func NewRoleMapper(groups config.RoleGroups) authroles.GroupMapper {
	return authroles.GroupMapper{
		AdminGroup:       groups.AdminGroup,
		CoordinatorGroup: groups.CoordinatorGroup,
		InstructorGroup:  groups.InstructorGroup,
		StudentGroup:     groups.StudentGroup,
		GuardianGroup:    groups.GuardianGroup,
	}
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Returns nil if auth is not configured or configuration is invalid.
func BuildAuthService(cfg AuthConfig) *service.AuthService {
	if cfg.RedisClient == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: redis client not configured", "mode", cfg.Auth.Mode)
		}
		return nil
	}

	opts := service.AuthServiceOptions{
		Sessions:    NewSessionStore(cfg.RedisClient, cfg.Redis, cfg.Session),
		Roles:       NewRoleMapper(cfg.Auth.Roles),
		IdleTimeout: cfg.Session.IdleTimeout,
	}

	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		return buildDevAuthService(cfg, opts)
	case config.AuthModeOAuth:
		return buildOAuthService(cfg, opts)
	default:
		return nil
	}
}

func buildDevAuthService(cfg AuthConfig, opts service.AuthServiceOptions) *service.AuthService {
	dev := cfg.Auth.DevAuth
	prov, err := devauth.NewProvider(devauth.Config{
		UserID:          dev.UserID,
		Email:           dev.Email,
		FirstName:       dev.FirstName,
		LastName:        dev.LastName,
		Groups:          dev.Groups,
		SessionDuration: cfg.Session.MaxAge,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create dev auth provider, auth disabled", "error", err)
		}
		return nil
	}
	if cfg.Logger != nil {
		cfg.Logger.Warn("dev auth enabled; every visitor signs in as the configured identity",
			"email", dev.Email, "groups", dev.Groups)
	}

	opts.Provider = prov
	return service.NewAuthService(opts)
}

func buildOAuthService(cfg AuthConfig, opts service.AuthServiceOptions) *service.AuthService {
	// Only enable when fully configured
	oauth := cfg.Auth.OAuth
	if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		if cfg.Logger != nil {
			cfg.Logger.Warn("AuthModeOAuth selected but required config missing; auth disabled",
				"discovery_url_empty", oauth.DiscoveryURL == "",
				"client_id_empty", oauth.ClientID == "",
				"client_secret_empty", oauth.ClientSecret == "",
			)
		}
		return nil
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		DiscoveryURL: oauth.DiscoveryURL,
		GroupsClaim:  oauth.GroupsClaim,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create OIDC provider, auth disabled", "error", err)
		}
		return nil
	}

	opts.Provider = prov
	return service.NewAuthService(opts)
}
