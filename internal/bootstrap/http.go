package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dojoworks/dojo-admin/config"
	httpx "github.com/dojoworks/dojo-admin/internal/http"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
	// ErrCh receives the listener error when the server stops unexpectedly.
	ErrCh chan<- error
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown, or nil when the router cannot be built.
func StartHTTPServer(cfg *HTTPServerConfig) *http.Server {
	if cfg == nil {
		return nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	handler, err := BuildHTTPHandler(httpHandlerConfig{
		Logger:   logger,
		Services: RouterServices(appCfg, cfg.Services, logger),
		HTTP:     appCfg.HTTP,
		IsDev:    appCfg.IsDev,
	})
	if err != nil {
		logger.Error("failed to build HTTP handler", "error", err)
		sendErr(cfg.ErrCh, fmt.Errorf("build router: %w", err))
		return nil
	}

	return startServer(logger, handler, appCfg.HTTP.Addr, cfg.ErrCh)
}

// RouterServices maps the service container onto the router's dependencies.
func RouterServices(appCfg *config.AppConfig, svc ServiceContainer, logger *slog.Logger) httpx.RouterServices {
	rs := httpx.RouterServices{
		CookieDomain:    appCfg.HTTP.CookieDomain,
		SecureCookies:   appCfg.HTTP.Secure(),
		PageSize:        appCfg.Academy.PageSize,
		IdleWarning:     appCfg.Session.IdleWarning,
		RateLimit:       appCfg.HTTP.RateLimit,
		RateLimitWindow: appCfg.HTTP.RateLimitWindow,
		LoginRateLimit:  appCfg.HTTP.LoginRateLimit,
		IsDev:           appCfg.IsDev,
		Logger:          logger,
	}
	// A nil pointer stored in an interface is not nil; only assign live services.
	if svc.Students != nil {
		rs.Students = svc.Students
	}
	if svc.Guardians != nil {
		rs.Guardians = svc.Guardians
	}
	if svc.Groups != nil {
		rs.Groups = svc.Groups
	}
	if svc.Classes != nil {
		rs.Classes = svc.Classes
	}
	if svc.Enrollments != nil {
		rs.Enrollments = svc.Enrollments
	}
	if svc.Attendance != nil {
		rs.Attendance = svc.Attendance
	}
	if svc.Users != nil {
		rs.Users = svc.Users
	}
	if svc.Options != nil {
		rs.Options = svc.Options
	}
	if svc.Dashboard != nil {
		rs.Dashboard = svc.Dashboard
	}
	if svc.Profile != nil {
		rs.Profile = svc.Profile
	}
	if svc.Auth != nil {
		rs.Auth = svc.Auth
	}
	if !isNil(svc.Health) {
		rs.Health = svc.Health
	}
	return rs
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

type httpHandlerConfig struct {
	Logger   *slog.Logger
	Services httpx.RouterServices
	HTTP     config.HTTPConfig
	IsDev    bool
}

// BuildHTTPHandler wraps the router in the server middleware chain.
// Order: Recover -> Logging -> RequestID/RealIP -> SecureHeaders -> Compression -> Router.
func BuildHTTPHandler(cfg httpHandlerConfig) (http.Handler, error) {
	router, err := httpx.NewRouter(cfg.Services)
	if err != nil {
		return nil, err
	}

	h := router
	if cfg.HTTP.CompressionEnabled {
		cfg.Logger.Info("HTTP compression enabled", "level", cfg.HTTP.CompressionLevel)
		h = httpx.Compression(httpx.CompressionConfig{Level: cfg.HTTP.CompressionLevel})(h)
	}
	h = httpx.SecureHeaders(httpx.SecureHeadersConfig{
		SSLRedirect: cfg.HTTP.Secure(),
		IsDev:       cfg.IsDev,
		Logger:      cfg.Logger,
	})(h)
	h = middleware.RealIP(h)
	h = middleware.RequestID(h)
	h = httpx.Logging(cfg.Logger)(h)
	h = httpx.Recover(cfg.Logger)(h)

	return h, nil
}

func startServer(logger *slog.Logger, handler http.Handler, addr string, errCh chan<- error) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			sendErr(errCh, err)
		}
	}()

	return server
}

func sendErr(ch chan<- error, err error) {
	if ch == nil {
		return
	}
	select {
	case ch <- err:
	default:
	}
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Context context.Context
	Server  *http.Server
	Timeout time.Duration
	Logger  *slog.Logger
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}
	if cfg.Logger != nil {
		cfg.Logger.Info("shutting down HTTP server")
	}

	parent := cfg.Context
	if parent == nil {
		parent = context.Background()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("HTTP server stopped")
	}
	return nil
}
