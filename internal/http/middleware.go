package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"

	domainauth "github.com/dojoworks/dojo-admin/internal/domain/auth"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			}
			if reqID := middleware.GetReqID(r.Context()); reqID != "" {
				attrs = append(attrs, slog.String("request_id", reqID))
			}
			logger.Info("http", attrs...)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *respWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler { //nolint:errorlint // sentinel re-panic per net/http
						panic(err)
					}
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SecureHeadersConfig configures the security header middleware.
type SecureHeadersConfig struct {
	// SSLRedirect redirects plain HTTP to HTTPS and enables HSTS.
	SSLRedirect bool
	// IsDev relaxes host and SSL checks for local development.
	IsDev  bool
	Logger *slog.Logger
}

// contentSecurityPolicy allows htmx from its CDN; app.js registers every handler, so no inline script runs.
const contentSecurityPolicy = "default-src 'self'; script-src 'self' https://unpkg.com; " +
	"style-src 'self' 'unsafe-inline'; img-src 'self' data:; frame-ancestors 'none'"

// SecureHeaders returns a middleware that sets browser security headers.
func SecureHeaders(cfg SecureHeadersConfig) func(http.Handler) http.Handler {
	opts := secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: contentSecurityPolicy,
		SSLRedirect:           cfg.SSLRedirect,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:         cfg.IsDev,
	}
	if cfg.SSLRedirect {
		opts.STSSeconds = 31536000
		opts.STSIncludeSubdomains = true
	}
	secureMiddleware := secure.New(opts)
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := secureMiddleware.Process(w, r); err != nil {
				// Process has already written the redirect or rejection.
				logger.Debug("secure headers rejected request", "error", err, "path", r.URL.Path)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit returns a middleware that caps requests per signed-in user, or per client IP
// for anonymous requests. A limit of zero or less disables it.
func RateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	if limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(rateLimitKey),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			if IsHTMX(r) {
				triggerToast(w, "Too many requests. Please wait a moment and try again.", toastError)
			}
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)
}

func rateLimitKey(r *http.Request) (string, error) {
	if session, ok := GetUserSessionFromContext(r.Context()); ok && session.UserID != "" {
		return "user:" + session.UserID, nil
	}
	ip, err := httprate.KeyByIP(r)
	if err != nil {
		return "", err
	}
	return "ip:" + ip, nil
}

// AuthGuard resolves the browser session for protected routes.
type AuthGuard struct {
	Svc AuthServiceInterface
	// IdleWarning is how long before the idle deadline the page starts its countdown.
	IdleWarning time.Duration
	// Denied renders the access-denied page; a plain 403 is written when nil.
	Denied http.HandlerFunc
	Logger *slog.Logger
}

func (g *AuthGuard) logger() *slog.Logger {
	if g != nil && g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

// session returns the live session for r and records the activity.
func (g *AuthGuard) session(w http.ResponseWriter, r *http.Request) *domainauth.Session {
	if g == nil || g.Svc == nil {
		return nil
	}
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	session, err := g.Svc.GetSession(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	if err := g.Svc.Touch(r.Context(), session); err != nil {
		g.logger().WarnContext(r.Context(), "failed to record session activity", "error", err)
	}
	if deadline := g.Svc.IdleDeadline(*session); !deadline.IsZero() {
		w.Header().Set(idleDeadlineHeader, deadline.UTC().Format(time.RFC3339))
	}
	return session
}

// withSession stores the session and its idle clock on the request.
func (g *AuthGuard) withSession(r *http.Request, session *domainauth.Session) *http.Request {
	ctx := SetSessionInContext(r.Context(), session)
	ctx = setSessionClock(ctx, SessionClock{
		Deadline: g.Svc.IdleDeadline(*session),
		Warning:  g.IdleWarning,
	})
	return r.WithContext(ctx)
}

// RequirePermissionBrowser returns a middleware that requires a session holding any of perms.
// With no perms, any signed-in non-guest session passes.
func RequirePermissionBrowser(g *AuthGuard, perms ...domainauth.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if g == nil || g.Svc == nil {
				http.Error(w, "Sign-in is not configured", http.StatusServiceUnavailable)
				return
			}
			session := g.session(w, r)
			if session == nil || session.IsGuest() {
				if isBrowserRequest(r) {
					redirectToLogin(w, r)
					return
				}
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("authentication required"),
				})
				return
			}

			r = g.withSession(r, session)
			if !hasAnyPermission(session, perms) {
				g.logger().InfoContext(r.Context(), "access denied",
					"user_id", session.UserID, "role", session.Role, "path", r.URL.Path)
				if isBrowserRequest(r) {
					showAccessDenied(w, r, g.Denied)
					return
				}
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "insufficient_permissions",
					Err:     errors.New("insufficient permissions"),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// OptionalAuth returns a middleware that adds the session to the context when present.
func OptionalAuth(g *AuthGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session := g.session(w, r); session != nil {
				r = g.withSession(r, session)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func hasAnyPermission(session *domainauth.Session, perms []domainauth.Permission) bool {
	if len(perms) == 0 {
		return true
	}
	for _, p := range perms {
		if session.Can(p) {
			return true
		}
	}
	return false
}

// isBrowserRequest reports whether the caller expects HTML rather than JSON.
func isBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/static/") {
		return false
	}
	if IsHTMX(r) {
		return true
	}
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	return strings.Contains(accept, "text/html")
}

// redirectToLogin redirects browser requests to the login page with the current URL as redirect_uri.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirectPath := redirectPathForRequest(r)
	if redirectPath == "" {
		redirectPath = "/"
	}
	redirectParam := url.QueryEscape(redirectPath)

	if IsHTMX(r) {
		// A swap would drop the login page into the content area; navigate instead.
		SetHXRedirect(w, "/auth/signed-out?redirect_uri="+redirectParam)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, "/auth/login?redirect_uri="+redirectParam, http.StatusSeeOther)
}

func redirectPathForRequest(r *http.Request) string {
	if IsHTMX(r) {
		if current := safeRedirectFromURL(r.Header.Get("Hx-Current-Url")); current != "" {
			return current
		}
		if referer := safeRedirectFromURL(r.Header.Get("Referer")); referer != "" {
			return referer
		}
	}
	if r.Method != http.MethodGet {
		return "/"
	}
	return safeRedirectPath(r.URL.RequestURI())
}

func safeRedirectFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	// Reject scheme-relative or host-only references.
	if u.Host != "" && !u.IsAbs() {
		return ""
	}
	if u.IsAbs() {
		return safeRedirectPath(u.RequestURI())
	}
	return safeRedirectPath(raw)
}

func showAccessDenied(w http.ResponseWriter, r *http.Request, denied http.HandlerFunc) {
	if denied != nil {
		denied(w, r)
		return
	}
	http.Error(w, "Access Denied: You don't have permission to access this resource", http.StatusForbidden)
}

// CompressionConfig holds configuration for the compression middleware.
type CompressionConfig struct {
	Level int // gzip level, 1-9
}

//nolint:gochecknoglobals // fixed list
var compressibleTypes = []string{
	"text/html",
	"text/css",
	"text/plain",
	"text/javascript",
	"application/javascript",
	"application/json",
	"image/svg+xml",
}

// Compression returns a middleware that gzips text responses for clients that accept gzip.
// HEAD requests and clients that refuse gzip with q=0 pass through untouched.
func Compression(cfg CompressionConfig) func(http.Handler) http.Handler {
	compressor := middleware.NewCompressor(cfg.Level, compressibleTypes...)
	return func(next http.Handler) http.Handler {
		compressed := compressor.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead || !acceptsGzip(r.Header.Get("Accept-Encoding")) {
				next.ServeHTTP(w, r)
				return
			}
			r.Header.Set("Accept-Encoding", "gzip")
			w.Header().Add("Vary", "Accept-Encoding")
			compressed.ServeHTTP(w, r)
		})
	}
}

// acceptsGzip checks the Accept-Encoding header for gzip without q=0.
func acceptsGzip(acceptEncoding string) bool {
	for _, part := range strings.Split(acceptEncoding, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(name), "gzip") {
			continue
		}
		q := strings.ReplaceAll(strings.TrimSpace(params), " ", "")
		return q != "q=0" && q != "q=0.0" && q != "q=0.00" && q != "q=0.000"
	}
	return false
}
