package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/dojoworks/dojo-admin/internal/domain/auth"
	"github.com/dojoworks/dojo-admin/internal/service"
)

// AuthServiceInterface defines the auth operations the HTTP layer uses.
type AuthServiceInterface interface {
	BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	CompleteLogin(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Touch(ctx context.Context, session *domainauth.Session) error
	IdleDeadline(session domainauth.Session) time.Time
	Logout(ctx context.Context, sessionID string) error
}

const (
	oauthStateCookie   = "oauth_state"
	oauthNonceCookie   = "oauth_nonce"
	postLoginCookie    = "post_login_redirect"
	oauthCookieMaxAge  = 600
	signedOutPath      = "/auth/signed-out"
	loginPath          = "/auth/login"
	redirectQueryParam = "redirect_uri"
)

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieDomain string
	// SecureCookies sets the Secure flag regardless of the request scheme.
	SecureCookies bool
	Logger        *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Login starts the sign-in flow.
// GET /auth/login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	redirectURI := safeRedirectPath(r.URL.Query().Get(redirectQueryParam))

	result, err := h.Svc.BeginLogin(r.Context(), redirectURI)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "begin login failed", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "login_failed", Err: err})
		return
	}

	h.setShortCookie(w, r, oauthStateCookie, result.State)
	h.setShortCookie(w, r, oauthNonceCookie, result.Nonce)
	h.setShortCookie(w, r, postLoginCookie, redirectURI)

	http.Redirect(w, r, result.AuthURL, http.StatusFound)
}

// Callback completes the sign-in flow.
// GET /auth/callback?code=<code>&state=<state>.
func (h *AuthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	switch {
	case code == "":
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "missing_code", Err: errors.New("authorization code is required")})
		return
	case state == "":
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "missing_state", Err: errors.New("state parameter is required")})
		return
	}

	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value != state {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_state", Err: errors.New("invalid or missing state parameter")})
		return
	}
	nonceCookie, err := r.Cookie(oauthNonceCookie)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "missing_nonce", Err: errors.New("missing nonce parameter")})
		return
	}

	result, err := h.Svc.CompleteLogin(r.Context(), service.CompleteLoginInput{
		Code:  code,
		State: state,
		Nonce: nonceCookie.Value,
	})
	if err != nil {
		h.logger().WarnContext(r.Context(), "login completion failed", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "login_completion_failed", Err: err})
		return
	}

	h.setSessionCookie(w, r, result.Session)
	h.clearCookie(w, r, oauthStateCookie)
	h.clearCookie(w, r, oauthNonceCookie)

	redirectURI := "/"
	if c, err := r.Cookie(postLoginCookie); err == nil {
		redirectURI = safeRedirectPath(c.Value)
		h.clearCookie(w, r, postLoginCookie)
	}
	h.logger().InfoContext(r.Context(), "signed in", "user_id", result.Session.UserID, "role", result.Session.Role)
	http.Redirect(w, r, redirectURI, http.StatusFound)
}

// Logout ends the session.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), c.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}
	h.clearCookie(w, r, sessionCookieName)

	redirectURI := r.FormValue(redirectQueryParam)
	if redirectURI == "" {
		redirectURI = "/"
	}
	signedOutURL := signedOutLocation(safeRedirectPath(redirectURI), r.FormValue("reason"))

	if IsHTMX(r) {
		HTMX(w).Redirect(signedOutURL)
		return
	}
	if strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest") {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "success", "redirect_to": signedOutURL})
		return
	}
	http.Redirect(w, r, signedOutURL, http.StatusFound)
}

// Keepalive records activity so the idle countdown restarts.
// POST /auth/keepalive, behind the session guard, which already touched the session.
func (h *AuthHandlers) Keepalive(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{"status": "ok"}
	if clock, ok := SessionClockFromContext(r.Context()); ok && !clock.Deadline.IsZero() {
		body["idle_deadline"] = clock.Deadline.UTC().Format(time.RFC3339)
	}
	WriteJSON(w, http.StatusOK, body)
}

// Status returns the current authentication status.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	// Status is read-only and must not extend the idle window.
	session, err := h.Svc.GetSession(r.Context(), c.Value)
	if err != nil {
		h.clearCookie(w, r, sessionCookieName)
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	body := map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"id":         session.UserID,
			"first_name": session.FirstName,
			"last_name":  session.LastName,
			"email":      session.Email,
			"role":       session.Role,
		},
		"expires_at": session.ExpiresAt,
	}
	if deadline := h.Svc.IdleDeadline(*session); !deadline.IsZero() {
		body["idle_deadline"] = deadline.UTC().Format(time.RFC3339)
	}
	WriteJSON(w, http.StatusOK, body)
}

func signedOutLocation(redirectURI, reason string) string {
	u := url.URL{Path: signedOutPath}
	q := url.Values{}
	q.Set(redirectQueryParam, redirectURI)
	if reason == "idle" {
		q.Set("reason", reason)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (h *AuthHandlers) secure(r *http.Request) bool {
	return h.SecureCookies || r.TLS != nil || isForwardedHTTPS(r)
}

// clearCookie mirrors the attributes used when setting so every browser drops the cookie.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   h.secure(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// setShortCookie stores a sign-in flow value for ten minutes.
func (h *AuthHandlers) setShortCookie(w http.ResponseWriter, r *http.Request, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   h.secure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   oauthCookieMaxAge,
	})
}

func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   h.secure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// safeRedirectPath returns candidate when it is a same-origin path starting with "/", else "/".
func safeRedirectPath(candidate string) string {
	if candidate == "" || strings.HasPrefix(candidate, "//") || strings.HasPrefix(candidate, "/\\") {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}
