package httpx

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
)

// Index sends each role to its landing page: staff to the dashboard,
// students and guardians to their profile.
func (h *UIHandlers) Index(w http.ResponseWriter, r *http.Request) {
	target := "/dashboard"
	if s := GetSessionFromContext(r.Context()); s != nil && !s.Role.IsStaff() {
		target = "/profile"
	}
	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// SignedOut renders a simple signed-out page with a Sign In button.
func (h *UIHandlers) SignedOut(w http.ResponseWriter, r *http.Request) {
	redirect := safeRedirectPath(r.URL.Query().Get("redirect_uri"))
	data := map[string]any{
		"Title":       "Signed out - Dojo Admin",
		"RedirectURI": redirect,
		"IdleExpired": r.URL.Query().Get("reason") == "idle",
	}
	if h.T != nil {
		// Buffer template to avoid partial writes on error
		var buf bytes.Buffer
		if err := h.T.RenderContent(&buf, "signed-out-page", data); err != nil {
			http.Redirect(w, r, "/auth/login?redirect_uri="+url.QueryEscape(redirect), http.StatusSeeOther)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			h.logger().Error("failed to write signed-out response", "error", err)
		}
		return
	}
	http.Redirect(w, r, "/auth/login?redirect_uri="+url.QueryEscape(redirect), http.StatusSeeOther)
}

// AccessDenied renders the 403 page used by the permission guards.
func (h *UIHandlers) AccessDenied(w http.ResponseWriter, r *http.Request) {
	if IsHTMX(r) {
		triggerToast(w, "You don't have permission to do that.", toastError)
		w.WriteHeader(http.StatusForbidden)
		return
	}
	h.renderErrorPage(w, r, http.StatusForbidden, "403", "You don't have permission to access this page.")
}

// NotFound handles 404 errors with auth-aware behavior.
// For browser requests, it renders an HTML error page.
// For API requests, it returns a JSON error response.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if isBrowserRequest(r) {
		h.renderErrorPage(w, r, http.StatusNotFound, "404", "The page you're looking for doesn't exist.")
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusNotFound,
		ErrCode: "not_found",
		Err:     errors.New("not found"),
	})
}

func (h *UIHandlers) renderErrorPage(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	isAuthenticated := !IsGuestUser(r.Context())
	data := map[string]any{
		"Title":           "Error " + code + " - Dojo Admin",
		"Code":            code,
		"Message":         message,
		"IsAuthenticated": isAuthenticated,
		"ShowLogin":       !isAuthenticated,
		"RedirectURI":     r.URL.RequestURI(),
	}

	if h.T == nil {
		http.Error(w, message, status)
		return
	}
	var buf bytes.Buffer
	if err := h.T.RenderContent(&buf, "error-layout", data); err != nil {
		http.Error(w, message, status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger().Error("failed to write error page", "error", err)
	}
}
