package httpx

import (
	"encoding/json"
	"net/http"
	"strings"
)

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-Request"), "true")
}

// IsHistoryRestore reports whether htmx is restoring a history entry, which needs a full page.
func IsHistoryRestore(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-History-Restore-Request"), "true")
}

// WantsPartial reports whether the response should be a content fragment instead of the full layout.
func WantsPartial(r *http.Request) bool {
	return IsHTMX(r) && !IsHistoryRestore(r)
}

// SetHXRedirect tells htmx to navigate the browser to url.
func SetHXRedirect(w http.ResponseWriter, url string) { w.Header().Set("Hx-Redirect", url) }

// SetHXTrigger adds event to the HX-Trigger header. Events already set on the
// response are kept, so a toast and a nav update can travel together.
func SetHXTrigger(w http.ResponseWriter, event string, payload any) {
	var value any = true
	if payload != nil {
		value = payload
	}

	events := map[string]any{}
	if existing := w.Header().Get("Hx-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &events); err != nil {
			// plain comma-separated event names
			for _, name := range strings.Split(existing, ",") {
				if name = strings.TrimSpace(name); name != "" {
					events[name] = true
				}
			}
		}
	}
	events[event] = value

	b, err := json.Marshal(events)
	if err != nil {
		w.Header().Set("Hx-Trigger", "{\""+event+"\":true}")
		return
	}
	w.Header().Set("Hx-Trigger", string(b))
}

// HTMXResponse wraps a response writer with htmx response helpers.
type HTMXResponse struct {
	w http.ResponseWriter
}

// HTMX returns response helpers for w.
func HTMX(w http.ResponseWriter) *HTMXResponse {
	return &HTMXResponse{w: w}
}

// Redirect sets HX-Redirect and ends the response with 204.
func (h *HTMXResponse) Redirect(url string) {
	SetHXRedirect(h.w, url)
	h.w.WriteHeader(http.StatusNoContent)
}

// Trigger adds an HX-Trigger event.
func (h *HTMXResponse) Trigger(event string, payload any) *HTMXResponse {
	SetHXTrigger(h.w, event, payload)
	return h
}

// Location navigates htmx to path by swapping target, keeping the rest of the page
// (and any toast triggered on this response). It ends the response with 204.
func (h *HTMXResponse) Location(path, target string) {
	body := map[string]string{"path": path}
	if target != "" {
		body["target"] = target
	}
	b, err := json.Marshal(body)
	if err != nil {
		h.Redirect(path)
		return
	}
	h.w.Header().Set("Hx-Location", string(b))
	h.w.WriteHeader(http.StatusNoContent)
}
