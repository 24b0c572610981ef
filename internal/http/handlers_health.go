package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dojoworks/dojo-admin/internal/core"
)

const upstreamPingTimeout = 3 * time.Second

// HealthHandlers serves liveness and, with ?deep=1, academy API reachability.
type HealthHandlers struct {
	API    core.APIHealthChecker
	Logger *slog.Logger
}

// Health answers GET and HEAD /healthz.
func (h *HealthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	status, body := http.StatusOK, map[string]string{"status": "ok"}

	if r.URL.Query().Get("deep") != "" && h != nil && h.API != nil {
		ctx, cancel := context.WithTimeout(r.Context(), upstreamPingTimeout)
		defer cancel()
		if err := h.API.Ping(ctx); err != nil {
			if h.Logger != nil {
				h.Logger.WarnContext(r.Context(), "academy API unreachable", "error", err)
			}
			status = http.StatusServiceUnavailable
			body = map[string]string{"status": "degraded", "api": "unreachable"}
		} else {
			body["api"] = "ok"
		}
	}

	if r.Method == http.MethodHead {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		return
	}
	WriteJSON(w, status, body)
}
