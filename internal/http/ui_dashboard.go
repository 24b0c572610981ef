package httpx

import (
	"context"
	"net/http"
)

// Dashboard renders the staff overview counters.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Dojo Admin - Dashboard", PageTitle: "Dashboard", CurrentPage: PageDashboard},
		Fetch: func(ctx context.Context, data map[string]any) error {
			if h.Counters == nil {
				return nil
			}
			counts, err := h.Counters.Counts(ctx)
			if err != nil {
				return err
			}
			data["Counts"] = counts
			return nil
		},
	})
}
