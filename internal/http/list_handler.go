package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
	"github.com/dojoworks/dojo-admin/internal/listing"
)

// FilterParser builds the local filter for a list from the query string.
type FilterParser[T any] func(q url.Values) listing.Filter[T]

// DataEnricher adds list-specific data after the page was loaded and filtered.
type DataEnricher[T any] func(builder *TemplateDataBuilder, st listing.State[T], visible []T)

// ListHandlerOpts contains all options needed for the generic list handler.
type ListHandlerOpts[T any] struct {
	Handler *UIHandlers
	W       http.ResponseWriter
	R       *http.Request
	// Fetch loads one server page.
	Fetch listing.Fetcher[T]
	// Filter narrows the loaded page; nil shows every row.
	Filter FilterParser[T]
	// FilterParams are the query params echoed back into the filter form.
	FilterParams []string
	EnrichData   DataEnricher[T]
	// BasePath is the list URL pager links are built from (e.g. "/students").
	BasePath string
	PageMeta PageMeta
	// ItemsKey is the template data key for the visible rows (e.g. "Students").
	ItemsKey string
	// ErrorMessage is shown when the API gives no readable message.
	ErrorMessage string
	// PageSize overrides the handler default for this screen.
	PageSize int
}

// ListView summarizes the loaded page for templates.
type ListView struct {
	Loaded       bool
	Failed       bool
	FilterActive bool
	// Empty means the server page itself had no rows.
	Empty bool
	// NoMatch means rows were loaded but the filter hid all of them.
	NoMatch bool
	Visible int
}

// HandleList loads one server page, applies the local filter to it and renders the list.
// A failed load renders the empty state with the API's message and no stale counts.
func HandleList[T any](opts ListHandlerOpts[T]) {
	if opts.W == nil || opts.R == nil || opts.Handler == nil {
		if opts.W != nil {
			http.Error(opts.W, "Internal configuration error", http.StatusInternalServerError)
		}
		return
	}

	q := opts.R.URL.Query()
	size := opts.PageSize
	if size <= 0 {
		size = opts.Handler.pageSize()
	}
	st := listing.Load(opts.R.Context(), opts.Fetch, pageRequest(q, size))
	if errors.Is(st.Err, context.Canceled) {
		// Superseded by a newer request.
		return
	}

	filter := listing.NewFilter[T]()
	if opts.Filter != nil {
		filter = opts.Filter(q)
	}
	visible := filter.Apply(st.Items)

	builder := NewTemplateData(opts.R, opts.PageMeta).
		With(opts.ItemsKey, visible).
		With("List", ListView{
			Loaded:       st.Loaded,
			Failed:       st.Failed(),
			FilterActive: filter.Active(),
			Empty:        st.Empty(),
			NoMatch:      !st.Empty() && len(visible) == 0,
			Visible:      len(visible),
		}).
		With("Filters", filterValues(q, opts.FilterParams))
	WithList(builder, opts.BasePath, st, len(visible), filter.Active())

	if st.Failed() {
		msg := userMessage(st.Err)
		if msg == apperrors.MsgGeneric && opts.ErrorMessage != "" {
			msg = opts.ErrorMessage
		}
		opts.Handler.logger().WarnContext(opts.R.Context(), "list load failed",
			"path", opts.BasePath, "page", st.Page, "error", st.Err)
		builder.WithError(msg)
		if IsHTMX(opts.R) {
			triggerToast(opts.W, msg, toastError)
		}
	}

	if opts.EnrichData != nil {
		opts.EnrichData(builder, st, visible)
	}

	opts.Handler.renderDashboardPage(opts.W, opts.R, builder.Build())
}

// pageRequest reads the zero-based page from the query string. The size is the screen's own.
func pageRequest(q url.Values, size int) academy.PageRequest {
	req := academy.PageRequest{Page: 0, Size: size}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n >= 0 {
		req.Page = n
	}
	return req.Normalize()
}

// filterValues returns the trimmed values of names for the filter form.
func filterValues(q url.Values, names []string) map[string]string {
	out := make(map[string]string, len(names))
	for _, name := range names {
		out[name] = strings.TrimSpace(q.Get(name))
	}
	return out
}
