package httpx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dojoworks/dojo-admin/internal/http/ui/viewmodel"
	"github.com/dojoworks/dojo-admin/internal/listing"
)

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
	r    *http.Request
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{
		data: basePageData(r, meta),
		r:    r,
	}
}

// WithList adds the pager for a loaded list. Page links keep the current filters.
// matching is the number of rows left on the page after local filtering.
func WithList[T any](b *TemplateDataBuilder, basePath string, st listing.State[T], matching int, filtered bool) *TemplateDataBuilder {
	q := b.r.URL.Query()
	b.data["Pager"] = viewmodel.NewPager(viewmodel.PagerInput{
		Window:        st.Window(),
		Page:          st.Page,
		PageSize:      st.PageSize,
		TotalElements: st.TotalElements,
		StartIndex:    st.StartIndex(),
		EndIndex:      st.EndIndex(),
		Matching:      matching,
		Filtered:      filtered,
	}, func(page int) string {
		return buildPageURL(basePath, q, page)
	})
	return b
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}

// buildPageURL returns basePath with the zero-based page set, keeping other non-empty query params.
// The page size is fixed per screen, so any size param is dropped.
func buildPageURL(basePath string, q url.Values, page int) string {
	qq := make(url.Values, len(q))
	for k, v := range q {
		// drop transient htmx params
		if k == "size" || strings.HasPrefix(k, "hx-") || strings.HasPrefix(k, "hx_") {
			continue
		}
		tmp := make([]string, 0, len(v))
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				tmp = append(tmp, s)
			}
		}
		if len(tmp) > 0 {
			qq[k] = tmp
		}
	}
	qq.Set("page", strconv.Itoa(page))
	return basePath + "?" + qq.Encode()
}
