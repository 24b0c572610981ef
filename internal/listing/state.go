// Package listing implements the list loader, local filter and pager shared by every entity list.
package listing

import (
	"context"
	"errors"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
)

// Fetcher retrieves one server page.
type Fetcher[T any] func(ctx context.Context, req academy.PageRequest) (*academy.Page[T], error)

// State is the cursor and content of one loaded page.
// It is replaced wholesale on every load.
type State[T any] struct {
	Items         []T
	Page          int
	PageSize      int
	TotalPages    int
	TotalElements int
	Loaded        bool
	Err           error
}

var errNoFetcher = errors.New("listing: no fetcher configured")

// Load performs exactly one fetch for req and returns the resulting state.
// A failed fetch yields an empty, unloaded state carrying the error and zero totals.
func Load[T any](ctx context.Context, fetch Fetcher[T], req academy.PageRequest) State[T] {
	req = req.Normalize()
	if fetch == nil {
		return failed[T](req, errNoFetcher)
	}

	page, err := fetch(ctx, req)
	if err != nil {
		return failed[T](req, err)
	}
	if page == nil {
		return State[T]{Items: []T{}, Page: req.Page, PageSize: req.Size, Loaded: true}
	}

	items := page.Content
	if items == nil {
		items = []T{}
	}
	st := State[T]{
		Items:         items,
		Page:          req.Page,
		PageSize:      req.Size,
		TotalPages:    max(page.TotalPages, 0),
		TotalElements: max(page.TotalElements, 0),
		Loaded:        true,
	}
	if st.TotalElements < len(items) {
		st.TotalElements = len(items)
	}
	return st
}

func failed[T any](req academy.PageRequest, err error) State[T] {
	return State[T]{
		Items:    []T{},
		Page:     req.Page,
		PageSize: req.Size,
		Err:      err,
	}
}

// Failed reports whether the last load returned an error.
func (s State[T]) Failed() bool {
	return s.Err != nil
}

// Empty reports whether the page holds no records.
func (s State[T]) Empty() bool {
	return len(s.Items) == 0
}

// StartIndex is the one-based position of the first record on the page, or 0 when empty.
func (s State[T]) StartIndex() int {
	if len(s.Items) == 0 {
		return 0
	}
	return s.Page*s.PageSize + 1
}

// EndIndex is the one-based position of the last record on the page, or 0 when empty.
func (s State[T]) EndIndex() int {
	if len(s.Items) == 0 {
		return 0
	}
	return s.Page*s.PageSize + len(s.Items)
}

// Window returns the pager window for this state.
func (s State[T]) Window() Window {
	return NewWindow(s.Page, s.TotalPages)
}
