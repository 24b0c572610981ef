// Package academy holds the records exchanged with the academy REST API.
// Field names on the wire follow the API (Portuguese); Go names describe the concept.
package academy

const (
	// DefaultPageSize is used when a screen does not choose its own page size.
	DefaultPageSize = 10
	// MaxPageSize is the largest page the dashboard ever requests.
	MaxPageSize = 100
)

// Page is the envelope returned by every list endpoint.
type Page[T any] struct {
	Content       []T `json:"content"`
	TotalPages    int `json:"totalPages"`
	TotalElements int `json:"totalElements"`
	Number        int `json:"number"`
	Size          int `json:"size"`
}

// Len returns the number of records on this page.
func (p *Page[T]) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Content)
}

// PageRequest selects one zero-based server page.
type PageRequest struct {
	Page int
	Size int
}

// Normalize clamps the request to a non-negative page and a size within [1, MaxPageSize].
func (r PageRequest) Normalize() PageRequest {
	if r.Page < 0 {
		r.Page = 0
	}
	switch {
	case r.Size < 1:
		r.Size = DefaultPageSize
	case r.Size > MaxPageSize:
		r.Size = MaxPageSize
	}
	return r
}

// FirstPage returns a request for page 0 of the given size.
func FirstPage(size int) PageRequest {
	return PageRequest{Page: 0, Size: size}.Normalize()
}
