package viewmodel

import "github.com/dojoworks/dojo-admin/internal/listing"

// PageLink is one numbered pager entry. Label is one-based, Page zero-based.
type PageLink struct {
	Page    int
	Label   int
	URL     string
	Current bool
}

// Pager contains pagination metadata for list views.
type Pager struct {
	Visible       bool
	Page          int
	PageSize      int
	TotalPages    int
	TotalElements int
	StartIndex    int
	EndIndex      int
	// Matching counts the rows on this page left by the local filter.
	Matching int
	Filtered bool

	Links       []PageLink
	First       *PageLink
	Last        *PageLink
	LeadingGap  bool
	TrailingGap bool

	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string
}

// PagerInput carries the loaded list counts a pager is built from.
// Page is the requested page, which may lie beyond the window's last page.
type PagerInput struct {
	Window        listing.Window
	Page          int
	PageSize      int
	TotalElements int
	StartIndex    int
	EndIndex      int
	Matching      int
	Filtered      bool
}

// NewPager builds the pager for in, linking each page through urlFor.
func NewPager(in PagerInput, urlFor func(page int) string) Pager {
	w := in.Window
	p := Pager{
		Visible:       w.Visible(),
		Page:          in.Page,
		PageSize:      in.PageSize,
		TotalPages:    w.TotalPages,
		TotalElements: in.TotalElements,
		StartIndex:    in.StartIndex,
		EndIndex:      in.EndIndex,
		Matching:      in.Matching,
		Filtered:      in.Filtered,
		LeadingGap:    w.LeadingGap,
		TrailingGap:   w.TrailingGap,
		HasPrev:       w.HasPrev(),
		HasNext:       w.HasNext(),
	}
	if !p.Visible {
		return p
	}
	beyond := in.Page > w.Last()

	link := func(page int) PageLink {
		return PageLink{Page: page, Label: page + 1, URL: urlFor(page), Current: page == in.Page}
	}
	p.Links = make([]PageLink, 0, len(w.Pages))
	for _, page := range w.Pages {
		p.Links = append(p.Links, link(page))
	}
	if w.ShowFirst {
		first := link(0)
		p.First = &first
	}
	if w.ShowLast {
		last := link(w.Last())
		p.Last = &last
	}
	switch {
	case beyond:
		p.HasPrev = true
		p.PrevURL = urlFor(w.Last())
	case p.HasPrev:
		p.PrevURL = urlFor(w.Current - 1)
	}
	if p.HasNext {
		p.NextURL = urlFor(w.Current + 1)
	}
	return p
}
