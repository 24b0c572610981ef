package listing

// WindowSize is the number of page links shown around the current page.
const WindowSize = 5

// Window is the set of page links a pager renders. Pages are zero-based.
type Window struct {
	Pages       []int
	Current     int
	TotalPages  int
	ShowFirst   bool
	LeadingGap  bool
	ShowLast    bool
	TrailingGap bool
}

// NewWindow computes the pager window for current within totalPages.
// Up to WindowSize pages every page is listed; beyond that a WindowSize-wide
// window is centred on current and clamped to both ends, with first/last
// shortcuts and gap markers when the window does not reach them.
func NewWindow(current, totalPages int) Window {
	if totalPages <= 0 {
		return Window{}
	}
	current = clamp(current, 0, totalPages-1)

	start, end := 0, totalPages
	if totalPages > WindowSize {
		start = clamp(current-WindowSize/2, 0, totalPages-WindowSize)
		end = start + WindowSize
	}

	pages := make([]int, 0, end-start)
	for p := start; p < end; p++ {
		pages = append(pages, p)
	}

	return Window{
		Pages:       pages,
		Current:     current,
		TotalPages:  totalPages,
		ShowFirst:   start > 0,
		LeadingGap:  start > 1,
		ShowLast:    end < totalPages,
		TrailingGap: end < totalPages-1,
	}
}

// Visible reports whether any controls should be rendered.
func (w Window) Visible() bool {
	return w.TotalPages > 0
}

// HasPrev reports whether a previous page exists.
func (w Window) HasPrev() bool {
	return w.Visible() && w.Current > 0
}

// HasNext reports whether a following page exists.
func (w Window) HasNext() bool {
	return w.Visible() && w.Current < w.TotalPages-1
}

// Last returns the index of the last page, or 0 with no pages.
func (w Window) Last() int {
	if w.TotalPages == 0 {
		return 0
	}
	return w.TotalPages - 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
