package listing

import (
	"strings"

	"golang.org/x/text/cases"
)

// Predicate reports whether an item is kept.
type Predicate[T any] func(T) bool

// Filter is a conjunction of predicates over the items of one loaded page.
// It never sees other pages and never adds items.
type Filter[T any] struct {
	preds []Predicate[T]
}

// NewFilter builds a filter from preds, ignoring nil entries so callers can pass
// unset criteria straight through.
func NewFilter[T any](preds ...Predicate[T]) Filter[T] {
	f := Filter[T]{}
	for _, p := range preds {
		if p != nil {
			f.preds = append(f.preds, p)
		}
	}
	return f
}

// Active reports whether any criterion is set.
func (f Filter[T]) Active() bool {
	return len(f.preds) > 0
}

// Match reports whether item satisfies every predicate.
func (f Filter[T]) Match(item T) bool {
	for _, p := range f.preds {
		if !p(item) {
			return false
		}
	}
	return true
}

// Apply returns the items that match, in their original order.
// With no active criteria the input is returned unchanged.
func (f Filter[T]) Apply(items []T) []T {
	if !f.Active() {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Text matches term as a case-insensitive substring of any of the given fields.
// A blank term yields a nil predicate.
func Text[T any](term string, fields ...func(T) string) Predicate[T] {
	term = strings.TrimSpace(term)
	if term == "" || len(fields) == 0 {
		return nil
	}
	fold := cases.Fold()
	needle := fold.String(term)
	return func(item T) bool {
		for _, field := range fields {
			if strings.Contains(fold.String(field(item)), needle) {
				return true
			}
		}
		return false
	}
}

// Equal matches items whose field equals want. The zero value of V means "any"
// and yields a nil predicate.
func Equal[T any, V comparable](want V, field func(T) V) Predicate[T] {
	var zero V
	if want == zero {
		return nil
	}
	return func(item T) bool {
		return field(item) == want
	}
}

// Digits matches term against the digits of a document field, ignoring
// punctuation on both sides, so "123.456" finds "12345678900".
func Digits[T any](term string, field func(T) string) Predicate[T] {
	needle := onlyDigits(term)
	if needle == "" {
		return nil
	}
	return func(item T) bool {
		return strings.Contains(onlyDigits(field(item)), needle)
	}
}

// Any matches when at least one of preds matches. Nil entries are ignored;
// with no usable predicate the result is nil.
func Any[T any](preds ...Predicate[T]) Predicate[T] {
	live := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			live = append(live, p)
		}
	}
	if len(live) == 0 {
		return nil
	}
	return func(item T) bool {
		for _, p := range live {
			if p(item) {
				return true
			}
		}
		return false
	}
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
