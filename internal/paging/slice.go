package paging

import (
	"cmp"
	"context"
	"slices"
)

// Slice is an in-memory Query. Where and OrderBy return new queries and never
// modify the backing slice.
type Slice[T any] struct {
	items []T
	preds []func(T) bool
	order func(a, b T) int
}

// FromSlice wraps items as a Query.
func FromSlice[T any](items []T) *Slice[T] {
	return &Slice[T]{items: items}
}

// Where narrows the query to items matching pred.
func (s *Slice[T]) Where(pred func(T) bool) *Slice[T] {
	next := s.clone()
	next.preds = append(next.preds, pred)
	return next
}

// OrderBy sorts by compare (stable), reversing it when desc is set.
func (s *Slice[T]) OrderBy(compare func(a, b T) int, desc bool) *Slice[T] {
	next := s.clone()
	if desc {
		next.order = func(a, b T) int { return compare(b, a) }
	} else {
		next.order = compare
	}
	return next
}

// SortBy orders q by a key selector.
func SortBy[T any, K cmp.Ordered](q *Slice[T], key func(T) K, desc bool) *Slice[T] {
	return q.OrderBy(func(a, b T) int { return cmp.Compare(key(a), key(b)) }, desc)
}

func (s *Slice[T]) Count(_ context.Context) (int, error) {
	n := 0
	for _, it := range s.items {
		if s.match(it) {
			n++
		}
	}
	return n, nil
}

func (s *Slice[T]) Fetch(_ context.Context, offset, limit int) ([]T, error) {
	all := s.eval()
	if offset >= len(all) {
		return []T{}, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (s *Slice[T]) clone() *Slice[T] {
	return &Slice[T]{
		items: s.items,
		preds: slices.Clone(s.preds),
		order: s.order,
	}
}

// eval applies filters and ordering to a copy of the items.
func (s *Slice[T]) eval() []T {
	out := make([]T, 0, len(s.items))
	for _, it := range s.items {
		if s.match(it) {
			out = append(out, it)
		}
	}
	if s.order != nil {
		slices.SortStableFunc(out, s.order)
	}
	return out
}

func (s *Slice[T]) match(it T) bool {
	for _, p := range s.preds {
		if !p(it) {
			return false
		}
	}
	return true
}
