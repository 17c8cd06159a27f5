// Package paging materialises one page of an ordered, filtered, countable
// query together with its navigation metadata.
package paging

import (
	"context"
	"fmt"
)

const (
	// AllItems is the page size sentinel meaning "everything on one page".
	AllItems = -1
	// DefaultPageSize is used when the caller gives no usable page size.
	DefaultPageSize = 10
)

// Query is a lazily evaluated, already filtered and ordered sequence.
// Count and Fetch must apply the same filter; Fetch must keep the order.
type Query[T any] interface {
	Count(ctx context.Context) (int, error)
	Fetch(ctx context.Context, offset, limit int) ([]T, error)
}

// Page is one materialised slice of a query.
type Page[T any] struct {
	Items       []T  `json:"items"`
	PageIndex   int  `json:"page_index"`
	PageSize    int  `json:"page_size"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// Materialize counts q, then fetches the requested page. A nil or
// non-positive pageIndex means the first page; an index past the end yields
// an empty page rather than an error. pageSize AllItems returns every item on
// a single page.
//
// The count and the fetch are two separate reads; under concurrent writes to
// the backing store they may disagree.
func Materialize[T any](ctx context.Context, q Query[T], pageIndex *int, pageSize int) (*Page[T], error) {
	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}

	switch {
	case pageSize == AllItems:
		pageSize = total
	case pageSize <= 0:
		pageSize = DefaultPageSize
	}

	index := 1
	if pageIndex != nil && *pageIndex > 1 {
		index = *pageIndex
	}

	pages := totalPages(total, pageSize)
	page := &Page[T]{
		Items:       []T{},
		PageIndex:   index,
		PageSize:    pageSize,
		TotalCount:  total,
		TotalPages:  pages,
		HasPrevious: index > 1,
		// index < pages is index*pageSize < total without the overflow.
		HasNext: index < pages,
	}
	if index > pages {
		return page, nil
	}

	offset := (index - 1) * pageSize
	items, err := q.Fetch(ctx, offset, pageSize)
	if err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", index, err)
	}
	if items != nil {
		page.Items = items
	}

	return page, nil
}

func totalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
