package ingest

import (
	"maps"
	"slices"
)

// Batch is the outcome of one parse call. Every line read lands in exactly
// one of Accepted or Rejected.
type Batch[T any] struct {
	// Accepted holds one record per accepted line, in input order.
	Accepted []T
	// AcceptedLines holds the 0-based line index of each accepted record.
	AcceptedLines []int
	// Rejected maps a 0-based line index to the raw line text.
	Rejected map[int]string
	// Reasons maps the same line indexes to why the line was rejected.
	Reasons map[int]string
}

func newBatch[T any]() *Batch[T] {
	return &Batch[T]{
		Accepted:      []T{},
		AcceptedLines: []int{},
		Rejected:      make(map[int]string),
		Reasons:       make(map[int]string),
	}
}

func (b *Batch[T]) accept(line int, v T) {
	b.Accepted = append(b.Accepted, v)
	b.AcceptedLines = append(b.AcceptedLines, line)
}

func (b *Batch[T]) reject(line int, raw string, reason error) {
	b.Rejected[line] = raw
	b.Reasons[line] = reason.Error()
}

// Lines returns the number of lines the batch was built from.
func (b *Batch[T]) Lines() int {
	return len(b.Accepted) + len(b.Rejected)
}

// RejectedLines returns the rejected line indexes in ascending order.
func (b *Batch[T]) RejectedLines() []int {
	return slices.Sorted(maps.Keys(b.Rejected))
}

// Result is the outcome of building one record: either a value or the
// reason the line was rejected.
type Result[T any] struct {
	value T
	err   error
}

// Accept wraps a successfully built record.
func Accept[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Reject wraps the reason a record could not be built.
func Reject[T any](reason error) Result[T] {
	return Result[T]{err: reason}
}

// OK reports whether the record was built.
func (r Result[T]) OK() bool { return r.err == nil }

// Value returns the record. It is the zero value when !OK().
func (r Result[T]) Value() T { return r.value }

// Err returns the rejection reason, or nil when OK().
func (r Result[T]) Err() error { return r.err }
