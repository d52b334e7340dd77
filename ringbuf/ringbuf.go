// File: ringbuf/ringbuf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thin public wrappers over internal/ring, asserting api compliance.
// Projection peeks live here as package functions: Go methods cannot
// introduce a second type parameter for the projection result.

package ringbuf

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/ring"
)

// Ensure compile-time interface compliance.
var (
	_ api.Ring[any]     = (*Buffer[any])(nil)
	_ api.RingView[any] = (*View[any])(nil)
)

// Buffer is a fixed-capacity overwrite ring. Not safe for concurrent
// use; a Buffer has exactly one owner at a time.
type Buffer[T any] struct {
	*ring.Buffer[T]
}

// View is a read-only frozen view over a Buffer. Obtain one with
// Freeze; reclaim the buffer with Thaw.
type View[T any] struct {
	*ring.View[T]
}

// New creates a buffer holding at most capacity elements.
// Panics when capacity <= 0.
func New[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{Buffer: ring.New[T](capacity)}
}

// Freeze consumes buf, producing a read-only view. The caller must not
// use buf again until it is reclaimed via Thaw.
func Freeze[T any](buf *Buffer[T]) *View[T] {
	return &View[T]{View: ring.Freeze(buf.Buffer)}
}

// Thaw consumes the view, returning the underlying buffer for further
// mutation. Pointers previously returned by At must not be used after
// Thaw. The view panics on any later use.
func (v *View[T]) Thaw() *Buffer[T] {
	return &Buffer[T]{Buffer: v.View.Thaw()}
}

// PeekFirst applies fn to the oldest live element and returns the
// result; ok is false when the buffer is empty. Does not mutate.
func PeekFirst[A, B any](buf *Buffer[A], fn func(A) B) (B, bool) {
	var zero B
	val, ok := buf.First()
	if !ok {
		return zero, false
	}
	return fn(val), true
}

// PeekLast applies fn to the newest live element and returns the
// result; ok is false when the buffer is empty. Does not mutate.
func PeekLast[A, B any](buf *Buffer[A], fn func(A) B) (B, bool) {
	var zero B
	val, ok := buf.Last()
	if !ok {
		return zero, false
	}
	return fn(val), true
}
