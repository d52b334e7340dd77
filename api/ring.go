// Package api
// Author: momentics@gmail.com
//
// Contracts for the fixed-capacity overwrite ring and its frozen view.

package api

// Ring is a fixed-capacity buffer that overwrites its oldest element
// once full. Not safe for concurrent use; a Ring has exactly one owner.
type Ring[T any] interface {
	// Push inserts val as the newest element. When the ring was already
	// full it returns the evicted oldest element and true.
	Push(val T) (evicted T, ok bool)
	// Len returns the current number of live elements.
	Len() int
	// Cap returns the fixed capacity set at construction.
	Cap() int
	// First returns the oldest live element; ok is false when empty.
	First() (T, bool)
	// Last returns the newest live element; ok is false when empty.
	Last() (T, bool)
}

// RingView is a read-only positional view over a ring's live window.
// Index 0 is the oldest live element.
type RingView[T any] interface {
	// At returns a pointer to the idx-th oldest live element, or
	// false when idx lies outside the live window.
	At(idx int) (*T, bool)
	// Len returns the number of live elements in the underlying ring.
	Len() int
	// Cap returns the underlying ring's capacity.
	Cap() int
}
