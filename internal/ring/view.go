// File: internal/ring/view.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// View is a read-only frozen view over a Buffer. Freeze and Thaw
// transfer exclusive ownership; Go has no move semantics, so the
// consumed-handle pattern stands in: after Thaw the view is dead and
// any use of it panics, and the caller must not touch the source
// *Buffer while a view obtained from it is live.

package ring

// View provides positional read access into a buffer's live window
// without copying. Index 0 is the oldest live element.
type View[T any] struct {
	buf *Buffer[T]
}

// Freeze wraps buf in a read-only view. O(1), no element copying.
// The caller hands over ownership: buf must not be used again until
// reclaimed via Thaw.
func Freeze[T any](buf *Buffer[T]) *View[T] {
	return &View[T]{buf: buf}
}

// At returns a pointer to the idx-th oldest live element, or false
// when idx is outside the live window. Returned pointers must not be
// used after Thaw.
func (v *View[T]) At(idx int) (*T, bool) {
	return v.live().at(idx)
}

// Len returns the number of live elements in the underlying buffer.
func (v *View[T]) Len() int { return v.live().Len() }

// Cap returns the underlying buffer's capacity.
func (v *View[T]) Cap() int { return v.live().Cap() }

// Thaw consumes the view, returning the underlying buffer for further
// mutation. The view must not be used afterwards.
func (v *View[T]) Thaw() *Buffer[T] {
	buf := v.live()
	v.buf = nil
	return buf
}

func (v *View[T]) live() *Buffer[T] {
	if v.buf == nil {
		panic("ring: view used after thaw")
	}
	return v.buf
}
