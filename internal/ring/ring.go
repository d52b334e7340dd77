// File: internal/ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer is a fixed-capacity circular buffer with overwrite-oldest
// eviction. start/end are dual-interpretation cursors: absolute slot
// indices while the buffer has not wrapped, modular once it has.
// start==0 && end==0 is the empty sentinel; push never produces a
// zero-length non-empty window, so the sentinel is unambiguous.

package ring

// Buffer is a fixed-capacity ring buffer. The backing slice is
// pre-reserved to capacity at construction and grows by append only
// during the initial fill, so slots are never zero-initialized for
// element types with heavy zero values.
type Buffer[T any] struct {
	storage []T
	cap     int
	start   int
	end     int
}

// New allocates a buffer holding at most capacity elements.
// Panics when capacity <= 0: a zero-capacity ring is a programming
// error, not a recoverable condition.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	return &Buffer[T]{
		storage: make([]T, 0, capacity),
		cap:     capacity,
	}
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int { return b.cap }

// empty reports the sentinel state. end==0 with a non-zero start never
// occurs: the wrapped regime keeps end in [1, cap].
func (b *Buffer[T]) empty() bool { return b.start == 0 && b.end == 0 }

// slot maps a logical index (0 = oldest) to a physical storage slot.
func (b *Buffer[T]) slot(idx int) int { return (b.start + idx) % b.cap }

// Len returns the number of live elements.
//
// The no-wrap branch requires strict start < end: the full wrapped
// state has start == end > 0 and must fall through to the wrap
// formula, which yields cap there.
func (b *Buffer[T]) Len() int {
	switch {
	case b.empty():
		return 0
	case b.start < b.end:
		return b.end - b.start
	default:
		return len(b.storage) - b.start + b.end
	}
}

// First returns the oldest live element.
func (b *Buffer[T]) First() (T, bool) {
	var zero T
	if b.empty() {
		return zero, false
	}
	return b.storage[b.start], true
}

// Last returns the newest live element.
func (b *Buffer[T]) Last() (T, bool) {
	var zero T
	if b.empty() {
		return zero, false
	}
	return b.storage[b.end-1], true
}

// Push inserts val as the newest element. When the buffer was already
// full it overwrites the oldest slot and returns the evicted element
// with ok=true; otherwise ok is false.
func (b *Buffer[T]) Push(val T) (evicted T, ok bool) {
	switch {
	case b.start == 0:
		if b.end >= b.cap {
			// Full and unwrapped: slot 0 holds the oldest element.
			// Overwriting it begins the wrapped regime. start is
			// taken modulo cap so a capacity-1 buffer stays in this
			// regime forever instead of addressing past slot 0.
			evicted = b.storage[0]
			b.storage[0] = val
			b.start, b.end = 1%b.cap, 1
			return evicted, true
		}
		if len(b.storage) < b.cap {
			b.storage = append(b.storage, val)
		} else {
			b.storage[b.end] = val
		}
		b.end++
		return evicted, false
	case b.start == b.end:
		// Full and wrapped: both cursors sit on the oldest slot.
		// They advance together, except at the seam where start
		// re-anchors at 0 with end parked at cap.
		evicted = b.storage[b.end]
		b.storage[b.end] = val
		b.end++
		if b.end < b.cap {
			b.start = b.end
		} else {
			b.start = 0
		}
		return evicted, true
	default:
		b.storage[b.end] = val
		b.end++
		return evicted, false
	}
}

// at returns a pointer to the idx-th oldest live element, or false
// when idx lies outside the live window. Exposed publicly only through
// the frozen view.
func (b *Buffer[T]) at(idx int) (*T, bool) {
	if idx < 0 || idx >= b.cap {
		return nil, false
	}
	if idx >= b.Len() {
		return nil, false
	}
	return &b.storage[b.slot(idx)], true
}
