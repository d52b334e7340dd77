// Package ringbuf
// Author: momentics <momentics@gmail.com>
//
// Public surface of hioload-ring: a fixed-capacity, single-owner ring
// buffer with overwrite-oldest eviction, plus a frozen read-only view
// for positional lookups into the live window.
//
// A Buffer never exceeds its capacity: once full, every Push evicts
// exactly one element and hands it back to the caller. Freeze converts
// a Buffer into a View for indexed reads; Thaw converts it back. Both
// are O(1) ownership transfers, never copies.
// See ringbuf.go for the wrapper, internal/ring for the cursor algebra.
package ringbuf
