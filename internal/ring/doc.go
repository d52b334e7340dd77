// File: internal/ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity overwrite-on-full ring buffer for hioload-ring.
// Holds at most cap elements; once full, every push evicts and returns
// the oldest element. Single-owner, not thread-safe. The cursor algebra
// (start/end with an empty sentinel) is centralized here and shared by
// the frozen view in view.go.
package ring
