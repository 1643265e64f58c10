package ordsearch

import "errors"

// NotFound is returned by the exact searches when no element equals target.
// It is a normal outcome, not an error.
const NotFound = -1

// Sentinel errors reported by the debug validators.
var (
	// ErrUnsorted indicates that a slice is not in non-decreasing order.
	ErrUnsorted = errors.New("ordsearch: slice is not sorted ascending")

	// ErrDuplicate indicates a repeated value where distinct elements are required.
	ErrDuplicate = errors.New("ordsearch: duplicate element")

	// ErrNotRotated indicates that a slice is not a rotation of an ascending slice.
	ErrNotRotated = errors.New("ordsearch: slice is not a rotated ascending slice")
)
