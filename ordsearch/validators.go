package ordsearch

import (
	"cmp"
	"fmt"
)

// ValidateSorted checks the precondition of FindExact, LowerBound and
// UpperBound: s is non-decreasing. It returns a wrapped ErrUnsorted naming
// the first index that breaks the order.
//
// Complexity: O(n). Intended for tests and debug assertions only.
func ValidateSorted[S ~[]E, E cmp.Ordered](s S) error {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return fmt.Errorf("%w: s[%d]=%v < s[%d]=%v", ErrUnsorted, i, s[i], i-1, s[i-1])
		}
	}

	return nil
}

// ValidateRotated checks the precondition of SearchRotated: s is a rotation
// of a strictly ascending slice.
//
// Errors:
//   - ErrDuplicate  if two elements are equal.
//   - ErrNotRotated if s has more than one descent, or its single descent
//     does not wrap around (s[len-1] must be less than s[0]).
//
// Complexity: O(n). Intended for tests and debug assertions only.
func ValidateRotated[S ~[]E, E cmp.Ordered](s S) error {
	n := len(s)
	descents := 0
	for i := 1; i < n; i++ {
		switch {
		case s[i] == s[i-1]:
			return fmt.Errorf("%w: s[%d]=s[%d]=%v", ErrDuplicate, i-1, i, s[i])
		case s[i] < s[i-1]:
			descents++
			if descents > 1 {
				return fmt.Errorf("%w: second descent at index %d", ErrNotRotated, i)
			}
		}
	}
	if descents == 0 || n < 2 {
		return nil
	}

	// Exactly one descent: the tail must wrap below the head.
	switch {
	case s[n-1] == s[0]:
		return fmt.Errorf("%w: s[0]=s[%d]=%v", ErrDuplicate, n-1, s[0])
	case s[n-1] > s[0]:
		return fmt.Errorf("%w: s[%d]=%v > s[0]=%v", ErrNotRotated, n-1, s[n-1], s[0])
	}

	return nil
}
