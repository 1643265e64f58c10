package ordsearch

import "cmp"

// SearchRotated returns the index of target in s, or NotFound.
//
// s must be a strictly ascending slice rotated at an unknown pivot, e.g.
// [4 5 6 7 0 1 2]. An unrotated ascending slice is the pivot-0 case.
//
// At every step at least one of [low, mid] and [mid, high] is ascending.
// If s[low] <= s[mid] the left half is ascending and target lies in it
// exactly when s[low] <= target < s[mid]; otherwise the right half is
// ascending and target lies in it exactly when s[mid] < target <= s[high].
// The window then shrinks to the half that may hold target.
//
// With duplicates the ascending-half test can pick the wrong side, so the
// result is unspecified: any matching index may be returned, or NotFound
// even though target is present. Use ValidateRotated to check input in tests.
//
// Complexity: O(log n) comparisons, O(1) memory.
func SearchRotated[S ~[]E, E cmp.Ordered](s S, target E) int {
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		if s[mid] == target {
			return mid
		}

		if s[low] <= s[mid] {
			// left half ascending
			if s[low] <= target && target < s[mid] {
				high = mid - 1
			} else {
				low = mid + 1
			}
		} else {
			// right half ascending
			if s[mid] < target && target <= s[high] {
				low = mid + 1
			} else {
				high = mid - 1
			}
		}
	}

	return NotFound
}
