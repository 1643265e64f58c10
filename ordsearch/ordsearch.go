package ordsearch

import "cmp"

// FindExact returns the index of an element of s equal to target, or NotFound.
//
// s must be sorted ascending. If target occurs more than once, any of its
// indices may be returned.
//
// Algorithm:
//  1. Keep the inclusive window [low, high] = [0, len(s)-1].
//  2. Probe mid = low + (high-low)/2.
//  3. s[mid] == target → done; s[mid] < target → drop the left half;
//     otherwise drop the right half.
//  4. low > high → NotFound.
//
// Complexity: O(log n) comparisons, O(1) memory.
func FindExact[S ~[]E, E cmp.Ordered](s S, target E) int {
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		switch {
		case s[mid] == target:
			return mid
		case s[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return NotFound
}

// FindExactFunc is FindExact with a custom three-way comparator.
// compare(e, target) must be negative when e orders before target,
// zero on a match and positive otherwise.
func FindExactFunc[S ~[]E, E, T any](s S, target T, compare func(E, T) int) int {
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		c := compare(s[mid], target)
		switch {
		case c == 0:
			return mid
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return NotFound
}

// LowerBound returns the smallest index i such that s[i] >= target,
// or len(s) when every element is less than target.
//
// The result is always a valid insertion point: inserting target at i
// keeps s sorted. s must be sorted ascending.
//
// Complexity: O(log n) comparisons, O(1) memory.
func LowerBound[S ~[]E, E cmp.Ordered](s S, target E) int {
	low, high := 0, len(s) // half-open [low, high)
	for low < high {
		mid := low + (high-low)/2
		if s[mid] < target {
			low = mid + 1
		} else {
			high = mid
		}
	}

	return low
}

// LowerBoundFunc is LowerBound with a custom three-way comparator.
func LowerBoundFunc[S ~[]E, E, T any](s S, target T, compare func(E, T) int) int {
	low, high := 0, len(s)
	for low < high {
		mid := low + (high-low)/2
		if compare(s[mid], target) < 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}

	return low
}

// UpperBound returns the smallest index i such that s[i] > target,
// or len(s) when no element is greater than target.
//
// UpperBound(s, t) - LowerBound(s, t) is the number of elements equal to t.
// s must be sorted ascending.
//
// Complexity: O(log n) comparisons, O(1) memory.
func UpperBound[S ~[]E, E cmp.Ordered](s S, target E) int {
	low, high := 0, len(s)
	for low < high {
		mid := low + (high-low)/2
		if s[mid] <= target {
			low = mid + 1
		} else {
			high = mid
		}
	}

	return low
}

// UpperBoundFunc is UpperBound with a custom three-way comparator.
func UpperBoundFunc[S ~[]E, E, T any](s S, target T, compare func(E, T) int) int {
	low, high := 0, len(s)
	for low < high {
		mid := low + (high-low)/2
		if compare(s[mid], target) <= 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}

	return low
}

// EqualRange returns the half-open index range [lo, hi) holding every
// element equal to target. lo == hi when target is absent, and lo is then
// its insertion point.
func EqualRange[S ~[]E, E cmp.Ordered](s S, target E) (lo, hi int) {
	return LowerBound(s, target), UpperBound(s, target)
}

// Count returns the number of elements of s equal to target.
func Count[S ~[]E, E cmp.Ordered](s S, target E) int {
	lo, hi := EqualRange(s, target)

	return hi - lo
}

// Contains reports whether target occurs in s.
func Contains[S ~[]E, E cmp.Ordered](s S, target E) bool {
	return FindExact(s, target) != NotFound
}
