package ordsearch

import "cmp"

// Floor returns the index of the largest element of s that is <= target.
// ok is false when every element is greater than target (or s is empty).
// Among equal candidates the last index is returned.
func Floor[S ~[]E, E cmp.Ordered](s S, target E) (idx int, ok bool) {
	idx = UpperBound(s, target) - 1
	if idx < 0 {
		return NotFound, false
	}

	return idx, true
}

// Ceiling returns the index of the smallest element of s that is >= target.
// ok is false when every element is less than target (or s is empty).
// Among equal candidates the first index is returned.
func Ceiling[S ~[]E, E cmp.Ordered](s S, target E) (idx int, ok bool) {
	idx = LowerBound(s, target)
	if idx == len(s) {
		return NotFound, false
	}

	return idx, true
}

// FindPeak returns the index of a local maximum of s: an element not smaller
// than any of its existing neighbours. s need not be sorted. An empty slice
// yields NotFound.
//
// The window [low, high] always contains a peak: low only advances past
// mid when s[mid] < s[mid+1], and high only retreats to mid when
// s[mid] >= s[mid+1].
//
// Complexity: O(log n) comparisons, O(1) memory.
func FindPeak[S ~[]E, E cmp.Ordered](s S) int {
	if len(s) == 0 {
		return NotFound
	}
	low, high := 0, len(s)-1
	for low < high {
		mid := low + (high-low)/2
		if s[mid] < s[mid+1] {
			low = mid + 1
		} else {
			high = mid
		}
	}

	return low
}

// TernarySearch returns the index of an element equal to target in the
// ascending slice s, or NotFound. The window is cut into thirds at every
// step; it performs more comparisons than FindExact and exists for
// comparison and teaching purposes.
//
// Complexity: O(log₃ n) iterations, two comparisons each.
func TernarySearch[S ~[]E, E cmp.Ordered](s S, target E) int {
	low, high := 0, len(s)-1
	for low <= high {
		third := (high - low) / 3
		mid1, mid2 := low+third, high-third

		if s[mid1] == target {
			return mid1
		}
		if s[mid2] == target {
			return mid2
		}

		switch {
		case target < s[mid1]:
			high = mid1 - 1
		case target > s[mid2]:
			low = mid2 + 1
		default:
			low, high = mid1+1, mid2-1
		}
	}

	return NotFound
}

// LongestIncreasing returns the length of the longest strictly increasing
// subsequence of s (s need not be sorted).
//
// tails[k] holds the smallest tail of any increasing subsequence of length
// k+1 seen so far; tails is therefore ascending and each element either
// extends it or replaces the LowerBound position.
//
// Complexity: O(n log n) time, O(n) memory.
func LongestIncreasing[S ~[]E, E cmp.Ordered](s S) int {
	tails := make([]E, 0, len(s))
	for _, v := range s {
		i := LowerBound(tails, v)
		if i == len(tails) {
			tails = append(tails, v)
		} else {
			tails[i] = v
		}
	}

	return len(tails)
}
