// Package ordsearch implements the binary-search family over sorted slices:
// exact lookup, lower/upper bounds and lookup in a rotated ascending slice.
//
// 🚀 What
//
//   - FindExact     — index of an element equal to target, or NotFound.
//   - LowerBound    — first index i with s[i] ≥ target (len(s) if none).
//   - UpperBound    — first index i with s[i] > target (len(s) if none).
//   - SearchRotated — exact lookup in an ascending slice rotated at an
//     unknown pivot, all elements distinct.
//   - EqualRange / Count / Contains / Floor / Ceiling — thin compositions
//     of the two bounds.
//   - FindPeak, TernarySearch, LongestIncreasing — classic applications of
//     the same halving-interval technique.
//
// FindExact, LowerBound and UpperBound have ...Func twins taking a
// three-way comparator (negative, zero, positive) for element types that are
// not cmp.Ordered, in the same shape as slices.BinarySearchFunc. The other
// searches accept cmp.Ordered elements only.
//
// ✨ Preconditions
//
//	FindExact, LowerBound, UpperBound and their compositions require s to be
//	sorted ascending (non-decreasing) under the same order used to compare.
//	SearchRotated requires a rotation of a strictly ascending slice.
//	Violating either precondition yields an unspecified index, never a panic.
//	ValidateSorted and ValidateRotated check the preconditions in O(n) and are
//	meant for tests and debug builds only; the searches never call them.
//
// Midpoints are always computed as low + (high-low)/2 so that low+high can
// not overflow on very long slices.
//
// Complexity (n = len(s))
//
//   - Time:   O(log n) comparisons for every search; O(n log n) for
//     LongestIncreasing.
//   - Memory: O(1) auxiliary; O(n) for LongestIncreasing.
//
// Concurrency
//
//	All functions are pure. Any number of goroutines may search the same
//	slice as long as nobody mutates it concurrently.
//
// Usage
//
//	s := []int{1, 2, 2, 2, 3, 4, 5}
//	i := ordsearch.FindExact(s, 3)      // 4
//	lo := ordsearch.LowerBound(s, 2)    // 1
//	hi := ordsearch.UpperBound(s, 2)    // 4
//	n := ordsearch.Count(s, 2)          // 3
//
//	r := []int{4, 5, 6, 7, 0, 1, 2}
//	j := ordsearch.SearchRotated(r, 0)  // 4
package ordsearch
