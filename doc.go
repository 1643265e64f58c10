// Package lvsearch is a small toolbox of halving-interval searches: the
// binary-search family over sorted slices and "search on the answer" over
// monotonic predicates.
//
// 🚀 What is inside?
//
//	ordsearch/ — FindExact, LowerBound, UpperBound, SearchRotated and their
//	             comparator (...Func) twins, plus EqualRange, Count, Floor,
//	             Ceiling, FindPeak, TernarySearch and LongestIncreasing.
//	answer/    — Real (bisection over ℝ with a fixed iteration budget),
//	             FirstTrue / LastTrue over integer ranges, Sqrt, TernaryMax.
//
// ✨ Why?
//
//   - Generic over cmp.Ordered, allocation-free, O(log n).
//   - Pure functions: no global state, safe for concurrent readers.
//   - "Not found" is a sentinel value (ordsearch.NotFound), not an error;
//     errors are reserved for invalid domains and options.
//
// Quick example:
//
//	s := []int{1, 2, 2, 2, 3, 4, 5}
//	ordsearch.LowerBound(s, 2) // 1
//	ordsearch.UpperBound(s, 2) // 4
//
//	root, _ := answer.Real(func(x float64) bool { return x*x <= 2 }, 0, 2)
//
//	go get github.com/katalvlaran/lvsearch
package lvsearch
