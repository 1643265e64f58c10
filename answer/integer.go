package answer

// FirstTrue returns the smallest x in [lo, hi) for which pred(x) is true,
// or hi if there is none.
//
// pred must be monotonic false…true over [lo, hi): once true, it stays true.
// An inverted range (hi < lo) is treated as the empty range [lo, lo) and
// yields lo. pred is never called outside [lo, hi), even when hi-lo
// exceeds math.MaxInt.
//
// This is sort.Search generalised to an arbitrary integer range, the
// classic "minimise the answer" form (smallest capacity, shortest time…).
//
// Complexity: O(log(hi-lo)) predicate calls, O(1) memory.
func FirstTrue(lo, hi int, pred func(int) bool) int {
	if hi < lo {
		hi = lo
	}
	for lo < hi {
		mid := lo + int(uint(hi-lo)>>1) // hi-lo may wrap; as uint it is exact
		if pred(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}

// LastTrue returns the largest x in [lo, hi) for which pred(x) is true,
// or lo-1 if there is none.
//
// pred must be monotonic true…false over [lo, hi), the "maximise the
// answer" form. An inverted range is treated as empty and yields lo-1
// (which wraps when lo is math.MinInt).
//
// Complexity: O(log(hi-lo)) predicate calls, O(1) memory.
func LastTrue(lo, hi int, pred func(int) bool) int {
	return FirstTrue(lo, hi, func(x int) bool { return !pred(x) }) - 1
}
