// Package answer implements "binary search on the answer": instead of
// locating an element in a slice, it bisects a domain of candidate answers
// guided by a monotonic predicate.
//
// What
//
//   - Real       — boundary of a monotonic predicate over [lo, hi] ⊂ ℝ.
//   - FirstTrue  — smallest integer x in [lo, hi) with pred(x) (false…true).
//   - LastTrue   — largest integer x in [lo, hi) with pred(x) (true…false).
//   - Sqrt       — √n, the textbook example of Real.
//   - TernaryMax — argmax of a unimodal function over [lo, hi].
//
// Precision
//
//	The real-valued searches run a fixed number of iterations (100 by
//	default, more than float64's 53-bit precision relative to the starting
//	width). A fixed count keeps results reproducible across platforms
//	and can never loop forever on rounding. WithEpsilon adds an optional
//	early stop once the interval is narrower than eps.
//
// Monotonicity
//
//	The caller guarantees that pred splits the domain into a prefix where it
//	returns one value and a suffix where it returns the other. Real reads the
//	orientation from pred(lo), so both true…false and false…true predicates
//	are accepted. A non-monotonic predicate yields some point where pred
//	changes value, without any guarantee about which one.
//
// Options
//
//   - DefaultOptions():   100 iterations, no epsilon.
//   - WithIterations(n):  n > 0 bisection steps.
//   - WithEpsilon(eps):   stop once hi-lo < eps (eps ≥ 0, 0 disables).
//
// Errors
//
//   - ErrInvalidDomain   if lo > hi or a bound is NaN or ±Inf.
//   - ErrNilPredicate    if the predicate (or function) is nil.
//   - ErrOptionViolation if an Option received an invalid value.
//
// Usage
//
//	root, err := answer.Real(func(x float64) bool { return x*x <= 2 }, 0, 2,
//		answer.WithIterations(50))
//
//	// smallest capacity that ships all packages within 5 days
//	c := answer.FirstTrue(1, 1<<20, func(c int) bool { return days(c) <= 5 })
package answer
