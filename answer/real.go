package answer

import "math"

// Real locates the boundary of a monotonic predicate over the closed
// interval [lo, hi].
//
// pred must split [lo, hi] into a leading region where it equals pred(lo)
// and a trailing region where it does not. Real returns the low end of the
// final bracketing interval, i.e. a point of the leading region at most one
// interval width away from the boundary. For x*x <= 2 over [0, 2] that is
// √2 from below.
//
// Algorithm:
//  1. lead := pred(lo).
//  2. Repeat Iterations times (or until hi-lo < Epsilon):
//     mid := lo/2 + hi/2; pred(mid) == lead → lo = mid, else hi = mid.
//  3. Return lo.
//
// Running more iterations only ever narrows the same nested sequence of
// intervals, so a finer result never leaves the interval of a coarser one.
//
// Returns:
//   - (lo, nil) without calling pred when lo == hi.
//   - (NaN, ErrInvalidDomain) when lo > hi or a bound is not finite.
//   - (NaN, ErrNilPredicate) when pred is nil.
//   - (NaN, ErrOptionViolation) when an option is invalid.
//
// The split point is computed without hi-lo, so any finite domain is
// accepted; a very wide one just needs more iterations to narrow down
// (about 1100 to reach unit width from [-MaxFloat64, MaxFloat64]).
//
// Complexity: O(Iterations) predicate calls, O(1) memory.
func Real(pred func(float64) bool, lo, hi float64, opts ...Option) (float64, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return math.NaN(), err
	}
	if pred == nil {
		return math.NaN(), ErrNilPredicate
	}
	if err = validateDomain(lo, hi); err != nil {
		return math.NaN(), err
	}
	if lo == hi {
		return lo, nil
	}

	lead := pred(lo)
	for i := 0; i < cfg.Iterations && !cfg.done(lo, hi); i++ {
		mid := lo/2 + hi/2 // hi-lo overflows on [-MaxFloat64, MaxFloat64]
		if pred(mid) == lead {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo, nil
}

// Sqrt returns √n by bisecting x*x <= n over [0, max(1, n)].
//
// The upper bound is widened to 1 so that roots of n < 1 (which exceed n)
// stay inside the domain. A negative or non-finite n yields ErrInvalidDomain.
func Sqrt(n float64, opts ...Option) (float64, error) {
	if n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return math.NaN(), ErrInvalidDomain
	}

	return Real(func(x float64) bool { return x*x <= n }, 0, math.Max(1, n), opts...)
}

// TernaryMax returns the argmax of a unimodal function f over [lo, hi]:
// f strictly increases up to its maximum and strictly decreases after it.
//
// Each step compares f at the two third-points m1 < m2 and discards the
// third that cannot hold the maximum: f(m1) < f(m2) → lo = m1, else hi = m2.
// The midpoint of the final interval is returned.
//
// Errors and options are the same as for Real. A plateau around the
// maximum yields some point of the plateau.
//
// Complexity: O(Iterations) pairs of calls to f, O(1) memory.
func TernaryMax(f func(float64) float64, lo, hi float64, opts ...Option) (float64, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return math.NaN(), err
	}
	if f == nil {
		return math.NaN(), ErrNilPredicate
	}
	if err = validateDomain(lo, hi); err != nil {
		return math.NaN(), err
	}

	for i := 0; i < cfg.Iterations && hi > lo && !cfg.done(lo, hi); i++ {
		third := hi/3 - lo/3
		m1, m2 := lo+third, hi-third
		if f(m1) < f(m2) {
			lo = m1
		} else {
			hi = m2
		}
	}

	return lo/2 + hi/2, nil
}
