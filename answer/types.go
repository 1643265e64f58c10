package answer

import (
	"errors"
	"fmt"
	"math"
)

// DefaultIterations is the bisection budget used when no option overrides it.
// 100 halvings shrink an interval by 2^-100, past float64's 53-bit relative
// precision over the starting width. Domains spanning many orders of
// magnitude need WithIterations to reach absolute precision.
const DefaultIterations = 100

// Sentinel errors for search-on-answer execution.
var (
	// ErrInvalidDomain is returned when lo > hi or a bound is not finite.
	ErrInvalidDomain = errors.New("answer: invalid domain")

	// ErrNilPredicate is returned when a nil predicate or function is passed.
	ErrNilPredicate = errors.New("answer: predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("answer: invalid option supplied")
)

// Option configures the real-valued searches via functional arguments.
// An invalid value is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds the precision budget of Real, Sqrt and TernaryMax.
type Options struct {
	// Iterations is the maximum number of interval reductions.
	Iterations int

	// Epsilon, if > 0, stops the search early once hi-lo < Epsilon.
	Epsilon float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultIterations and no epsilon.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Epsilon:    0,
	}
}

// WithIterations sets the iteration budget.
//
//	n > 0:  run at most n reductions
//	n <= 0: invalid option → ErrOptionViolation
func WithIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Iterations must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.Iterations = n
	}
}

// WithEpsilon enables the early stop once the interval is narrower than eps.
// eps == 0 disables it; a negative, NaN or infinite eps is an ErrOptionViolation.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: Epsilon must be finite and non-negative (%v)", ErrOptionViolation, eps)

			return
		}
		o.Epsilon = eps
	}
}

// buildOptions applies opts over DefaultOptions and returns the recorded
// violation, if any.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

// validateDomain rejects inverted and non-finite bounds.
func validateDomain(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return fmt.Errorf("%w: bounds must be finite [%v, %v]", ErrInvalidDomain, lo, hi)
	}
	if lo > hi {
		return fmt.Errorf("%w: lo %v > hi %v", ErrInvalidDomain, lo, hi)
	}

	return nil
}

// done reports whether the epsilon stop applies to the interval [lo, hi].
func (o Options) done(lo, hi float64) bool {
	if o.Epsilon <= 0 {
		return false
	}

	// hi-lo is +Inf on very wide domains, which never compares below Epsilon.
	width := hi - lo

	return !math.IsInf(width, 1) && width < o.Epsilon
}
