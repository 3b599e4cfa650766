package msm

import (
	"errors"
	"runtime"
)

// ErrLabelRange indicates a state label outside the declared state
// space [0, numStates).
var ErrLabelRange = errors.New("msm: state label out of range")

// ErrBadLag indicates a lag time < 1.
var ErrBadLag = errors.New("msm: lag time must be >= 1")

// ErrEstimation indicates invalid estimator parameters (negative prior).
var ErrEstimation = errors.New("msm: invalid estimation parameter")

// ErrDimensionMismatch indicates operands over different state spaces.
var ErrDimensionMismatch = errors.New("msm: dimension mismatch")

// ErrNotStochastic indicates a matrix whose rows neither sum to 1
// within tolerance nor are identically zero.
var ErrNotStochastic = errors.New("msm: matrix is not row-stochastic")

// ErrBadStateCount indicates numStates < 1.
var ErrBadStateCount = errors.New("msm: state count must be >= 1")

// ErrEigenFailed indicates that the eigen factorization used by
// ImpliedTimescales did not converge.
var ErrEigenFailed = errors.New("msm: eigen decomposition failed")

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultLag is the lag time used when WithLag is not supplied.
	DefaultLag = 1

	// DefaultPrior is the pseudo-count added to every transition pair.
	DefaultPrior = 0.0

	// maxWorkers caps counting parallelism regardless of CPU count;
	// counting is memory-bound and stops scaling well beyond this.
	maxWorkers = 8

	// stochasticTol is the tolerance used when validating row sums.
	stochasticTol = 1e-8
)

// DefaultWorkers returns the default counting parallelism:
// runtime.NumCPU() capped at 8.
func DefaultWorkers() int {
	n := runtime.NumCPU()
	if n > maxWorkers {
		n = maxWorkers
	}
	if n < 1 {
		n = 1
	}

	return n
}

// Option configures Count and Estimate. Setters follow last-writer-wins
// semantics over the documented defaults.
type Option func(*options)

type options struct {
	// counting
	lag       int
	stride    bool
	ignoreNeg bool
	workers   int

	// estimation
	prior      float64
	reversible bool
}

func gatherOptions(opts ...Option) options {
	o := options{
		lag:     DefaultLag,
		workers: DefaultWorkers(),
		prior:   DefaultPrior,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// WithLag sets the lag time: the number of frames between the two
// observations of each counted transition. Count rejects lag < 1 with
// ErrBadLag.
func WithLag(lag int) Option {
	return func(o *options) { o.lag = lag }
}

// WithStride switches counting from the default sliding window to
// non-overlapping windows: observation offsets advance by the lag time
// instead of by one frame. Counts become statistically independent at
// the cost of discarding most of the data at large lags.
func WithStride() Option {
	return func(o *options) { o.stride = true }
}

// WithIgnoreNegative masks negative labels as missing frames instead of
// rejecting them. A masked frame contributes to no transition pair, in
// either position. Non-negative labels outside [0, numStates) are still
// rejected with ErrLabelRange.
//
// This mirrors the common convention of marking trimmed or unassigned
// frames with -1.
func WithIgnoreNegative() Option {
	return func(o *options) { o.ignoreNeg = true }
}

// WithWorkers sets counting parallelism. Values < 1 fall back to the
// default. Results are identical for any worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithPrior adds a pseudo-count to every (i, j) pair before row
// normalization, smoothing estimates from sparse data. Estimate rejects
// negative values with ErrEstimation.
func WithPrior(prior float64) Option {
	return func(o *options) { o.prior = prior }
}

// WithReversible symmetrizes counts as (C + Cᵀ)/2 before normalization,
// guaranteeing detailed balance of the estimated matrix with respect to
// its stationary distribution. This trades directional information for
// a real, non-negative eigenvalue spectrum.
func WithReversible() Option {
	return func(o *options) { o.reversible = true }
}

// WithTranspose is the symmetrization option under its traditional
// name ("transpose" symmetrization); identical to WithReversible.
func WithTranspose() Option {
	return WithReversible()
}
