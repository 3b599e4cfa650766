package spectral

import "errors"

// ErrConvergence indicates that power iteration exhausted its
// iteration budget before reaching the requested tolerance.
var ErrConvergence = errors.New("spectral: power iteration did not converge")

// ErrDisconnectedChain indicates a transition graph with more than one
// recurrent communicating class; the stationary distribution is not
// unique. Pre-filter with LargestConnectedSet / Restrict.
var ErrDisconnectedChain = errors.New("spectral: multiple recurrent classes")

// ErrZeroMatrix indicates a matrix with no non-zero entries at all.
var ErrZeroMatrix = errors.New("spectral: matrix has no transitions")

// ErrBadInput indicates invalid solver parameters or state sets.
var ErrBadInput = errors.New("spectral: invalid input")

// ErrEigenFailed indicates that the dense eigen factorization failed.
var ErrEigenFailed = errors.New("spectral: eigen decomposition failed")

// Defaults for the iterative solver; documented here as the single
// source of truth and applied by DefaultOptions.
const (
	// DefaultMaxIterations bounds power iteration.
	DefaultMaxIterations = 1000

	// DefaultTolerance is the L∞ convergence threshold between
	// successive iterates.
	DefaultTolerance = 1e-10
)

// Options configures the iterative solvers. A nil *Options means
// DefaultOptions(); a zero or negative field falls back to its default.
type Options struct {
	// MaxIterations is the hard iteration budget; exceeding it yields
	// ErrConvergence. There is no automatic retry: relaxing the budget
	// is a caller decision.
	MaxIterations int

	// Tolerance is the convergence threshold on the L∞ distance
	// between successive normalized iterates.
	Tolerance float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// normalize resolves nil/partial options against the defaults.
func (o *Options) normalize() Options {
	out := DefaultOptions()
	if o == nil {
		return out
	}
	if o.MaxIterations > 0 {
		out.MaxIterations = o.MaxIterations
	}
	if o.Tolerance > 0 {
		out.Tolerance = o.Tolerance
	}

	return out
}
