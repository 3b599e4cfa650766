package tpt

import "errors"

// ErrOverlap indicates intersecting source and sink sets.
var ErrOverlap = errors.New("tpt: source and sink sets overlap")

// ErrBadStateSet indicates an empty, duplicated, or out-of-range
// source/sink set.
var ErrBadStateSet = errors.New("tpt: invalid state set")

// ErrDimensionMismatch indicates inputs over different state spaces.
var ErrDimensionMismatch = errors.New("tpt: dimension mismatch")

// ErrSingular indicates that the committor linear system could not be
// solved; typically the chain is not connected between the sets.
var ErrSingular = errors.New("tpt: committor system is singular")

// Defaults for pathway decomposition.
const (
	// DefaultEpsilon is the flux threshold below which edges and
	// remaining networks are treated as exhausted.
	DefaultEpsilon = 1e-12

	// DefaultMaxPathways bounds greedy pathway extraction.
	DefaultMaxPathways = 10
)

// Options configures pathway decomposition. A nil *Options means
// DefaultOptions(); zero or negative fields fall back to defaults.
type Options struct {
	// Epsilon: edges with flux ≤ Epsilon are treated as absent, and
	// extraction stops once no path above it remains.
	Epsilon float64

	// MaxPathways caps the number of extracted pathways.
	MaxPathways int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:     DefaultEpsilon,
		MaxPathways: DefaultMaxPathways,
	}
}

func (o *Options) normalize() Options {
	out := DefaultOptions()
	if o == nil {
		return out
	}
	if o.Epsilon > 0 {
		out.Epsilon = o.Epsilon
	}
	if o.MaxPathways > 0 {
		out.MaxPathways = o.MaxPathways
	}

	return out
}

// Pathway is one extracted reactive pathway: an ordered state sequence
// from a source state to a sink state and the bottleneck flux it
// carries.
type Pathway struct {
	States []int
	Flux   float64
}

// Result bundles a full TPT analysis for one
// (matrix, stationary, source, sink) input. Immutable.
type Result struct {
	// Forward and Backward are the committor vectors, length numStates.
	Forward  []float64
	Backward []float64

	// Net is the net reactive flux network.
	Net *FluxNetwork

	// Total is the net reactive flux out of the source set.
	Total float64

	// Pathways are the dominant pathways in extraction order
	// (non-increasing bottleneck flux).
	Pathways []Pathway
}
