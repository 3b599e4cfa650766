package msm

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// pair is the composite key of one sparse entry.
type pair struct {
	i, j int
}

// CountMatrix is a sparse numStates×numStates matrix of observed i→j
// transition counts, stored as a dictionary of keys with implicit zeros
// elsewhere. Construction is append-only via Add/Merge; treat it as
// immutable once counting has finished.
type CountMatrix struct {
	n    int
	data map[pair]float64
}

// Entry is one non-zero cell in deterministic export order.
type Entry struct {
	Row, Col int
	Count    float64
}

// NewCountMatrix returns an empty count matrix over numStates dense
// integer states. Returns ErrBadStateCount if numStates < 1.
func NewCountMatrix(numStates int) (*CountMatrix, error) {
	if numStates < 1 {
		return nil, ErrBadStateCount
	}

	return &CountMatrix{n: numStates, data: make(map[pair]float64)}, nil
}

// NumStates returns the state-space dimension.
func (c *CountMatrix) NumStates() int { return c.n }

// At returns the count for (i, j), zero for unobserved pairs.
// Out-of-range indices read as zero; counting validates labels before
// any Add, so no stored key can be out of range.
func (c *CountMatrix) At(i, j int) float64 {
	return c.data[pair{i, j}]
}

// Add increments the (i, j) count by v. Construction-time only.
func (c *CountMatrix) Add(i, j int, v float64) {
	c.data[pair{i, j}] += v
}

// Total returns the sum of all counts. For a sliding-window count at
// lag L this equals the sum over trajectories of max(0, length−L).
func (c *CountMatrix) Total() float64 {
	var t float64
	for _, v := range c.data {
		t += v
	}

	return t
}

// NonZero returns the number of stored (non-zero) cells.
func (c *CountMatrix) NonZero() int { return len(c.data) }

// Merge adds every count of other into c. Merging is elementwise
// addition: associative, commutative, order-independent, which is what
// makes parallel partial counting deterministic. Returns
// ErrDimensionMismatch if the state spaces differ.
func (c *CountMatrix) Merge(other *CountMatrix) error {
	if other.n != c.n {
		return ErrDimensionMismatch
	}
	for k, v := range other.data {
		c.data[k] += v
	}

	return nil
}

// Pairs returns all non-zero entries sorted by (Row, Col), the
// deterministic export order used by serializing collaborators.
func (c *CountMatrix) Pairs() []Entry {
	entries := make([]Entry, 0, len(c.data))
	for k, v := range c.data {
		entries = append(entries, Entry{Row: k.i, Col: k.j, Count: v})
	}
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].Row != entries[b].Row {
			return entries[a].Row < entries[b].Row
		}
		return entries[a].Col < entries[b].Col
	})

	return entries
}

// Dense materializes the counts as a dense matrix.
//
// Complexity: O(numStates² + non-zeros).
func (c *CountMatrix) Dense() *mat.Dense {
	d := mat.NewDense(c.n, c.n, nil)
	for k, v := range c.data {
		d.Set(k.i, k.j, v)
	}

	return d
}

// symmetrized returns (C + Cᵀ)/2 as a new sparse matrix.
func (c *CountMatrix) symmetrized() *CountMatrix {
	s := &CountMatrix{n: c.n, data: make(map[pair]float64, len(c.data))}
	for k, v := range c.data {
		s.data[k] += v / 2
		s.data[pair{k.j, k.i}] += v / 2
	}

	return s
}
