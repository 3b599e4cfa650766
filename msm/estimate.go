package msm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TransMatrix is a row-stochastic transition probability matrix.
// Invariant: every row sums to 1 within tolerance OR is identically
// zero (state never observed as a transition source). Immutable after
// construction.
type TransMatrix struct {
	n int
	m *mat.Dense
}

// Estimate normalizes a CountMatrix into a TransMatrix:
//
//	P[i][j] = (count[i][j] + prior) / Σ_j (count[i][j] + prior)
//
// With WithReversible (or WithTranspose) the counts are first
// symmetrized as (C + Cᵀ)/2, which guarantees detailed balance of the
// result with respect to its stationary distribution.
//
// A row with zero total count and zero prior stays identically zero;
// it is a defined convention for unobserved source states, not an
// error. Callers should check ZeroRows before spectral analysis.
//
// Fails with ErrEstimation if the prior is negative.
//
// Complexity: O(numStates² ) time and memory (dense result).
func Estimate(c *CountMatrix, opts ...Option) (*TransMatrix, error) {
	o := gatherOptions(opts...)
	if o.prior < 0 {
		return nil, ErrEstimation
	}

	src := c
	if o.reversible {
		src = c.symmetrized()
	}

	n := src.n
	d := src.Dense()
	for i := 0; i < n; i++ {
		row := d.RawRowView(i)
		if o.prior > 0 {
			floats.AddConst(o.prior, row)
		}
		sum := floats.Sum(row)
		if sum > 0 {
			floats.Scale(1/sum, row)
		}
	}

	return &TransMatrix{n: n, m: d}, nil
}

// FromDense wraps a caller-built probability matrix, validating that it
// is square and that every row either sums to 1 within tolerance or is
// identically zero. The input is copied. Fails with
// ErrDimensionMismatch or ErrNotStochastic.
func FromDense(m *mat.Dense) (*TransMatrix, error) {
	r, c := m.Dims()
	if r != c || r < 1 {
		return nil, ErrDimensionMismatch
	}
	for i := 0; i < r; i++ {
		var sum float64
		zero := true
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if v < 0 {
				return nil, ErrNotStochastic
			}
			if v != 0 {
				zero = false
			}
			sum += v
		}
		if !zero && math.Abs(sum-1) > stochasticTol {
			return nil, ErrNotStochastic
		}
	}

	d := mat.NewDense(r, c, nil)
	d.Copy(m)

	return &TransMatrix{n: r, m: d}, nil
}

// NumStates returns the state-space dimension.
func (t *TransMatrix) NumStates() int { return t.n }

// At returns P[i][j]. Indices must be in range; this is the hot-path
// accessor and mirrors the underlying dense matrix's contract.
func (t *TransMatrix) At(i, j int) float64 { return t.m.At(i, j) }

// Row returns a copy of row i.
func (t *TransMatrix) Row(i int) []float64 {
	row := make([]float64, t.n)
	mat.Row(row, i, t.m)

	return row
}

// Dense returns a defensive copy of the full matrix, the plain-array
// export format for external collaborators.
func (t *TransMatrix) Dense() *mat.Dense {
	d := mat.NewDense(t.n, t.n, nil)
	d.Copy(t.m)

	return d
}

// RowSums returns the per-row totals (1 for observed rows, 0 for
// unobserved ones, up to numerical tolerance).
func (t *TransMatrix) RowSums() []float64 {
	sums := make([]float64, t.n)
	for i := 0; i < t.n; i++ {
		sums[i] = floats.Sum(t.m.RawRowView(i))
	}

	return sums
}

// ZeroRows returns the states whose rows are identically zero:
// never observed as a transition source, absorbing/undefined under the
// zero-row convention.
func (t *TransMatrix) ZeroRows() []int {
	var zeros []int
	for i := 0; i < t.n; i++ {
		if floats.Sum(t.m.RawRowView(i)) == 0 {
			zeros = append(zeros, i)
		}
	}

	return zeros
}

// IsReversible reports whether detailed balance
// pi[i]·P[i][j] == pi[j]·P[j][i] holds for all pairs within tol.
func (t *TransMatrix) IsReversible(pi []float64, tol float64) bool {
	if len(pi) != t.n {
		return false
	}
	for i := 0; i < t.n; i++ {
		for j := i + 1; j < t.n; j++ {
			if math.Abs(pi[i]*t.m.At(i, j)-pi[j]*t.m.At(j, i)) > tol {
				return false
			}
		}
	}

	return true
}
