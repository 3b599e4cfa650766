package spectral

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/SilverMM/enspara/msm"
)

// Stationary computes the stationary distribution of t: the left
// eigenvector for eigenvalue 1, L1-normalized to sum 1.
//
// The solver is power iteration on the lazy chain (Pᵀ + I)/2, which
// has the same stationary vector as P but no periodic oscillation, so
// the iteration converges for periodic chains too. Convergence is the
// L∞ distance between successive normalized iterates falling below
// opts.Tolerance within opts.MaxIterations steps.
//
// Errors:
//   - ErrZeroMatrix when t has no transitions at all.
//   - ErrDisconnectedChain when the support graph has more than one
//     recurrent communicating class (stationary vector not unique);
//     pre-filter with LargestConnectedSet and Restrict.
//   - ErrConvergence when the iteration budget is exhausted. Retrying
//     with a larger budget is a caller decision, not an internal one.
//
// Complexity: O(iterations · numStates²).
func Stationary(t *msm.TransMatrix, opts *Options) ([]float64, error) {
	o := opts.normalize()
	n := t.NumStates()

	if len(t.ZeroRows()) == n {
		return nil, ErrZeroMatrix
	}
	if len(RecurrentClasses(t)) > 1 {
		return nil, ErrDisconnectedChain
	}

	// Uniform start; every state has support so the iterate cannot be
	// orthogonal to the stationary vector.
	x := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.SetVec(i, 1/float64(n))
	}
	y := mat.NewVecDense(n, nil)
	pT := t.Dense().T()

	for iter := 0; iter < o.MaxIterations; iter++ {
		// y = (Pᵀx + x)/2, then L1-renormalize.
		y.MulVec(pT, x)
		y.AddVec(y, x)
		y.ScaleVec(0.5, y)
		if sum := floats.Sum(y.RawVector().Data); sum > 0 {
			y.ScaleVec(1/sum, y)
		}

		if linfDistance(x.RawVector().Data, y.RawVector().Data) < o.Tolerance {
			pi := make([]float64, n)
			copy(pi, y.RawVector().Data)

			return pi, nil
		}
		x.CopyVec(y)
	}

	return nil, ErrConvergence
}

// linfDistance returns max_i |a[i]-b[i]|.
func linfDistance(a, b []float64) float64 {
	var d float64
	for i := range a {
		if diff := math.Abs(a[i] - b[i]); diff > d {
			d = diff
		}
	}

	return d
}
