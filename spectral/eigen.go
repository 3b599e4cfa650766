package spectral

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/SilverMM/enspara/msm"
)

// Eigenspectra computes the top-k eigenvalues of t by magnitude
// together with the corresponding left eigenvectors, the machinery
// behind relaxation-timescale diagnostics.
//
// The return shape is (values, vectors) with values[0] ≈ 1 for a fully
// observed chain and vectors laid out one eigenvector per column,
// column c matching values[c]. The leading eigenvector is normalized
// to sum 1 (it is the stationary distribution); the remaining vectors
// are unit L2 with their largest-magnitude component made positive, so
// results are deterministic across runs.
//
// Eigenvalues of non-reversible chains may be complex; the real parts
// are returned, and reversible (symmetrized) estimation guarantees a
// real spectrum. k is clamped to the state count; k < 1 fails with
// ErrBadInput.
//
// Complexity: O(numStates³).
func Eigenspectra(t *msm.TransMatrix, k int) ([]float64, *mat.Dense, error) {
	n := t.NumStates()
	if k < 1 {
		return nil, nil, ErrBadInput
	}
	if k > n {
		k = n
	}

	// Left eigenvectors of P are right eigenvectors of Pᵀ.
	pT := mat.NewDense(n, n, nil)
	pT.Copy(t.Dense().T())

	var eig mat.Eigen
	if ok := eig.Factorize(pT, mat.EigenRight); !ok {
		return nil, nil, ErrEigenFailed
	}

	vals := eig.Values(nil)
	var cvecs mat.CDense
	eig.VectorsTo(&cvecs)

	// Order by |λ| descending; ties by real part descending, then by
	// original position for full determinism.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ma := math.Hypot(real(vals[order[a]]), imag(vals[order[a]]))
		mb := math.Hypot(real(vals[order[b]]), imag(vals[order[b]]))
		if ma != mb {
			return ma > mb
		}
		return real(vals[order[a]]) > real(vals[order[b]])
	})

	outVals := make([]float64, k)
	outVecs := mat.NewDense(n, k, nil)
	for c := 0; c < k; c++ {
		idx := order[c]
		outVals[c] = real(vals[idx])

		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = real(cvecs.At(i, idx))
		}
		normalizeEigenvector(col, c == 0)
		outVecs.SetCol(c, col)
	}

	return outVals, outVecs, nil
}

// SpectralGap returns λ₁ − |λ₂|, the gap governing the slowest
// relaxation process. Requires at least two states.
func SpectralGap(t *msm.TransMatrix) (float64, error) {
	if t.NumStates() < 2 {
		return 0, ErrBadInput
	}

	vals, _, err := Eigenspectra(t, 2)
	if err != nil {
		return 0, err
	}

	return vals[0] - math.Abs(vals[1]), nil
}

// normalizeEigenvector applies the documented normalization: sum 1 for
// the leading (stationary) vector, unit L2 with positive
// largest-magnitude component otherwise.
func normalizeEigenvector(v []float64, leading bool) {
	if leading {
		if sum := floats.Sum(v); sum != 0 {
			floats.Scale(1/sum, v)
		}
		return
	}

	maxAbs, sign := 0.0, 1.0
	for _, x := range v {
		if a := math.Abs(x); a > maxAbs {
			maxAbs = a
			if x < 0 {
				sign = -1
			} else {
				sign = 1
			}
		}
	}
	norm := floats.Norm(v, 2)
	if norm == 0 {
		return
	}
	floats.Scale(sign/norm, v)
}
