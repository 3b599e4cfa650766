package tpt

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/SilverMM/enspara/msm"
)

// Committors solves the forward and backward committor probabilities
// between source and sink on the chain (t, pi).
//
// Forward committor q⁺: exactly 0 on every source state, exactly 1 on
// every sink state, and harmonic elsewhere:
//
//	q⁺[i] = Σ_j P[i][j]·q⁺[j]   for i outside both sets.
//
// Backward committor q⁻: exactly 1 on source, 0 on sink, harmonic with
// respect to the time-reversed kernel
// P̃[i][j] = pi[j]·P[j][i]/pi[i].
//
// Both committors come from one dense linear solve each over the
// intermediate states; the boundary values are assigned, not solved,
// so they are exact.
//
// Errors: ErrOverlap for intersecting sets, ErrBadStateSet for empty /
// duplicate / out-of-range sets, ErrDimensionMismatch when pi and t
// disagree, ErrSingular when the intermediate system cannot be solved
// (no connection between the sets).
//
// Complexity: O(numStates³) for the solves.
func Committors(t *msm.TransMatrix, pi []float64, source, sink []int) (forward, backward []float64, err error) {
	n := t.NumStates()
	if len(pi) != n {
		return nil, nil, ErrDimensionMismatch
	}
	srcSet, err := validateStateSet(source, n)
	if err != nil {
		return nil, nil, err
	}
	snkSet, err := validateStateSet(sink, n)
	if err != nil {
		return nil, nil, err
	}
	for s := range srcSet {
		if snkSet[s] {
			return nil, nil, ErrOverlap
		}
	}

	forward, err = solveCommittor(kernelAt(t), n, srcSet, snkSet)
	if err != nil {
		return nil, nil, err
	}

	// Time-reversed kernel; states with pi==0 get a zero row, which is
	// consistent with them carrying no reactive flux.
	reversed := func(i, j int) float64 {
		if pi[i] == 0 {
			return 0
		}
		return pi[j] * t.At(j, i) / pi[i]
	}
	backward, err = solveCommittor(reversed, n, snkSet, srcSet)
	if err != nil {
		return nil, nil, err
	}

	return forward, backward, nil
}

// kernelAt adapts a TransMatrix to the kernel function consumed by
// solveCommittor.
func kernelAt(t *msm.TransMatrix) func(i, j int) float64 {
	return t.At
}

// solveCommittor computes the hitting probability of ones-set before
// zeros-set under kernel p: the vector q with q=0 on zeros, q=1 on
// ones, q[i] = Σ_j p(i,j)·q[j] elsewhere.
func solveCommittor(p func(i, j int) float64, n int, zeros, ones map[int]bool) ([]float64, error) {
	// Intermediate states in ascending order.
	var inter []int
	pos := make(map[int]int, n)
	for i := 0; i < n; i++ {
		if !zeros[i] && !ones[i] {
			pos[i] = len(inter)
			inter = append(inter, i)
		}
	}

	q := make([]float64, n)
	for i := range ones {
		q[i] = 1
	}
	if len(inter) == 0 {
		return q, nil
	}

	// (I − P_II)·x = P_I,ones·1
	m := len(inter)
	a := mat.NewDense(m, m, nil)
	b := mat.NewVecDense(m, nil)
	for r, i := range inter {
		var rhs float64
		for j := 0; j < n; j++ {
			v := p(i, j)
			switch {
			case ones[j]:
				rhs += v
			case !zeros[j]:
				c := pos[j]
				if r == c {
					a.Set(r, c, 1-v)
				} else {
					a.Set(r, c, -v)
				}
			}
		}
		b.SetVec(r, rhs)
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("tpt: %w", ErrSingular)
	}

	for r, i := range inter {
		v := x.AtVec(r)
		// Clamp tiny numerical excursions outside [0,1].
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		q[i] = v
	}

	return q, nil
}

// validateStateSet checks a source/sink set and returns it as a set.
func validateStateSet(states []int, n int) (map[int]bool, error) {
	if len(states) == 0 {
		return nil, ErrBadStateSet
	}
	set := make(map[int]bool, len(states))
	for _, s := range states {
		if s < 0 || s >= n || set[s] {
			return nil, ErrBadStateSet
		}
		set[s] = true
	}

	return set, nil
}
