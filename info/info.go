package info

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/SilverMM/enspara/ragged"
)

// ErrShapeMismatch indicates paired arrays whose trajectory counts or
// per-trajectory lengths differ.
var ErrShapeMismatch = errors.New("info: ragged shapes do not match")

// ErrLabelRange indicates a label outside the declared state space.
var ErrLabelRange = errors.New("info: state label out of range")

// ErrBadStateCount indicates numStates < 1.
var ErrBadStateCount = errors.New("info: state count must be >= 1")

// Entropy returns the Shannon entropy, in bits, of the empirical
// marginal distribution over all labels of a (every frame of every
// trajectory pooled together).
//
// Fails with ErrLabelRange on labels outside [0, numStates).
//
// Complexity: O(total frames + numStates).
func Entropy(a *ragged.Array[int], numStates int) (float64, error) {
	counts, err := marginalCounts(a, numStates)
	if err != nil {
		return 0, err
	}

	return entropyFromCounts(counts, float64(a.TotalLen())), nil
}

// JointCounts returns the numStatesA×numStatesB matrix of paired label
// counts: cell (x, y) counts the (trajectory, frame) positions where a
// reads x and b reads y.
//
// a and b must have identical trajectory counts and per-trajectory
// lengths; fails with ErrShapeMismatch otherwise.
//
// Complexity: O(total frames + numStatesA·numStatesB).
func JointCounts(a, b *ragged.Array[int], numStatesA, numStatesB int) (*mat.Dense, error) {
	if numStatesA < 1 || numStatesB < 1 {
		return nil, ErrBadStateCount
	}
	if err := checkShapes(a, b); err != nil {
		return nil, err
	}

	joint := mat.NewDense(numStatesA, numStatesB, nil)
	for i, rowA := range a.Rows() {
		rowB, _ := b.Row(i)
		for k, x := range rowA {
			y := rowB[k]
			if x < 0 || x >= numStatesA || y < 0 || y >= numStatesB {
				return nil, ErrLabelRange
			}
			joint.Set(x, y, joint.At(x, y)+1)
		}
	}

	return joint, nil
}

// MutualInformation returns the mutual information, in bits, between
// the paired label streams a and b, computed from their empirical
// joint distribution at matching (trajectory, frame) positions.
//
// MI(a, a) equals Entropy(a) and MI is non-negative for any valid
// pair, up to floating-point rounding.
func MutualInformation(a, b *ragged.Array[int], numStatesA, numStatesB int) (float64, error) {
	joint, err := JointCounts(a, b, numStatesA, numStatesB)
	if err != nil {
		return 0, err
	}

	total := float64(a.TotalLen())
	if total == 0 {
		return 0, nil
	}

	// Marginals from the joint, so all three share one normalization.
	margA := make([]float64, numStatesA)
	margB := make([]float64, numStatesB)
	for x := 0; x < numStatesA; x++ {
		for y := 0; y < numStatesB; y++ {
			c := joint.At(x, y)
			margA[x] += c
			margB[y] += c
		}
	}

	var mi float64
	for x := 0; x < numStatesA; x++ {
		for y := 0; y < numStatesB; y++ {
			c := joint.At(x, y)
			if c == 0 {
				continue
			}
			pxy := c / total
			px := margA[x] / total
			py := margB[y] / total
			mi += pxy * math.Log2(pxy/(px*py))
		}
	}

	return mi, nil
}

// NormalizedMI returns MI(a, b) / √(H(a)·H(b)), a symmetric similarity
// in [0, 1]; zero when either marginal entropy is zero.
func NormalizedMI(a, b *ragged.Array[int], numStatesA, numStatesB int) (float64, error) {
	mi, err := MutualInformation(a, b, numStatesA, numStatesB)
	if err != nil {
		return 0, err
	}
	ha, err := Entropy(a, numStatesA)
	if err != nil {
		return 0, err
	}
	hb, err := Entropy(b, numStatesB)
	if err != nil {
		return 0, err
	}

	if ha == 0 || hb == 0 {
		return 0, nil
	}

	return mi / math.Sqrt(ha*hb), nil
}

// marginalCounts tallies label occurrences over the whole ensemble.
func marginalCounts(a *ragged.Array[int], numStates int) ([]float64, error) {
	if numStates < 1 {
		return nil, ErrBadStateCount
	}

	counts := make([]float64, numStates)
	for _, row := range a.Rows() {
		for _, label := range row {
			if label < 0 || label >= numStates {
				return nil, ErrLabelRange
			}
			counts[label]++
		}
	}

	return counts, nil
}

// entropyFromCounts evaluates -Σ p·log2 p over non-zero bins.
func entropyFromCounts(counts []float64, total float64) float64 {
	if total == 0 {
		return 0
	}

	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := c / total
		h -= p * math.Log2(p)
	}

	return h
}

// checkShapes verifies matching trajectory counts and lengths.
func checkShapes(a, b *ragged.Array[int]) error {
	if a.Len() != b.Len() {
		return ErrShapeMismatch
	}
	la, lb := a.Lengths(), b.Lengths()
	for i := range la {
		if la[i] != lb[i] {
			return ErrShapeMismatch
		}
	}

	return nil
}
