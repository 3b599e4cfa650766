package msm

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/SilverMM/enspara/ragged"
)

// ImpliedTimescales computes the slowest implied relaxation timescale
// of the chain at each of the given lag times:
//
//	t₂(L) = −L / ln|λ₂(L)|
//
// where λ₂(L) is the second-largest eigenvalue magnitude of the
// transition matrix estimated at lag L. A plateau of t₂ over L is the
// standard diagnostic for choosing a Markovian lag time.
//
// opts apply to both counting and estimation (e.g. WithReversible,
// WithIgnoreNegative); any WithLag among them is overridden per lag.
//
// The result has one row [lag, t₂] per requested lag. Fails with
// ErrBadLag on any lag < 1 and ErrBadStateCount when numStates < 2
// (a one-state chain has no relaxation process).
func ImpliedTimescales(assigns *ragged.Array[int], numStates int, lags []int, opts ...Option) (*mat.Dense, error) {
	if numStates < 2 {
		return nil, ErrBadStateCount
	}
	if len(lags) == 0 {
		return nil, ErrBadLag
	}

	out := mat.NewDense(len(lags), 2, nil)
	for k, lag := range lags {
		if lag < 1 {
			return nil, ErrBadLag
		}

		counts, err := Count(assigns, numStates, append(opts, WithLag(lag))...)
		if err != nil {
			return nil, err
		}
		probs, err := Estimate(counts, opts...)
		if err != nil {
			return nil, err
		}

		mags, err := eigenvalueMagnitudes(probs)
		if err != nil {
			return nil, err
		}

		out.Set(k, 0, float64(lag))
		out.Set(k, 1, -float64(lag)/math.Log(mags[1]))
	}

	return out, nil
}

// eigenvalueMagnitudes returns |λ| for every eigenvalue of t, sorted
// descending. The leading value is 1 (up to numerical error) for any
// fully observed row-stochastic matrix.
func eigenvalueMagnitudes(t *TransMatrix) ([]float64, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(t.m, mat.EigenNone); !ok {
		return nil, ErrEigenFailed
	}

	vals := eig.Values(nil)
	mags := make([]float64, len(vals))
	for i, v := range vals {
		mags[i] = math.Hypot(real(v), imag(v))
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(mags)))

	return mags, nil
}
