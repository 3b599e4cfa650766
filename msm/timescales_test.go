package msm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SilverMM/enspara/msm"
)

// TestImpliedTimescales_TwoStateChain checks the analytic timescale of
// a symmetric two-state chain: with per-step switching probability p,
// λ₂ = 1−2p and t₂(1) = −1/ln(1−2p).
func TestImpliedTimescales_TwoStateChain(t *testing.T) {
	// Deterministic blocks of 10: one switch every 10 frames, p = 0.1.
	var seq []int
	for rep := 0; rep < 200; rep++ {
		for k := 0; k < 10; k++ {
			seq = append(seq, rep%2)
		}
	}
	assigns := mustRagged(t, [][]int{seq})

	ts, err := msm.ImpliedTimescales(assigns, 2, []int{1}, msm.WithReversible())
	require.NoError(t, err)

	r, c := ts.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 1.0, ts.At(0, 0))

	// Block structure gives switching probability ≈ 1/10 per frame.
	want := -1 / math.Log(1-2*0.1)
	assert.InDelta(t, want, ts.At(0, 1), want*0.1)
}

// TestImpliedTimescales_Shape verifies one row per requested lag with
// the lag echoed in column 0.
func TestImpliedTimescales_Shape(t *testing.T) {
	// Blocks of 10 cycling 0→1→2: the symmetrized chain keeps a clear
	// positive second eigenvalue at every tested lag.
	var seq []int
	for rep := 0; rep < 90; rep++ {
		for k := 0; k < 10; k++ {
			seq = append(seq, rep%3)
		}
	}
	assigns := mustRagged(t, [][]int{seq})

	lags := []int{1, 2, 3, 4}
	ts, err := msm.ImpliedTimescales(assigns, 3, lags, msm.WithReversible())
	require.NoError(t, err)

	r, c := ts.Dims()
	require.Equal(t, len(lags), r)
	require.Equal(t, 2, c)
	for k, lag := range lags {
		assert.Equal(t, float64(lag), ts.At(k, 0))
		assert.Greater(t, ts.At(k, 1), 0.0, "timescale at lag %d", lag)
	}
}

// TestImpliedTimescales_Validation covers the parameter failure modes.
func TestImpliedTimescales_Validation(t *testing.T) {
	assigns := mustRagged(t, [][]int{{0, 1, 0, 1}})

	_, err := msm.ImpliedTimescales(assigns, 1, []int{1})
	assert.ErrorIs(t, err, msm.ErrBadStateCount, "one state has no relaxation")

	_, err = msm.ImpliedTimescales(assigns, 2, nil)
	assert.ErrorIs(t, err, msm.ErrBadLag, "no lags requested")

	_, err = msm.ImpliedTimescales(assigns, 2, []int{1, 0})
	assert.ErrorIs(t, err, msm.ErrBadLag)
}
