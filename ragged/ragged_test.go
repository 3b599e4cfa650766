package ragged_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SilverMM/enspara/ragged"
)

// TestNew_EmptyCollection verifies that an empty sequence list is
// rejected with ErrShape.
func TestNew_EmptyCollection(t *testing.T) {
	_, err := ragged.New[int](nil)
	assert.ErrorIs(t, err, ragged.ErrShape, "empty collection must error")

	_, err = ragged.New([][]int{})
	assert.ErrorIs(t, err, ragged.ErrShape, "empty collection must error")
}

// TestNew_EmptyTrajectoryAllowed verifies that individual zero-length
// trajectories are legal and occupy zero space.
func TestNew_EmptyTrajectoryAllowed(t *testing.T) {
	a, err := ragged.New([][]int{{1, 2}, {}, {3}})
	require.NoError(t, err)

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []int{2, 0, 1}, a.Lengths())
	assert.Equal(t, 3, a.TotalLen())

	row, err := a.Row(1)
	require.NoError(t, err)
	assert.Empty(t, row)
}

// TestAt_Bounds exercises element access and both out-of-bounds axes.
func TestAt_Bounds(t *testing.T) {
	a, err := ragged.New([][]int{{10, 11, 12}, {20}})
	require.NoError(t, err)

	v, err := a.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	v, err = a.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	_, err = a.At(2, 0)
	assert.ErrorIs(t, err, ragged.ErrIndexOutOfBounds, "trajectory index out of range")
	_, err = a.At(-1, 0)
	assert.ErrorIs(t, err, ragged.ErrIndexOutOfBounds)
	_, err = a.At(1, 1)
	assert.ErrorIs(t, err, ragged.ErrIndexOutOfBounds, "frame index beyond trajectory length")
	_, err = a.At(0, -1)
	assert.ErrorIs(t, err, ragged.ErrIndexOutOfBounds)
}

// TestRow_ViewAliasing verifies that Row returns a writable view whose
// mutations are visible in the parent, and that views never cross
// trajectory boundaries.
func TestRow_ViewAliasing(t *testing.T) {
	a, err := ragged.New([][]int{{1, 2, 3}, {4, 5}})
	require.NoError(t, err)

	row, err := a.Row(0)
	require.NoError(t, err)
	row[1] = 99

	v, err := a.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 99, v, "view writes must reach the parent")

	// Appending to the view must not bleed into trajectory 1.
	row = append(row, 1000)
	_ = row
	v, err = a.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, v, "append on a view must not clobber the next trajectory")

	_, err = a.Row(5)
	assert.ErrorIs(t, err, ragged.ErrIndexOutOfBounds)
}

// TestFlattenRoundTrip verifies that
// FromFlat(Flatten(a)) == a element-for-element.
func TestFlattenRoundTrip(t *testing.T) {
	a, err := ragged.New([][]int{{0, 0, 1, 1, 0}, {1, 1, 0}, {}, {2}})
	require.NoError(t, err)

	data, lengths := a.Flatten()
	b, err := ragged.FromFlat(data, lengths)
	require.NoError(t, err)

	assert.True(t, ragged.Equal(a, b), "round trip must reproduce the array")

	// The flattened buffers are copies, not aliases.
	data[0] = 42
	v, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, v, "Flatten must copy")
}

// TestFromFlat_Validation exercises the shape failure modes.
func TestFromFlat_Validation(t *testing.T) {
	_, err := ragged.FromFlat([]int{1, 2, 3}, []int{2, 2})
	assert.ErrorIs(t, err, ragged.ErrShape, "lengths must sum to len(data)")

	_, err = ragged.FromFlat([]int{1, 2}, []int{3, -1})
	assert.ErrorIs(t, err, ragged.ErrShape, "negative length")

	_, err = ragged.FromFlat([]int{}, []int{})
	assert.ErrorIs(t, err, ragged.ErrShape, "empty lengths")

	a, err := ragged.FromFlat([]int{}, []int{0, 0})
	require.NoError(t, err, "all-empty trajectories are a valid shape")
	assert.Equal(t, 2, a.Len())
}

// TestSetRow_SameLength verifies the in-place path.
func TestSetRow_SameLength(t *testing.T) {
	a, err := ragged.New([][]int{{1, 2, 3}, {4, 5}})
	require.NoError(t, err)

	require.NoError(t, a.SetRow(1, []int{7, 8}))
	row, err := a.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8}, row)
	assert.Equal(t, []int{3, 2}, a.Lengths())
}

// TestSetRow_Rebuild verifies whole-trajectory reassignment with a
// different length: offsets shift and neighbors stay intact.
func TestSetRow_Rebuild(t *testing.T) {
	a, err := ragged.New([][]int{{1, 2, 3}, {4, 5}, {6}})
	require.NoError(t, err)

	require.NoError(t, a.SetRow(1, []int{9, 9, 9, 9}))

	assert.Equal(t, []int{3, 4, 1}, a.Lengths())
	assert.Equal(t, 8, a.TotalLen())

	row0, _ := a.Row(0)
	row1, _ := a.Row(1)
	row2, _ := a.Row(2)
	assert.Equal(t, []int{1, 2, 3}, row0)
	assert.Equal(t, []int{9, 9, 9, 9}, row1)
	assert.Equal(t, []int{6}, row2)

	// Shrink, including to empty.
	require.NoError(t, a.SetRow(0, nil))
	assert.Equal(t, []int{0, 4, 1}, a.Lengths())
	row2, _ = a.Row(2)
	assert.Equal(t, []int{6}, row2)

	assert.ErrorIs(t, a.SetRow(9, []int{1}), ragged.ErrIndexOutOfBounds)
}

// TestRows_OrderedAndRestartable verifies the iterator contract.
func TestRows_OrderedAndRestartable(t *testing.T) {
	a, err := ragged.New([][]int{{1}, {2, 3}, {4}})
	require.NoError(t, err)

	for pass := 0; pass < 2; pass++ {
		var idx []int
		var flat []int
		for i, row := range a.Rows() {
			idx = append(idx, i)
			flat = append(flat, row...)
		}
		assert.Equal(t, []int{0, 1, 2}, idx, "pass %d order", pass)
		assert.Equal(t, []int{1, 2, 3, 4}, flat, "pass %d content", pass)
	}

	// Early break must not panic or corrupt anything.
	for i := range a.Rows() {
		if i == 1 {
			break
		}
	}
}

// TestMap_PreservesShape verifies elementwise mapping into a new type
// with independent ownership.
func TestMap_PreservesShape(t *testing.T) {
	a, err := ragged.New([][]int{{1, 2}, {3}})
	require.NoError(t, err)

	b := ragged.Map(a, func(v int) float64 { return float64(v) * 0.5 })

	assert.Equal(t, a.Lengths(), b.Lengths())
	v, err := b.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	// Mutating the result must not touch the source.
	require.NoError(t, b.Set(0, 1, -1))
	orig, _ := a.At(0, 1)
	assert.Equal(t, 2, orig)
}

// TestCloneAndEqual verifies deep copy semantics.
func TestCloneAndEqual(t *testing.T) {
	a, err := ragged.New([][]int{{1, 2}, {3}})
	require.NoError(t, err)

	b := a.Clone()
	assert.True(t, ragged.Equal(a, b))

	require.NoError(t, b.Set(0, 0, 42))
	assert.False(t, ragged.Equal(a, b), "clone must own its storage")

	c, err := ragged.New([][]int{{1, 2, 3}})
	require.NoError(t, err)
	assert.False(t, ragged.Equal(a, c), "different shapes are not equal")
}
