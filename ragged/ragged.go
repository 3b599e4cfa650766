package ragged

import (
	"errors"
	"iter"
)

// ErrShape indicates malformed construction input: an empty collection,
// a negative length, or flat data whose size disagrees with the lengths.
var ErrShape = errors.New("ragged: invalid shape")

// ErrIndexOutOfBounds indicates a trajectory or frame index outside the
// valid range of the array.
var ErrIndexOutOfBounds = errors.New("ragged: index out of bounds")

// Array is a ragged 2D container: an ordered collection of
// variable-length 1D sequences backed by a single flat buffer.
//
// The zero value is not usable; construct via New or FromFlat.
type Array[T any] struct {
	data    []T
	offsets []int // len == Len()+1; offsets[0]==0; non-decreasing
}

// New builds an Array from a list of variable-length sequences,
// copying every element into one contiguous buffer.
//
// Returns ErrShape if seqs is empty. Individual empty sequences are
// permitted and occupy zero space.
//
// Complexity: O(total elements) time and memory.
func New[T any](seqs [][]T) (*Array[T], error) {
	if len(seqs) == 0 {
		return nil, ErrShape
	}

	offsets := make([]int, len(seqs)+1)
	total := 0
	for i, s := range seqs {
		total += len(s)
		offsets[i+1] = total
	}

	data := make([]T, 0, total)
	for _, s := range seqs {
		data = append(data, s...)
	}

	return &Array[T]{data: data, offsets: offsets}, nil
}

// FromFlat reconstructs an Array from its flat interchange form: a flat
// element buffer plus per-trajectory lengths ("unflatten"). Both inputs
// are copied; the result shares no storage with the caller.
//
// Returns ErrShape if lengths is empty, any length is negative, or
// sum(lengths) != len(data).
//
// Complexity: O(len(data)) time and memory.
func FromFlat[T any](data []T, lengths []int) (*Array[T], error) {
	if len(lengths) == 0 {
		return nil, ErrShape
	}

	offsets := make([]int, len(lengths)+1)
	total := 0
	for i, n := range lengths {
		if n < 0 {
			return nil, ErrShape
		}
		total += n
		offsets[i+1] = total
	}
	if total != len(data) {
		return nil, ErrShape
	}

	buf := make([]T, len(data))
	copy(buf, data)

	return &Array[T]{data: buf, offsets: offsets}, nil
}

// Len returns the number of trajectories.
func (a *Array[T]) Len() int {
	return len(a.offsets) - 1
}

// TotalLen returns the total number of elements across all trajectories.
func (a *Array[T]) TotalLen() int {
	return len(a.data)
}

// Lengths returns a copy of the per-trajectory lengths.
func (a *Array[T]) Lengths() []int {
	lengths := make([]int, a.Len())
	for i := range lengths {
		lengths[i] = a.offsets[i+1] - a.offsets[i]
	}

	return lengths
}

// index computes the flat position of (traj, frame) or returns
// ErrIndexOutOfBounds. All element accessors funnel through here.
func (a *Array[T]) index(traj, frame int) (int, error) {
	if traj < 0 || traj >= a.Len() {
		return 0, ErrIndexOutOfBounds
	}
	if frame < 0 || frame >= a.offsets[traj+1]-a.offsets[traj] {
		return 0, ErrIndexOutOfBounds
	}

	return a.offsets[traj] + frame, nil
}

// At returns the element at (traj, frame).
//
// Complexity: O(1).
func (a *Array[T]) At(traj, frame int) (T, error) {
	idx, err := a.index(traj, frame)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.data[idx], nil
}

// Set assigns v at (traj, frame).
//
// Complexity: O(1).
func (a *Array[T]) Set(traj, frame int, v T) error {
	idx, err := a.index(traj, frame)
	if err != nil {
		return err
	}
	a.data[idx] = v

	return nil
}

// Row returns the trajectory at traj as a non-owning view over the flat
// buffer. Writes through the view are visible in the parent. The view
// has its capacity clipped to its own trajectory, so append on it can
// never bleed into a neighbor.
//
// Complexity: O(1); no copy.
func (a *Array[T]) Row(traj int) ([]T, error) {
	if traj < 0 || traj >= a.Len() {
		return nil, ErrIndexOutOfBounds
	}
	lo, hi := a.offsets[traj], a.offsets[traj+1]

	return a.data[lo:hi:hi], nil
}

// SetRow replaces the whole trajectory at traj with a copy of row.
// When len(row) equals the current trajectory length the assignment is
// done in place; otherwise the flat buffer and offsets are rebuilt to
// accommodate the new length.
//
// Complexity: O(len(row)) in place, O(TotalLen) on rebuild.
func (a *Array[T]) SetRow(traj int, row []T) error {
	if traj < 0 || traj >= a.Len() {
		return ErrIndexOutOfBounds
	}
	lo, hi := a.offsets[traj], a.offsets[traj+1]

	if len(row) == hi-lo {
		copy(a.data[lo:hi], row)
		return nil
	}

	// Length changed: rebuild data and shift every later offset.
	delta := len(row) - (hi - lo)
	data := make([]T, 0, len(a.data)+delta)
	data = append(data, a.data[:lo]...)
	data = append(data, row...)
	data = append(data, a.data[hi:]...)
	a.data = data
	for i := traj + 1; i < len(a.offsets); i++ {
		a.offsets[i] += delta
	}

	return nil
}

// Rows returns a restartable iterator over (trajectoryIndex, view)
// pairs in trajectory order. Views follow the Row aliasing contract.
func (a *Array[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := 0; i < a.Len(); i++ {
			lo, hi := a.offsets[i], a.offsets[i+1]
			if !yield(i, a.data[lo:hi:hi]) {
				return
			}
		}
	}
}

// Flatten returns copies of the flat element buffer and the
// per-trajectory lengths, the interchange form accepted by FromFlat.
// FromFlat(a.Flatten()) reproduces a element-for-element.
func (a *Array[T]) Flatten() ([]T, []int) {
	data := make([]T, len(a.data))
	copy(data, a.data)

	return data, a.Lengths()
}

// Clone returns a deep, independently owned copy.
func (a *Array[T]) Clone() *Array[T] {
	data := make([]T, len(a.data))
	copy(data, a.data)
	offsets := make([]int, len(a.offsets))
	copy(offsets, a.offsets)

	return &Array[T]{data: data, offsets: offsets}
}

// Map applies f elementwise, producing a new, independently owned Array
// with the same ragged shape.
//
// Complexity: O(total elements).
func Map[T, U any](a *Array[T], f func(T) U) *Array[U] {
	data := make([]U, len(a.data))
	for i, v := range a.data {
		data[i] = f(v)
	}
	offsets := make([]int, len(a.offsets))
	copy(offsets, a.offsets)

	return &Array[U]{data: data, offsets: offsets}
}

// Equal reports whether two arrays have identical shape and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	if a.Len() != b.Len() || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.offsets {
		if a.offsets[i] != b.offsets[i] {
			return false
		}
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}
