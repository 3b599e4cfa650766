// Package ragged provides a flat-buffer container for collections of
// variable-length sequences ("ragged" or "jagged" arrays), the storage
// format for per-trajectory discrete state labels throughout enspara.
//
// An Array[T] stores all elements of all trajectories in one contiguous
// slice, indexed by an offsets table:
//
//	data:    [t0f0 t0f1 t0f2 | t1f0 t1f1 | t2f0 t2f1 t2f2 t2f3]
//	offsets: [0, 3, 5, 9]
//
// This arena+index layout gives:
//
//   - O(1) random access to any (trajectory, frame) element
//   - O(1) per-trajectory slicing without copies
//   - allocation-free, cache-friendly iteration over the whole ensemble
//
// compared to a naive [][]T of independently allocated rows.
//
// Contracts:
//
//   - offsets[0] == 0, offsets is non-decreasing, and
//     offsets[len(offsets)-1] == len(data) at all times.
//   - Row returns a non-owning view: writes through the view are visible
//     in the parent. Views never alias across trajectories.
//   - Flatten/FromFlat are exact inverses element-for-element and form
//     the interchange format with the msm and info packages.
//
// All public operations validate their inputs and return sentinel errors
// (ErrShape, ErrIndexOutOfBounds) matched via errors.Is; none panic on
// user input.
package ragged
