// Package msm estimates Markov State Models from ensembles of
// discrete-state trajectories.
//
// The pipeline is two stages, each a pure function of its inputs:
//
//	assignments (ragged.Array[int])
//	    │  Count — sliding-window transition counting at a lag time
//	    ▼
//	CountMatrix (sparse, i→j observation counts)
//	    │  Estimate — row normalization, optional prior & symmetrization
//	    ▼
//	TransMatrix (row-stochastic probability matrix)
//
// Counting policy: the window is sliding, not strided. At lag L every
// offset t with t+L < len(trajectory) contributes one observation of
// (label[t], label[t+L]), so lag 1 counts every consecutive pair. This
// maximizes use of short trajectories at the cost of statistically
// correlated counts; it is the documented contract, not corrected
// internally. WithStride switches to non-overlapping windows when
// independent counts matter more than data efficiency.
//
// Counting is parallel across trajectories: workers produce partial
// sparse matrices that are merged by elementwise addition, which is
// associative and commutative, so results are independent of worker
// count and scheduling.
//
// Rows of a TransMatrix sum to 1 within numerical tolerance, except
// rows whose state was never observed as a transition source: those
// stay identically zero rather than being normalized to uniform.
// Callers must consult ZeroRows before feeding the matrix to spectral
// analysis; the spectral package's class analysis handles the rest.
package msm
