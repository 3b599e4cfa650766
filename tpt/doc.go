// Package tpt implements transition path theory over a fixed
// (transition matrix, stationary distribution) pair: committor
// probabilities, reactive flux, and dominant pathway decomposition
// between a source and a sink set of states.
//
// The forward committor q⁺[i] is the probability that the chain,
// started in i, reaches the sink set before the source set; the
// backward committor q⁻[i] is the time-reversed analogue. Both are
// fixed by boundary conditions (exactly 0/1 on the sets themselves)
// and a harmonic condition on every other state, which reduces to one
// dense linear solve per committor.
//
// The net reactive flux network
//
//	f⁺[i][j] = max(0, f[i][j] − f[j][i]),  f[i][j] = π[i]·q⁻[i]·P[i][j]·q⁺[j]
//
// carries all A→B reactive trajectories. Pathways decomposes it
// greedily: repeatedly extract the path with the largest bottleneck
// (minimum edge flux along the path), subtract that bottleneck from
// every edge on the path, and stop when MaxPathways paths are out or
// the remaining network falls below Epsilon. Ties between
// equal-bottleneck paths prefer fewer edges, then the lexicographically
// smaller state sequence, so decompositions are deterministic.
//
// Every operation is a pure function of its inputs; results are
// immutable once returned.
package tpt
