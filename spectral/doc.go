// Package spectral analyzes the eigenstructure of transition matrices:
// stationary distributions, relaxation eigenspectra, and the
// communicating-class structure that decides whether a stationary
// distribution is unique.
//
// The stationary distribution is the left eigenvector of the transition
// matrix for eigenvalue 1, normalized to sum 1. Stationary computes it
// by power iteration with an explicit, caller-visible iteration budget
// and tolerance (Options); it refuses matrices whose support graph has
// more than one recurrent communicating class, because the stationary
// distribution is then not unique. Callers pre-filter with
// LargestConnectedSet and Restrict, mirroring the usual trim-to-largest
// -component workflow for MSMs built from fragmented sampling.
//
// Eigenspectra exposes the top-k eigenvalue/left-eigenvector pairs for
// relaxation-timescale diagnostics; it is not needed by transition path
// theory but shares the same numerical machinery and is exported for
// reuse.
//
// All solvers are pure functions of their inputs: no global state, no
// hidden defaults, no retries. Reruns with identical inputs and
// tolerances give identical results.
package spectral
