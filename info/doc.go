// Package info computes discrete information-theoretic quantities —
// Shannon entropy, joint counts, and mutual information — over
// ragged-array label sequences.
//
// It sits beside the Markov pipeline rather than inside it: the only
// contract it shares with the msm package is the ragged indexing of
// per-trajectory label sequences. All quantities are empirical
// (plug-in) estimates over the observed labels and are reported in
// bits (log base 2).
package info
