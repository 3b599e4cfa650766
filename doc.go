// Package enspara estimates and analyzes Markov State Models (MSMs)
// from ensembles of discrete-state trajectories, such as clustered
// molecular dynamics data.
//
// The pipeline, leaves first:
//
//	ragged/   — flat-buffer storage for variable-length per-trajectory
//	            label sequences (the interchange format for everything
//	            below)
//	msm/      — sparse transition counting and row-stochastic
//	            transition-matrix estimation (priors, reversibility,
//	            implied timescales)
//	spectral/ — stationary distributions, eigenspectra, and
//	            communicating-class analysis
//	tpt/      — transition path theory: committors, reactive flux,
//	            dominant pathways
//	info/     — entropy and mutual information over ragged label
//	            sequences
//
// Data flow: label sequences → ragged.Array → msm.Count →
// msm.Estimate → spectral.Stationary → tpt.Analyze. The info package
// consumes ragged.Array directly, in parallel to the Markov pipeline.
//
// Clustering (producing the integer labels), trajectory file formats,
// and plotting are deliberately out of scope: labels arrive as plain
// integer sequences and every result leaves as plain numeric slices
// and matrices.
//
// All components are pure functions over immutable inputs; every call
// is reproducible given identical inputs and tolerances. Iterative
// solvers expose their iteration budgets and tolerances as explicit
// options rather than hidden defaults.
package enspara
