package msm

import (
	"sync"

	"github.com/SilverMM/enspara/ragged"
)

// Count accumulates transition observations from every trajectory of
// assigns into one sparse CountMatrix (the ensemble estimate).
//
// For each trajectory independently, every valid offset t with
// t+lag < length contributes one observation of
// (label[t], label[t+lag]). Trajectories shorter than lag+1 contribute
// nothing; that is not an error. See the package documentation for the
// sliding-window policy and WithStride.
//
// Labels are validated eagerly, before any counting: a label outside
// [0, numStates) fails with ErrLabelRange, unless it is negative and
// WithIgnoreNegative was supplied, in which case the frame is treated
// as missing and breaks the pairs it participates in.
//
// Trajectories are partitioned across workers (WithWorkers); partial
// matrices merge by addition, so the result is identical for any
// degree of parallelism.
//
// Complexity: O(total frames) time, O(non-zero pairs) memory.
func Count(assigns *ragged.Array[int], numStates int, opts ...Option) (*CountMatrix, error) {
	o := gatherOptions(opts...)
	if o.lag < 1 {
		return nil, ErrBadLag
	}
	if numStates < 1 {
		return nil, ErrBadStateCount
	}

	// Eager boundary validation across the whole ensemble.
	for _, row := range assigns.Rows() {
		for _, label := range row {
			if label < 0 && o.ignoreNeg {
				continue
			}
			if label < 0 || label >= numStates {
				return nil, ErrLabelRange
			}
		}
	}

	nTraj := assigns.Len()
	workers := o.workers
	if workers > nTraj {
		workers = nTraj
	}
	if workers < 1 {
		workers = 1
	}

	// One partial matrix per worker; contiguous trajectory ranges.
	partials := make([]*CountMatrix, workers)
	var wg sync.WaitGroup
	chunk := (nTraj + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > nTraj {
			hi = nTraj
		}
		if lo >= hi {
			partials[w] = &CountMatrix{n: numStates, data: map[pair]float64{}}
			continue
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			part := &CountMatrix{n: numStates, data: make(map[pair]float64)}
			for traj := lo; traj < hi; traj++ {
				row, _ := assigns.Row(traj)
				countTrajectory(part, row, o)
			}
			partials[w] = part
		}(w, lo, hi)
	}
	wg.Wait()

	out := partials[0]
	for _, part := range partials[1:] {
		if err := out.Merge(part); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// countTrajectory accumulates one trajectory's pairs into part.
// Labels are already validated.
func countTrajectory(part *CountMatrix, row []int, o options) {
	step := 1
	if o.stride {
		step = o.lag
	}
	for t := 0; t+o.lag < len(row); t += step {
		from, to := row[t], row[t+o.lag]
		if o.ignoreNeg && (from < 0 || to < 0) {
			continue
		}
		part.Add(from, to, 1)
	}
}
