package spectral

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/SilverMM/enspara/msm"
)

// RecurrentClasses returns the recurrent communicating classes of t's
// support graph (edge i→j wherever P[i][j] > 0): the strongly connected
// components with no edge leaving the component. A state whose row is
// identically zero forms its own recurrent class (absorbing under the
// zero-row convention).
//
// Each class is sorted ascending; classes are ordered by their smallest
// member, so the output is deterministic.
//
// Complexity: O(numStates²) — the support graph is read off a dense
// matrix.
func RecurrentClasses(t *msm.TransMatrix) [][]int {
	n := t.NumStates()
	comp := stronglyConnected(t)

	nComp := 0
	for _, c := range comp {
		if c+1 > nComp {
			nComp = c + 1
		}
	}

	// A component is transient iff any member has an edge out of it.
	leaves := make([]bool, nComp)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && t.At(i, j) > 0 && comp[i] != comp[j] {
				leaves[comp[i]] = true
			}
		}
	}

	classes := make([][]int, 0, nComp)
	members := make(map[int][]int, nComp)
	for i := 0; i < n; i++ {
		members[comp[i]] = append(members[comp[i]], i)
	}
	for c := 0; c < nComp; c++ {
		if leaves[c] {
			continue
		}
		class := members[c]
		sort.Ints(class)
		classes = append(classes, class)
	}
	sort.Slice(classes, func(a, b int) bool {
		return classes[a][0] < classes[b][0]
	})

	return classes
}

// LargestConnectedSet returns the states of the largest recurrent
// class, the documented pre-filter for disconnected chains. Ties go to
// the class containing the smallest state index.
func LargestConnectedSet(t *msm.TransMatrix) []int {
	classes := RecurrentClasses(t)
	if len(classes) == 0 {
		return nil
	}

	best := classes[0]
	for _, class := range classes[1:] {
		if len(class) > len(best) {
			best = class
		}
	}

	return best
}

// Restrict extracts the submatrix of t over the given states and
// renormalizes each row, yielding a transition matrix on the reduced
// state space together with the mapping from new to original indices.
// Rows that lose all their mass stay identically zero.
//
// States must be distinct, in-range, and non-empty; fails with
// ErrBadInput otherwise.
func Restrict(t *msm.TransMatrix, states []int) (*msm.TransMatrix, []int, error) {
	n := t.NumStates()
	if len(states) == 0 {
		return nil, nil, ErrBadInput
	}
	seen := make(map[int]bool, len(states))
	for _, s := range states {
		if s < 0 || s >= n || seen[s] {
			return nil, nil, ErrBadInput
		}
		seen[s] = true
	}

	mapping := make([]int, len(states))
	copy(mapping, states)
	sort.Ints(mapping)

	k := len(mapping)
	sub := mat.NewDense(k, k, nil)
	for a, i := range mapping {
		for b, j := range mapping {
			sub.Set(a, b, t.At(i, j))
		}
		row := sub.RawRowView(a)
		if sum := floats.Sum(row); sum > 0 {
			floats.Scale(1/sum, row)
		}
	}

	restricted, err := msm.FromDense(sub)
	if err != nil {
		return nil, nil, err
	}

	return restricted, mapping, nil
}

// stronglyConnected labels every state with its strongly connected
// component id via an iterative Tarjan over the support graph.
func stronglyConnected(t *msm.TransMatrix) []int {
	n := t.NumStates()

	const unvisited = -1
	index := make([]int, n)
	low := make([]int, n)
	comp := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = unvisited
		comp[i] = unvisited
	}

	var stack []int
	next := 0
	nComp := 0

	// Explicit DFS frames: (vertex, next neighbor to try).
	type frame struct{ v, j int }

	for start := 0; start < n; start++ {
		if index[start] != unvisited {
			continue
		}

		frames := []frame{{v: start, j: 0}}
		index[start] = next
		low[start] = next
		next++
		stack = append(stack, start)
		onStack[start] = true

		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			advanced := false
			for ; f.j < n; f.j++ {
				w := f.j
				if t.At(f.v, w) <= 0 || w == f.v {
					continue
				}
				if index[w] == unvisited {
					index[w] = next
					low[w] = next
					next++
					stack = append(stack, w)
					onStack[w] = true
					f.j++
					frames = append(frames, frame{v: w, j: 0})
					advanced = true
					break
				}
				if onStack[w] && index[w] < low[f.v] {
					low[f.v] = index[w]
				}
			}
			if advanced {
				continue
			}

			// f.v is finished; pop its component if it is a root.
			v := f.v
			if low[v] == index[v] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = nComp
					if w == v {
						break
					}
				}
				nComp++
			}
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := frames[len(frames)-1].v
				if low[v] < low[parent] {
					low[parent] = low[v]
				}
			}
		}
	}

	return comp
}
