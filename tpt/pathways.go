package tpt

import (
	"container/heap"
	"math"
	"sort"
)

// Pathways decomposes a net flux network into its dominant pathways by
// greedy bottleneck extraction: find the source→sink path whose
// minimum-flux edge is largest, subtract that bottleneck from every
// edge on the path, and repeat until opts.MaxPathways paths are out or
// no path above opts.Epsilon remains.
//
// Paths are found with a widest-path search (a Dijkstra variant that
// maximizes the minimum edge instead of minimizing the sum). Ties
// between equal-bottleneck candidates prefer fewer edges, then smaller
// state indices, so the decomposition is deterministic.
//
// The input network is not modified; extraction works on a copy.
//
// Complexity: O(MaxPathways · E·log V) for E network edges.
func Pathways(fn *FluxNetwork, source, sink []int, opts *Options) ([]Pathway, error) {
	o := opts.normalize()
	n := fn.NumStates()

	srcSet, err := validateStateSet(source, n)
	if err != nil {
		return nil, err
	}
	snkSet, err := validateStateSet(sink, n)
	if err != nil {
		return nil, err
	}
	for s := range srcSet {
		if snkSet[s] {
			return nil, ErrOverlap
		}
	}

	work := fn.clone()
	var out []Pathway
	for len(out) < o.MaxPathways {
		path, bottleneck := widestPath(work, srcSet, snkSet, o.Epsilon)
		if path == nil || bottleneck <= o.Epsilon {
			break
		}

		for k := 0; k+1 < len(path); k++ {
			work.subtract(path[k], path[k+1], bottleneck, o.Epsilon)
		}
		out = append(out, Pathway{States: path, Flux: bottleneck})
	}

	return out, nil
}

// pathItem is one heap entry of the widest-path search.
type pathItem struct {
	node       int
	bottleneck float64
	hops       int
}

type pathHeap []pathItem

func (h pathHeap) Len() int { return len(h) }
func (h pathHeap) Less(a, b int) bool {
	if h[a].bottleneck != h[b].bottleneck {
		return h[a].bottleneck > h[b].bottleneck
	}
	if h[a].hops != h[b].hops {
		return h[a].hops < h[b].hops
	}
	return h[a].node < h[b].node
}
func (h pathHeap) Swap(a, b int) { h[a], h[b] = h[b], h[a] }
func (h *pathHeap) Push(x any)   { *h = append(*h, x.(pathItem)) }
func (h *pathHeap) Pop() any {
	old := *h
	it := old[len(old)-1]
	*h = old[:len(old)-1]

	return it
}

// widestPath returns the maximum-bottleneck path from any source state
// to any sink state over edges with flux > eps, or (nil, 0) when no
// such path exists.
func widestPath(fn *FluxNetwork, source, sink map[int]bool, eps float64) ([]int, float64) {
	n := fn.NumStates()
	bottleneck := make([]float64, n)
	hops := make([]int, n)
	pred := make([]int, n)
	done := make([]bool, n)
	for i := range pred {
		pred[i] = -1
		hops[i] = math.MaxInt
	}

	h := &pathHeap{}
	// Seed all source states in index order.
	seeds := make([]int, 0, len(source))
	for s := range source {
		seeds = append(seeds, s)
	}
	sort.Ints(seeds)
	for _, s := range seeds {
		bottleneck[s] = math.Inf(1)
		hops[s] = 0
		heap.Push(h, pathItem{node: s, bottleneck: math.Inf(1), hops: 0})
	}

	for h.Len() > 0 {
		it := heap.Pop(h).(pathItem)
		u := it.node
		if done[u] || it.bottleneck < bottleneck[u] {
			continue
		}
		done[u] = true
		if sink[u] {
			// First settled sink wins under the heap's ordering.
			return backtrack(pred, u), bottleneck[u]
		}
		// Reactive flux never re-enters a source state on a productive
		// path, but the edge order must still be deterministic.
		targets := make([]int, 0, len(fn.net[u]))
		for v := range fn.net[u] {
			targets = append(targets, v)
		}
		sort.Ints(targets)

		for _, v := range targets {
			f := fn.net[u][v]
			if f <= eps || done[v] || source[v] {
				continue
			}
			cand := math.Min(bottleneck[u], f)
			better := cand > bottleneck[v] ||
				(cand == bottleneck[v] && hops[u]+1 < hops[v]) ||
				(cand == bottleneck[v] && hops[u]+1 == hops[v] && pred[v] > u)
			if better {
				bottleneck[v] = cand
				hops[v] = hops[u] + 1
				pred[v] = u
				heap.Push(h, pathItem{node: v, bottleneck: cand, hops: hops[v]})
			}
		}
	}

	return nil, 0
}

// backtrack rebuilds the path ending at u from predecessor links.
func backtrack(pred []int, u int) []int {
	var rev []int
	for v := u; v != -1; v = pred[v] {
		rev = append(rev, v)
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}
