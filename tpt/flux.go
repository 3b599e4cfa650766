package tpt

import "sort"

// FluxNetwork is the sparse net reactive flux network: for each ordered
// pair (i, j), the flux carried by reactive trajectories stepping
// directly from i to j. Entries at or below the construction epsilon
// are absent.
type FluxNetwork struct {
	n   int
	net map[int]map[int]float64
}

// FluxEdge is one non-zero network edge in deterministic export order.
type FluxEdge struct {
	From, To int
	Flux     float64
}

// Flux builds the net reactive flux network from a chain, its
// stationary distribution, and the committor pair:
//
//	gross f[i][j] = pi[i]·q⁻[i]·P[i][j]·q⁺[j]    (i ≠ j)
//	net  f⁺[i][j] = max(0, f[i][j] − f[j][i])
//
// Diagonal entries are excluded: a self-transition carries no reactive
// progress. Fails with ErrDimensionMismatch when vector lengths and
// the matrix disagree.
//
// Complexity: O(numStates²).
func Flux(t Kernel, pi, forward, backward []float64) (*FluxNetwork, error) {
	n := t.NumStates()
	if len(pi) != n || len(forward) != n || len(backward) != n {
		return nil, ErrDimensionMismatch
	}

	gross := func(i, j int) float64 {
		return pi[i] * backward[i] * t.At(i, j) * forward[j]
	}

	fn := &FluxNetwork{n: n, net: make(map[int]map[int]float64)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			net := gross(i, j) - gross(j, i)
			if net > 0 {
				fn.set(i, j, net)
			}
		}
	}

	return fn, nil
}

// Kernel is the read surface Flux needs from a transition matrix.
// *msm.TransMatrix satisfies it.
type Kernel interface {
	NumStates() int
	At(i, j int) float64
}

// NumStates returns the state-space dimension.
func (fn *FluxNetwork) NumStates() int { return fn.n }

// At returns the net flux on edge (i, j), zero when absent.
func (fn *FluxNetwork) At(i, j int) float64 {
	return fn.net[i][j]
}

// Edges returns all edges sorted by (From, To), the deterministic
// export order.
func (fn *FluxNetwork) Edges() []FluxEdge {
	var edges []FluxEdge
	for i, row := range fn.net {
		for j, v := range row {
			edges = append(edges, FluxEdge{From: i, To: j, Flux: v})
		}
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].From != edges[b].From {
			return edges[a].From < edges[b].From
		}
		return edges[a].To < edges[b].To
	})

	return edges
}

// TotalFlux returns the net reactive flux out of the source set: the
// sum of edges leaving any source state toward a non-source state.
func (fn *FluxNetwork) TotalFlux(source []int) float64 {
	inSource := make(map[int]bool, len(source))
	for _, s := range source {
		inSource[s] = true
	}

	var total float64
	for _, s := range source {
		for j, v := range fn.net[s] {
			if !inSource[j] {
				total += v
			}
		}
	}

	return total
}

// clone deep-copies the network for destructive pathway extraction.
func (fn *FluxNetwork) clone() *FluxNetwork {
	out := &FluxNetwork{n: fn.n, net: make(map[int]map[int]float64, len(fn.net))}
	for i, row := range fn.net {
		dst := make(map[int]float64, len(row))
		for j, v := range row {
			dst[j] = v
		}
		out.net[i] = dst
	}

	return out
}

func (fn *FluxNetwork) set(i, j int, v float64) {
	row := fn.net[i]
	if row == nil {
		row = make(map[int]float64)
		fn.net[i] = row
	}
	row[j] = v
}

// subtract removes v from edge (i, j), deleting it once it drops to or
// below eps.
func (fn *FluxNetwork) subtract(i, j int, v, eps float64) {
	row := fn.net[i]
	if row == nil {
		return
	}
	rest := row[j] - v
	if rest <= eps {
		delete(row, j)
		if len(row) == 0 {
			delete(fn.net, i)
		}
		return
	}
	row[j] = rest
}
