package tpt

// NewFluxNetworkForTest builds a flux network from explicit edges,
// bypassing Flux, so pathway extraction can be tested on hand-crafted
// topologies. Test support only.
func NewFluxNetworkForTest(n int, edges []FluxEdge) *FluxNetwork {
	fn := &FluxNetwork{n: n, net: make(map[int]map[int]float64)}
	for _, e := range edges {
		fn.set(e.From, e.To, e.Flux)
	}

	return fn
}
