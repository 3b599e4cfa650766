package tpt

import "github.com/SilverMM/enspara/msm"

// Analyze runs the full transition-path-theory chain for one
// (matrix, stationary, source, sink) input: committors, net flux,
// total flux, and dominant pathways, bundled as an immutable Result.
//
// It is a convenience over calling Committors, Flux, TotalFlux and
// Pathways yourself; the individual stages stay exported for callers
// that need only part of the chain.
func Analyze(t *msm.TransMatrix, pi []float64, source, sink []int, opts *Options) (*Result, error) {
	forward, backward, err := Committors(t, pi, source, sink)
	if err != nil {
		return nil, err
	}

	net, err := Flux(t, pi, forward, backward)
	if err != nil {
		return nil, err
	}

	paths, err := Pathways(net, source, sink, opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		Forward:  forward,
		Backward: backward,
		Net:      net,
		Total:    net.TotalFlux(source),
		Pathways: paths,
	}, nil
}
