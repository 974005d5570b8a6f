// Package envision computes the total envisionment of a qualitative model:
// the directed graph of every legal state and every legal one-step transition.
//
// Build is the single entry point:
//
//	res, err := envision.Build(ctx, model,
//	    envision.WithWorkers(8),
//	    envision.WithMaxCandidates(1<<20),
//	    envision.WithLogger(logger),
//	    envision.WithMetrics(envision.NewMetrics(prometheus.DefaultRegisterer)),
//	)
//
// The candidate space is the full product of every quantity's magnitudes and
// derivatives. Build refuses to start when that product exceeds the ceiling
// (ErrCombinatorialLimit); otherwise it enumerates the space in contiguous
// ordinal shards, filters each candidate through a legality.Checker, expands
// legal states with a successor.Generator and merges the shards into a
// core.Graph.
//
// Determinism: nodes and edges appear in enumeration order, so repeated runs
// over the same model produce identical graphs whatever the worker count.
//
// Legal states without successors stay in the graph as terminal nodes.
package envision
