// Package builder generates synthetic causal models from a small set of
// topologies, mainly for benchmarks, scaling tests and the "model gen" command.
//
// A model is assembled by BuildModel from one or more Constructors sharing one
// resolved configuration:
//
//	m, err := builder.BuildModel("chain4", nil, builder.Chain(4))
//
// Topologies:
//
//   - Chain(n): an exogenous inflow feeding a reservoir whose level propagates
//     through n-2 proportional stages; the last stage drains the reservoir and
//     every stage corresponds to the reservoir at 0 and max. Chain(3) has the
//     shape of the classic container model.
//   - Star(n): one hub influenced by n-1 exogenous spokes with alternating sign.
//   - Random(n, p): n quantities with a proportional relation on each ordered
//     pair i<j drawn with probability p. Requires WithSeed or WithRand.
//
// Quantity names come from the configured ID scheme (ExcelColumnIDFn by
// default: "A", "B", ..., "Z", "AA", ...).
//
// Option constructors panic on meaningless input (nil functions, empty
// landmark lists). Constructors themselves return wrapped sentinels only.
package builder
