// Package envision is the root of a qualitative-reasoning toolkit: it turns a
// causal model of quantities and relations into the graph of every
// qualitative state the model admits and the transitions between them.
//
// Layout:
//
//	quantity/   quantities, landmarks and relations; the Model builder
//	state/      qualitative states, structural keys, labels and enumeration
//	legality/   the staged legality checker (bounds, correspondences,
//	            influences, proportionality)
//	successor/  admissible next states of a legal state
//	envision/   the sharded graph builder with logging and metrics
//	core/       the thread-safe, insertion-ordered state graph
//	bfs/, dfs/  attainable envisionment, cycles, steady and terminal states
//	render/     DOT, Mermaid and JSON documents of state and model graphs
//	report/     console summaries
//	modelfile/  YAML model files
//	builder/    synthetic model generators
//	cmd/envision the command-line front end
//
// Quick example (the two-quantity tank):
//
//	m := quantity.NewModel("tank")
//	_ = m.AddQuantity("I", quantity.Landmarks("0", "+"), quantity.Directions, quantity.Exogenous())
//	_ = m.AddQuantity("V", quantity.Landmarks("0", "+", "max"), quantity.Directions)
//	_ = m.AddInfluence("I", "V", 1)
//
//	res, err := envision.Build(ctx, m)
//	if err != nil {
//		return err
//	}
//	return render.DOT{Style: render.DefaultStyle()}.Render(os.Stdout, render.FromGraph(m, res.Graph))
package envision
