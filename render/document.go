package render

import (
	"strconv"

	"github.com/katalvlaran/envision/core"
	"github.com/katalvlaran/envision/quantity"
	"github.com/katalvlaran/envision/state"
)

// Default document titles.
const (
	StateGraphTitle  = "State graph"
	CausalModelTitle = "Causal model"
)

// FromGraph builds the state-graph document of g. Nodes are numbered s0, s1, ...
// in graph order and labelled with state.Label; edges carry no tag.
func FromGraph(m *quantity.Model, g *core.Graph) Document {
	doc, _ := fromGraph(m, g)
	return doc
}

// FromGraphAt is FromGraph with an initial-state arrow pointing at start.
// The arrow is omitted if start is not a node of g.
func FromGraphAt(m *quantity.Model, g *core.Graph, start state.Key) Document {
	doc, ids := fromGraph(m, g)
	doc.Initial = ids[start]
	return doc
}

func fromGraph(m *quantity.Model, g *core.Graph) (Document, map[state.Key]string) {
	keys := g.Keys()
	ids := make(map[state.Key]string, len(keys))
	doc := Document{
		Title: StateGraphTitle,
		Nodes: make([]Node, 0, len(keys)),
	}
	for i, k := range keys {
		s, _ := g.Node(k)
		id := "s" + strconv.Itoa(i)
		ids[k] = id
		doc.Nodes = append(doc.Nodes, Node{ID: id, Label: state.Label(m, s)})
	}
	edges := g.Edges()
	doc.Edges = make([]Edge, 0, len(edges))
	for _, e := range edges {
		doc.Edges = append(doc.Edges, Edge{From: ids[e.From], To: ids[e.To]})
	}
	return doc, ids
}

// FromModel builds the causal-model document of m: one node per quantity
// (IDs q0, q1, ... labelled by name) and one tagged edge per relation, in the
// order influences, proportionals, correspondences.
func FromModel(m *quantity.Model) Document {
	qs := m.Quantities()
	doc := Document{
		Title: CausalModelTitle,
		Nodes: make([]Node, len(qs)),
	}
	for i, q := range qs {
		doc.Nodes[i] = Node{ID: "q" + strconv.Itoa(i), Label: q.Name}
	}
	id := func(name string) string {
		i, _ := m.Index(name)
		return "q" + strconv.Itoa(i)
	}
	for _, r := range m.Influences() {
		doc.Edges = append(doc.Edges, Edge{From: id(r.Source), To: id(r.Target), Tag: r.Tag()})
	}
	for _, r := range m.Proportionals() {
		doc.Edges = append(doc.Edges, Edge{From: id(r.Source), To: id(r.Target), Tag: r.Tag()})
	}
	for _, r := range m.Correspondences() {
		doc.Edges = append(doc.Edges, Edge{From: id(r.Q1), To: id(r.Q2), Tag: r.Tag()})
	}
	return doc
}
