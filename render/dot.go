package render

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Attrs is a set of Graphviz attributes. Keys are written in sorted order.
type Attrs map[string]string

// Style groups the graph-, node- and edge-level defaults of a DOT document.
type Style struct {
	Graph Attrs
	Node  Attrs
	Edge  Attrs
}

// DefaultStyle is the filled-circle look used for state graphs.
func DefaultStyle() Style {
	return Style{
		Graph: Attrs{
			"fontsize":  "15",
			"fontcolor": "#999999",
			"bgcolor":   "#ffffff",
			"splines":   "curved",
		},
		Node: Attrs{
			"fontname":  "Monospace",
			"shape":     "circle",
			"fontcolor": "white",
			"fontsize":  "10",
			"color":     "white",
			"style":     "filled",
			"fillcolor": "#006699",
		},
		Edge: Attrs{
			"color":     "#999999",
			"arrowhead": "open",
			"fontname":  "Helvetica",
			"fontsize":  "12",
			"fontcolor": "#999999",
		},
	}
}

// DOT renders a Document as a Graphviz digraph. The document title becomes
// the graph label.
type DOT struct {
	Style Style
}

// Render writes doc to w.
func (d DOT) Render(w io.Writer, doc Document) error {
	var sb strings.Builder

	sb.WriteString("digraph envision {\n")
	graph := Attrs{}
	for k, v := range d.Style.Graph {
		graph[k] = v
	}
	if doc.Title != "" {
		graph["label"] = doc.Title
	}
	writeAttrs(&sb, "graph", graph)
	writeAttrs(&sb, "node", d.Style.Node)
	writeAttrs(&sb, "edge", d.Style.Edge)
	sb.WriteString("\n")

	if doc.Initial != "" {
		sb.WriteString("  start [shape=point, label=\"\"];\n")
		fmt.Fprintf(&sb, "  start -> %s;\n\n", quote(doc.Initial))
	}

	for _, n := range doc.Nodes {
		fmt.Fprintf(&sb, "  %s [label=%s];\n", quote(n.ID), quote(n.Label))
	}
	if len(doc.Nodes) > 0 {
		sb.WriteString("\n")
	}

	for _, e := range doc.Edges {
		if e.Tag != "" {
			fmt.Fprintf(&sb, "  %s -> %s [label=%s];\n", quote(e.From), quote(e.To), quote(e.Tag))
			continue
		}
		fmt.Fprintf(&sb, "  %s -> %s;\n", quote(e.From), quote(e.To))
	}

	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeAttrs(sb *strings.Builder, kind string, a Attrs) {
	if len(a) == 0 {
		return
	}
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + quote(a[k])
	}
	fmt.Fprintf(sb, "  %s [%s];\n", kind, strings.Join(parts, ", "))
}

// quote produces a DOT double-quoted string; newlines become centred line breaks.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}
