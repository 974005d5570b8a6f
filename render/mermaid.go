package render

import (
	"fmt"
	"io"
	"strings"
)

// Mermaid renders a Document as a Mermaid stateDiagram-v2.
// Node labels become state descriptions; multi-line labels use <br/>.
type Mermaid struct{}

// Render writes doc to w.
func (Mermaid) Render(w io.Writer, doc Document) error {
	var sb strings.Builder

	if doc.Title != "" {
		fmt.Fprintf(&sb, "---\ntitle: %s\n---\n", doc.Title)
	}
	sb.WriteString("stateDiagram-v2\n")

	for _, n := range doc.Nodes {
		fmt.Fprintf(&sb, "  state \"%s\" as %s\n", mermaidText(n.Label), n.ID)
	}
	if doc.Initial != "" {
		fmt.Fprintf(&sb, "\n  [*] --> %s\n", doc.Initial)
	}
	if len(doc.Edges) > 0 {
		sb.WriteString("\n")
	}

	seen := make(map[Edge]bool, len(doc.Edges))
	for _, e := range doc.Edges {
		if seen[e] {
			continue
		}
		seen[e] = true
		if e.Tag != "" {
			fmt.Fprintf(&sb, "  %s --> %s : %s\n", e.From, e.To, mermaidText(e.Tag))
			continue
		}
		fmt.Fprintf(&sb, "  %s --> %s\n", e.From, e.To)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func mermaidText(s string) string {
	return strings.NewReplacer(`"`, "'", "\n", "<br/>").Replace(s)
}
