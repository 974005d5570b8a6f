package render

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON renders a Document as a single JSON object.
type JSON struct {
	Indent bool
}

// Render writes doc to w followed by a newline.
func (j JSON) Render(w io.Writer, doc Document) error {
	if doc.Nodes == nil {
		doc.Nodes = []Node{}
	}
	if doc.Edges == nil {
		doc.Edges = []Edge{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if j.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("render: json: %w", err)
	}
	return nil
}
