// Package render turns state graphs and causal models into diagram text.
//
// Rendering has two steps. FromGraph or FromModel resolve the model's names
// into a Document of labelled nodes and tagged edges; a Renderer then
// serialises the Document. Labels are produced only here, never used as
// identity inside the engine.
//
// Renderers:
//
//	DOT      Graphviz digraph with the classic envisionment styling.
//	Mermaid  stateDiagram-v2, suitable for Markdown.
//	JSON     the Document itself.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownFormat is returned by ByName for an unsupported format name.
var ErrUnknownFormat = errors.New("render: unknown format")

// Node is a diagram vertex. ID is a short identifier unique within the
// document; Label is the text shown.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Edge is a directed diagram edge between node IDs. Tag is an optional label
// such as "I+1" on a causal-model edge.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Tag  string `json:"tag,omitempty"`
}

// Document is a renderer-neutral diagram.
type Document struct {
	Title string `json:"title"`

	// Initial, when set, is the ID of the node an initial-state arrow points to.
	Initial string `json:"initial,omitempty"`

	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Renderer serialises a Document.
type Renderer interface {
	Render(w io.Writer, doc Document) error
}

// Formats lists the names accepted by ByName.
var Formats = []string{"dot", "mermaid", "json"}

// ByName returns the renderer for a format name (case-insensitive).
func ByName(name string) (Renderer, error) {
	switch strings.ToLower(name) {
	case "dot", "gv", "graphviz":
		return DOT{Style: DefaultStyle()}, nil
	case "mermaid", "mmd":
		return Mermaid{}, nil
	case "json":
		return JSON{Indent: true}, nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Formats, ", "))
}
