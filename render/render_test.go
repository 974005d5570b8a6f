package render_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/envision/envision"
	"github.com/katalvlaran/envision/internal/fixtures"
	"github.com/katalvlaran/envision/quantity"
	"github.com/katalvlaran/envision/render"
	"github.com/katalvlaran/envision/state"
)

func sample() render.Document {
	return render.Document{
		Title:   "T",
		Initial: "s0",
		Nodes:   []render.Node{{ID: "s0", Label: "A|0  0\nB|+  1"}, {ID: "s1", Label: "x"}},
		Edges: []render.Edge{
			{From: "s0", To: "s1"},
			{From: "s0", To: "s1"},
			{From: "s1", To: "s1", Tag: "I+1"},
		},
	}
}

func TestDOT_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.DOT{}.Render(&buf, sample()))

	want := `digraph envision {
  graph [label="T"];

  start [shape=point, label=""];
  start -> "s0";

  "s0" [label="A|0  0\nB|+  1"];
  "s1" [label="x"];

  "s0" -> "s1";
  "s0" -> "s1";
  "s1" -> "s1" [label="I+1"];
}
`
	assert.Equal(t, want, buf.String())
}

func TestDOT_DefaultStyle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.DOT{Style: render.DefaultStyle()}.Render(&buf, render.Document{Title: `say "hi"`}))
	out := buf.String()

	assert.Contains(t, out, `fillcolor="#006699"`)
	assert.Contains(t, out, `shape="circle"`)
	assert.Contains(t, out, `arrowhead="open"`)
	assert.Contains(t, out, `label="say \"hi\""`)
	// attributes are sorted for stable output
	assert.Less(t, strings.Index(out, "bgcolor"), strings.Index(out, "fontcolor"))
}

func TestMermaid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Mermaid{}.Render(&buf, sample()))

	want := `---
title: T
---
stateDiagram-v2
  state "A|0  0<br/>B|+  1" as s0
  state "x" as s1

  [*] --> s0

  s0 --> s1
  s1 --> s1 : I+1
`
	assert.Equal(t, want, buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.JSON{}.Render(&buf, sample()))

	var got render.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample(), got)

	buf.Reset()
	require.NoError(t, render.JSON{Indent: true}.Render(&buf, render.Document{Title: "empty"}))
	assert.Contains(t, buf.String(), `"nodes": []`)
	assert.NotContains(t, buf.String(), "initial")
}

func TestFromModel(t *testing.T) {
	doc := render.FromModel(fixtures.Container())

	assert.Equal(t, render.CausalModelTitle, doc.Title)
	assert.Equal(t, []render.Node{{ID: "q0", Label: "I"}, {ID: "q1", Label: "V"}, {ID: "q2", Label: "O"}}, doc.Nodes)
	assert.Equal(t, []render.Edge{
		{From: "q0", To: "q1", Tag: "I+1"},
		{From: "q2", To: "q1", Tag: "I-1"},
		{From: "q1", To: "q2", Tag: "P+1"},
		{From: "q1", To: "q2", Tag: "V(max=max)"},
		{From: "q1", To: "q2", Tag: "V(0=0)"},
	}, doc.Edges)
}

func TestFromGraph(t *testing.T) {
	m := quantity.NewModel("stuck")
	require.NoError(t, m.AddQuantity("A", quantity.Landmarks("0", "+"), []int{0, 1}))
	require.NoError(t, m.AddQuantity("B", quantity.Landmarks("0", "+"), []int{0}))
	require.NoError(t, m.AddCorrespondence("A", "0", "B", "0"))
	res, err := envision.Build(context.Background(), m)
	require.NoError(t, err)

	doc := render.FromGraph(m, res.Graph)
	assert.Equal(t, render.StateGraphTitle, doc.Title)
	require.Len(t, doc.Nodes, 3)
	assert.Equal(t, render.Node{ID: "s1", Label: "A|0  1\nB|0  0"}, doc.Nodes[1])
	assert.Equal(t, []render.Edge{{From: "s0", To: "s0"}, {From: "s0", To: "s1"}, {From: "s2", To: "s2"}}, doc.Edges)
	assert.Empty(t, doc.Initial)

	start, err := state.Parse(m, "A=0,1 B=0,0")
	require.NoError(t, err)
	assert.Equal(t, "s1", render.FromGraphAt(m, res.Graph, start.Key()).Initial)
	assert.Empty(t, render.FromGraphAt(m, res.Graph, "missing").Initial)
}

func TestByName(t *testing.T) {
	for _, name := range append(render.Formats, "DOT", "graphviz", "mmd") {
		r, err := render.ByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, r)
	}
	_, err := render.ByName("svg")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}
