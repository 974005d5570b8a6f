package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/envision/logging"
	"github.com/katalvlaran/envision/render"
)

var (
	tankFile      = filepath.Join("..", "..", "modelfile", "testdata", "tank.yaml")
	containerFile = filepath.Join("..", "..", "modelfile", "testdata", "container.yaml")
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand(&stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

func TestRun_JSON(t *testing.T) {
	out, _, err := execute(t, "run", tankFile, "--format", "json", "--workers", "3")
	require.NoError(t, err)

	var doc render.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, render.StateGraphTitle, doc.Title)
	assert.Len(t, doc.Nodes, 12)
	assert.NotEmpty(t, doc.Edges)
}

func TestRun_OutputStatsAndMetrics(t *testing.T) {
	dir := t.TempDir()
	dot := filepath.Join(dir, "tank.dot")
	prom := filepath.Join(dir, "metrics.prom")

	out, errOut, err := execute(t, "run", tankFile, "-o", dot, "--stats", "--metrics", prom)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "ENVISIONMENT tank")

	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.Contains(t, string(data), "digraph envision {")

	data, err = os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), "envision_build_candidates_total 54")
	assert.Contains(t, string(data), `envision_build_runs_total{outcome="ok"} 1`)
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"missing model", []string{"run"}},
		{"missing file", []string{"run", "nope.yaml"}},
		{"unknown format", []string{"run", tankFile, "--format", "png"}},
		{"ceiling", []string{"run", tankFile, "--max-candidates", "10"}},
		{"bad log level", []string{"run", tankFile, "--log-level", "loud"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestReach(t *testing.T) {
	out, _, err := execute(t, "reach", tankFile, "--from", "I=+,1 V=0,1", "--format", "mermaid")
	require.NoError(t, err)
	assert.Regexp(t, `\[\*\] --> s\d+`, out)
	assert.Contains(t, out, `state "I|+  1`)

	_, _, err = execute(t, "reach", tankFile, "--from", "I=+,1 V=0,-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not legal")

	_, _, err = execute(t, "reach", tankFile)
	assert.Error(t, err, "--from is required")
}

func TestAnalyze(t *testing.T) {
	out, _, err := execute(t, "analyze", containerFile)
	require.NoError(t, err)
	assert.Regexp(t, `states\s+\d+`, out)
	assert.Regexp(t, `steady\s+\d+`, out)
	assert.Contains(t, out, "I=0,0 V=0,0 O=0,0")

	help, _, err := execute(t, "analyze", "--help")
	require.NoError(t, err)
	assert.Contains(t, help, "cycles found by depth-first search")
	assert.Contains(t, help, "DFS back edge")
}

func TestModelShowAndPlot(t *testing.T) {
	out, _, err := execute(t, "model", "show", containerFile)
	require.NoError(t, err)
	assert.Contains(t, out, "CAUSAL MODEL container")
	assert.Contains(t, out, "V(max) = O(max)")

	out, _, err = execute(t, "model", "plot", containerFile, "-f", "mermaid")
	require.NoError(t, err)
	assert.Contains(t, out, "title: "+render.CausalModelTitle)
	assert.Contains(t, out, "q1 --> q2 : P+1")
	assert.Contains(t, out, "q1 --> q2 : V(max=max)")
}

func TestWatchFile_RebuildsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	ctx, cancel := context.WithCancel(t.Context())
	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, 10*time.Millisecond, logging.Discard(), func() error {
			calls.Add(1)
			return nil
		})
	}()

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("b"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watchFile did not stop after cancel")
	}
}

func TestModelGen_ThenRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.yaml")
	_, _, err := execute(t, "model", "gen", "chain", "-n", "3", "-o", path)
	require.NoError(t, err)

	gen, _, err := execute(t, "run", path, "--format", "json")
	require.NoError(t, err)
	ref, _, err := execute(t, "run", containerFile, "--format", "json")
	require.NoError(t, err)

	var a, b render.Document
	require.NoError(t, json.Unmarshal([]byte(gen), &a))
	require.NoError(t, json.Unmarshal([]byte(ref), &b))
	assert.Len(t, a.Nodes, len(b.Nodes))
	assert.Len(t, a.Edges, len(b.Edges))

	out, _, err := execute(t, "model", "gen", "random", "-n", "4", "--p", "1", "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "name: random4")
	assert.Contains(t, out, "proportionals:")

	_, _, err = execute(t, "model", "gen", "torus")
	assert.Error(t, err)
}
