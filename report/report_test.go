package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/envision/envision"
	"github.com/katalvlaran/envision/internal/fixtures"
	"github.com/katalvlaran/envision/legality"
	"github.com/katalvlaran/envision/report"
)

func TestWrite_Container(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, fixtures.Container()))
	out := buf.String()

	for _, want := range []string{
		"CAUSAL MODEL container",
		"QUANTITIES",
		"INFLUENCES",
		"PROPORTIONALS",
		"VALUE CORRESPONDENCES",
		"[0 + max]",
		"[0 -1 1]",
		"V(max) = O(max)",
		"V(0) = O(0)",
	} {
		assert.Contains(t, out, want)
	}
	assert.Regexp(t, `I\s+V\s+\+1`, out)
	assert.Regexp(t, `O\s+V\s+-1`, out)
	assert.Regexp(t, `I\s+\[0 \+\]\s+\[-1 0 1\]\s+yes`, out)
	assert.NotContains(t, out, "\x1b[", "plain writers get no escape codes")
}

func TestWriteStats(t *testing.T) {
	st := envision.Stats{
		RunID:      "run-1",
		Workers:    2,
		Candidates: 54,
		Rejected:   map[legality.Stage]uint64{legality.StageBounds: 40, legality.StageInfluence: 2},
		Nodes:      12,
		Edges:      30,
		Terminals:  0,
		Duration:   1500 * time.Microsecond,
	}
	var buf bytes.Buffer
	require.NoError(t, report.WriteStats(&buf, fixtures.Tank(), st))
	out := buf.String()

	assert.Contains(t, out, "ENVISIONMENT tank")
	assert.Contains(t, out, "run-1")
	assert.Regexp(t, `candidates\s+54`, out)
	assert.Regexp(t, legality.StageBounds.String()+`\s+40`, out)
	assert.Regexp(t, `states\s+12`, out)
	assert.Regexp(t, `transitions\s+30`, out)
	assert.Contains(t, out, "1.5ms")
	assert.Contains(t, out, "╭", "summary is boxed")
}
