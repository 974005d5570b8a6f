package modelfile_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/envision/internal/fixtures"
	"github.com/katalvlaran/envision/modelfile"
	"github.com/katalvlaran/envision/quantity"
)

func TestLoad_MatchesFixtures(t *testing.T) {
	cases := []struct {
		file string
		want *quantity.Model
	}{
		{"tank.yaml", fixtures.Tank()},
		{"container.yaml", fixtures.Container()},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			m, _, err := modelfile.Load(filepath.Join("testdata", tc.file))
			require.NoError(t, err)
			assert.Equal(t, tc.want.Name(), m.Name())
			assert.Equal(t, tc.want.Quantities(), m.Quantities())
			assert.Equal(t, tc.want.Influences(), m.Influences())
			assert.Equal(t, tc.want.Proportionals(), m.Proportionals())
			assert.Equal(t, tc.want.Correspondences(), m.Correspondences())
		})
	}
}

func TestLoad_RunConfigAndDefaultName(t *testing.T) {
	_, run, err := modelfile.Load(filepath.Join("testdata", "container.yaml"))
	require.NoError(t, err)
	assert.Equal(t, modelfile.RunConfig{Workers: 2, MaxCandidates: 10000}, run)

	m, run, err := modelfile.Load(filepath.Join("testdata", "advanced.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "advanced", m.Name())
	assert.Equal(t, modelfile.RunConfig{}, run)
	assert.Equal(t, 5, m.Len())
	assert.Len(t, m.Correspondences(), 6)

	v := m.Quantity(1)
	assert.Equal(t, quantity.Positive, v.Magnitudes[2].Sign)
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := modelfile.Load(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, modelfile.ErrInvalidFile))
}

func TestParse_ExplicitSign(t *testing.T) {
	src := `
name: signed
quantities:
  - name: T
    magnitudes: [{name: cold, sign: "-"}, {name: zero, sign: "0"}, warm]
    derivatives: [0]
`
	m, _, err := modelfile.Parse([]byte(src))
	require.NoError(t, err)
	q := m.Quantity(0)
	assert.Equal(t, []quantity.Sign{quantity.Negative, quantity.Zero, quantity.Positive},
		[]quantity.Sign{q.Magnitudes[0].Sign, q.Magnitudes[1].Sign, q.Magnitudes[2].Sign})
}

func TestParse_ZeroWeight(t *testing.T) {
	src := `
quantities:
  - name: A
    magnitudes: ["0", "+"]
    derivatives: [-1, 0, 1]
  - name: B
    magnitudes: ["0", "+"]
    derivatives: [-1, 0, 1]
influences:
  - {from: A, to: B, weight: 0}
proportionals:
  - {from: A, to: B}
`
	m, _, err := modelfile.Parse([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []quantity.Influence{{Source: "A", Target: "B", Weight: 0}}, m.Influences())
	assert.Equal(t, []quantity.Proportional{{Source: "A", Target: "B", Weight: 0}}, m.Proportionals())
}

func TestParse_Invalid(t *testing.T) {
	const base = `
quantities:
  - name: A
    magnitudes: ["0", "+"]
    derivatives: [0, 1]
`
	cases := []struct {
		name  string
		src   string
		cause error
	}{
		{"empty document", "", nil},
		{"no quantities", "name: x\n", nil},
		{"unknown key", base + "colour: red\n", nil},
		{"bad sign", strings.Replace(base, `"+"`, `{name: p, sign: "?"}`, 1), nil},
		{"duplicate derivative", strings.Replace(base, "[0, 1]", "[1, 1]", 1), nil},
		{"negative workers", base + "run: {workers: -1}\n", nil},
		{"unknown quantity", base + "influences:\n  - {from: A, to: B, weight: 1}\n", quantity.ErrUnknownQuantity},
		{"unknown magnitude", base + "correspondences:\n  - {q1: A, m1: max, q2: A, m2: \"0\"}\n", quantity.ErrUnknownMagnitude},
		{"duplicate magnitude", strings.Replace(base, `["0", "+"]`, `["0", "0"]`, 1), quantity.ErrDuplicateMagnitude},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := modelfile.Parse([]byte(tc.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, modelfile.ErrInvalidFile)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	signed := quantity.NewModel("signed")
	require.NoError(t, signed.AddQuantity("T", []quantity.Landmark{
		{Name: "cold", Sign: quantity.Negative},
		{Name: "zero", Sign: quantity.Positive},
	}, []int{0}))

	run := modelfile.RunConfig{Workers: 3}
	for _, m := range []*quantity.Model{fixtures.Tank(), fixtures.Container(), signed} {
		t.Run(m.Name(), func(t *testing.T) {
			data, err := modelfile.Marshal(m, run)
			require.NoError(t, err)

			got, gotRun, err := modelfile.Parse(data)
			require.NoError(t, err, string(data))
			assert.Equal(t, run, gotRun)
			assert.Equal(t, m.Name(), got.Name())
			assert.Equal(t, m.Quantities(), got.Quantities())
			assert.Equal(t, m.Influences(), got.Influences())
			assert.Equal(t, m.Proportionals(), got.Proportionals())
			assert.Equal(t, m.Correspondences(), got.Correspondences())
		})
	}
}

func TestMarshal_InferredSignsStayImplicit(t *testing.T) {
	data, err := modelfile.Marshal(fixtures.Tank(), modelfile.RunConfig{})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sign:")
	assert.NotContains(t, string(data), "run:")
}
