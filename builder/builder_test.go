package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/envision/builder"
	"github.com/katalvlaran/envision/envision"
	"github.com/katalvlaran/envision/internal/fixtures"
	"github.com/katalvlaran/envision/quantity"
)

func TestChain_ContainerShape(t *testing.T) {
	m, err := builder.BuildModel("chain3", nil, builder.Chain(3))
	require.NoError(t, err)

	assert.Equal(t, 3, m.Len())
	assert.True(t, m.Quantity(0).Exogenous)
	assert.Equal(t, []quantity.Influence{{Source: "A", Target: "B", Weight: 1}, {Source: "C", Target: "B", Weight: -1}}, m.Influences())
	assert.Equal(t, []quantity.Proportional{{Source: "B", Target: "C", Weight: 1}}, m.Proportionals())
	assert.Equal(t, []quantity.Correspondence{
		{Q1: "B", M1: "max", Q2: "C", M2: "max"},
		{Q1: "B", M1: "0", Q2: "C", M2: "0"},
	}, m.Correspondences())

	// Same state space as the hand-written container model.
	got, err := envision.Build(t.Context(), m)
	require.NoError(t, err)
	want, err := envision.Build(t.Context(), fixtures.Container())
	require.NoError(t, err)
	assert.Equal(t, want.Stats.Nodes, got.Stats.Nodes)
	assert.Equal(t, want.Stats.Edges, got.Stats.Edges)
}

func TestChain_Sizes(t *testing.T) {
	m, err := builder.BuildModel("chain2", nil, builder.Chain(2))
	require.NoError(t, err)
	assert.Len(t, m.Influences(), 1)
	assert.Empty(t, m.Proportionals())
	assert.Empty(t, m.Correspondences())

	m, err = builder.BuildModel("chain5", []builder.BuilderOption{builder.WithSymbNumb("Q")}, builder.Chain(5))
	require.NoError(t, err)
	assert.Equal(t, "Q4", m.Quantity(4).Name)
	assert.Len(t, m.Proportionals(), 3)
	assert.Len(t, m.Correspondences(), 6)
	assert.NoError(t, m.Validate())
}

func TestChain_CustomSpaces(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithLandmarks("0", "low", "high", "full"),
		builder.WithDerivatives(0, 1),
	}
	m, err := builder.BuildModel("custom", opts, builder.Chain(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "low", "high", "full"}, m.Quantity(1).MagnitudeNames())
	assert.Equal(t, []int{0, 1}, m.Quantity(0).Derivatives)
	assert.Equal(t, "full", m.Correspondences()[0].M1)
}

func TestStar(t *testing.T) {
	m, err := builder.BuildModel("star", []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Star(4))
	require.NoError(t, err)
	assert.False(t, m.Quantity(0).Exogenous)
	assert.True(t, m.Quantity(3).Exogenous)
	weights := make([]int, 0, 3)
	for _, r := range m.Influences() {
		assert.Equal(t, "A", r.Target)
		weights = append(weights, r.Weight)
	}
	assert.Equal(t, []int{1, -1, 1}, weights)
}

func TestRandom(t *testing.T) {
	build := func(seed int64, p float64) *quantity.Model {
		m, err := builder.BuildModel("rnd", []builder.BuilderOption{builder.WithSeed(seed)}, builder.Random(6, p))
		require.NoError(t, err)
		return m
	}
	assert.Equal(t, build(7, 0.5).Proportionals(), build(7, 0.5).Proportionals(), "seeded runs repeat")
	assert.Len(t, build(1, 1).Proportionals(), 15)
	assert.Empty(t, build(1, 0).Proportionals())
	for _, r := range build(3, 0.6).Proportionals() {
		assert.Less(t, r.Source, r.Target)
	}
}

func TestBuildModel_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		cons []builder.Constructor
		want error
	}{
		{"chain too small", nil, []builder.Constructor{builder.Chain(1)}, builder.ErrTooFewQuantities},
		{"star too small", nil, []builder.Constructor{builder.Star(1)}, builder.ErrTooFewQuantities},
		{"random too small", []builder.BuilderOption{builder.WithSeed(1)}, []builder.Constructor{builder.Random(0, 0.5)}, builder.ErrTooFewQuantities},
		{"bad probability", []builder.BuilderOption{builder.WithSeed(1)}, []builder.Constructor{builder.Random(3, 1.5)}, builder.ErrInvalidProbability},
		{"no rng", nil, []builder.Constructor{builder.Random(3, 0.5)}, builder.ErrNeedRandSource},
		{"nil constructor", nil, []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"duplicate names", nil, []builder.Constructor{builder.Chain(2), builder.Star(2)}, quantity.ErrDuplicateQuantity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildModel("bad", tc.opts, tc.cons...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithLandmarks("only") })
	assert.Panics(t, func() { builder.WithDerivatives() })
}

func TestIDFns(t *testing.T) {
	cases := []struct {
		idx  int
		want string
	}{
		{0, "A"}, {25, "Z"}, {26, "AA"}, {701, "ZZ"}, {702, "AAA"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, builder.ExcelColumnIDFn(tc.idx))
	}
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Equal(t, "v12", builder.SymbolNumberIDFn("v")(12))
}
