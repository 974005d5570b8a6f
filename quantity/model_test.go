package quantity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/envision/quantity"
)

func TestLandmarks_InferSigns(t *testing.T) {
	cases := []struct {
		names []string
		want  []quantity.Sign
	}{
		{[]string{"0", "+"}, []quantity.Sign{quantity.Zero, quantity.Positive}},
		{[]string{"0", "+", "max"}, []quantity.Sign{quantity.Zero, quantity.Positive, quantity.Positive}},
		{[]string{"-", "0", "+"}, []quantity.Sign{quantity.Negative, quantity.Zero, quantity.Positive}},
		{[]string{"min", "mid", "max"}, []quantity.Sign{quantity.Zero, quantity.Positive, quantity.Positive}},
		{[]string{"-max", "-", "0"}, []quantity.Sign{quantity.Negative, quantity.Negative, quantity.Zero}},
	}
	for _, tc := range cases {
		ls := quantity.Landmarks(tc.names...)
		require.Len(t, ls, len(tc.want))
		for i, l := range ls {
			assert.Equal(t, tc.names[i], l.Name)
			assert.Equal(t, tc.want[i], l.Sign, "sign of %q in %v", l.Name, tc.names)
		}
	}
}

func TestModel_AddQuantityErrors(t *testing.T) {
	cases := []struct {
		name string
		mags []quantity.Landmark
		ds   []int
		want error
	}{
		{"", quantity.Landmarks("0"), quantity.Directions, quantity.ErrEmptyName},
		{"A", nil, quantity.Directions, quantity.ErrEmptyMagnitudes},
		{"A", quantity.Landmarks("0", "0"), quantity.Directions, quantity.ErrDuplicateMagnitude},
		{"A", quantity.Landmarks("0", ""), quantity.Directions, quantity.ErrEmptyName},
		{"A", []quantity.Landmark{{Name: "x", Sign: 7}}, quantity.Directions, quantity.ErrBadSign},
		{"A", quantity.Landmarks("0"), nil, quantity.ErrEmptyDerivatives},
		{"A", quantity.Landmarks("0"), []int{0, 0}, quantity.ErrDuplicateDerivative},
	}
	for _, tc := range cases {
		m := quantity.NewModel("t")
		err := m.AddQuantity(tc.name, tc.mags, tc.ds)
		assert.ErrorIs(t, err, tc.want)
		assert.Equal(t, 0, m.Len())
	}

	m := quantity.NewModel("t")
	require.NoError(t, m.AddQuantity("A", quantity.Landmarks("0", "+"), quantity.Directions))
	assert.ErrorIs(t, m.AddQuantity("A", quantity.Landmarks("0"), quantity.Directions), quantity.ErrDuplicateQuantity)
}

func TestModel_RelationsFailFast(t *testing.T) {
	m := quantity.NewModel("t")
	require.NoError(t, m.AddQuantity("A", quantity.Landmarks("0", "+"), quantity.Directions))
	require.NoError(t, m.AddQuantity("B", quantity.Landmarks("0", "+", "max"), quantity.Directions))

	assert.ErrorIs(t, m.AddInfluence("A", "X", 1), quantity.ErrUnknownQuantity)
	assert.ErrorIs(t, m.AddInfluence("X", "B", 1), quantity.ErrUnknownQuantity)
	assert.ErrorIs(t, m.AddProportional("A", "Y", 1), quantity.ErrUnknownQuantity)
	assert.ErrorIs(t, m.AddCorrespondence("A", "0", "Z", "0"), quantity.ErrUnknownQuantity)
	assert.ErrorIs(t, m.AddCorrespondence("A", "max", "B", "max"), quantity.ErrUnknownMagnitude)

	assert.Empty(t, m.Influences())
	assert.Empty(t, m.Proportionals())
	assert.Empty(t, m.Correspondences())

	require.NoError(t, m.AddInfluence("A", "B", 1))
	require.NoError(t, m.AddProportional("B", "A", -1))
	require.NoError(t, m.AddCorrespondence("A", "+", "B", "max"))
	require.NoError(t, m.Validate())

	assert.Equal(t, []quantity.Influence{{Source: "A", Target: "B", Weight: 1}}, m.Influences())
	assert.Equal(t, "P-1", m.Proportionals()[0].Tag())
	assert.Equal(t, "I+1", m.Influences()[0].Tag())
	assert.Equal(t, "V(+=max)", m.Correspondences()[0].Tag())
}

func TestModel_ZeroWeightRelations(t *testing.T) {
	m := quantity.NewModel("t")
	require.NoError(t, m.AddQuantity("A", quantity.Landmarks("0", "+"), quantity.Directions))
	require.NoError(t, m.AddQuantity("B", quantity.Landmarks("0", "+"), quantity.Directions))

	require.NoError(t, m.AddInfluence("A", "B", 0))
	require.NoError(t, m.AddProportional("A", "B", 0))
	require.NoError(t, m.Validate())
	assert.Equal(t, 0, m.Influences()[0].Weight)
	assert.Equal(t, 0, m.Proportionals()[0].Weight)
}

func TestModel_OrderAndCopies(t *testing.T) {
	m := quantity.NewModel("order")
	for _, n := range []string{"Z", "A", "M"} {
		require.NoError(t, m.AddQuantity(n, quantity.Landmarks("0", "+"), []int{0, 1}))
	}
	qs := m.Quantities()
	require.Len(t, qs, 3)
	assert.Equal(t, "Z", qs[0].Name)
	assert.Equal(t, "A", qs[1].Name)
	assert.Equal(t, "M", qs[2].Name)

	// mutating a copy must not leak into the model
	qs[0].Magnitudes[0].Name = "mutated"
	qs[0].Derivatives[0] = 99
	assert.Equal(t, "0", m.Quantity(0).Magnitudes[0].Name)
	assert.Equal(t, 0, m.Quantity(0).Derivatives[0])

	i, ok := m.Index("M")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = m.Index("nope")
	assert.False(t, ok)
}

func TestModel_CandidateCount(t *testing.T) {
	m := quantity.NewModel("count")
	n, err := m.CandidateCount()
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, m.AddQuantity("I", quantity.Landmarks("0", "+"), quantity.Directions))
	require.NoError(t, m.AddQuantity("V", quantity.Landmarks("0", "+", "max"), quantity.Directions))
	require.NoError(t, m.AddQuantity("O", quantity.Landmarks("0", "+", "max"), quantity.Directions))
	n, err = m.CandidateCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(6*9*9), n)

	big := quantity.NewModel("big")
	ds := make([]int, 1<<16)
	for i := range ds {
		ds[i] = i - (1 << 15)
	}
	for i := 0; i < 5; i++ {
		require.NoError(t, big.AddQuantity(string(rune('a'+i)), quantity.Landmarks("0"), ds))
	}
	_, err = big.CandidateCount()
	assert.ErrorIs(t, err, quantity.ErrCountOverflow)
}

func TestQuantity_Helpers(t *testing.T) {
	q := quantity.Quantity{Name: "V", Magnitudes: quantity.Landmarks("0", "+", "max"), Derivatives: []int{0, -1, 1}}
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, 2, q.MagnitudeIndex("max"))
	assert.Equal(t, -1, q.MagnitudeIndex("huge"))
	assert.True(t, q.InRange(0))
	assert.False(t, q.InRange(3))
	assert.False(t, q.InRange(-1))
	assert.True(t, q.HasDerivative(-1))
	assert.False(t, q.HasDerivative(2))
	assert.Equal(t, []string{"0", "+", "max"}, q.MagnitudeNames())
	assert.Equal(t, "+", quantity.Positive.String())
	assert.Equal(t, "-", quantity.Negative.String())
}

func TestExogenousOption(t *testing.T) {
	m := quantity.NewModel("t")
	require.NoError(t, m.AddQuantity("I", quantity.Landmarks("0", "+"), quantity.Directions, quantity.Exogenous()))
	require.NoError(t, m.AddQuantity("V", quantity.Landmarks("0", "+"), quantity.Directions))
	assert.True(t, m.Quantity(0).Exogenous)
	assert.False(t, m.Quantity(1).Exogenous)
}
