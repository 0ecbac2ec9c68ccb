package remainder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
	"github.com/DarkLordRowan/shanks-university-sub001/remainder"
	"github.com/DarkLordRowan/shanks-university-sub001/series"
)

// TestWeight_Variants checks each variant against its closed form on a(m) = 1/(m+1).
func TestWeight_Variants(t *testing.T) {
	src := series.FromFunc(func(n int) float64 { return 1 / float64(n+1) })
	// n=2, order=1 gives m=3: a(3)=1/4, a(4)=1/5, a(5)=1/6
	cases := []struct {
		v    remainder.Variant
		want float64
	}{
		{remainder.U, 1 / ((1.0 + 3) * 0.25)},
		{remainder.T, 4},
		{remainder.TWave, 5},
		{remainder.V, (0.2 - 0.25) / (0.25 * 0.2)},
		{remainder.VWave, (1.0/6 - 0.2) / (0.2 / 6)},
	}
	for _, c := range cases {
		w, err := remainder.Weight[float64](c.v, src, 2, 1, 1)
		require.NoError(t, err, c.v.String())
		assert.InDelta(t, c.want, w, 1e-12, c.v.String())
	}
}

// TestWeights_MatchesWeight verifies the batched form agrees with single evaluation.
func TestWeights_MatchesWeight(t *testing.T) {
	src := series.AlternatingHarmonic[float64]()
	for v := remainder.U; v <= remainder.VWave; v++ {
		ws, err := remainder.Weights[float64](v, src, 3, 4, 2)
		require.NoError(t, err)
		for j, w := range ws {
			single, err := remainder.Weight[float64](v, src, 3, j, 2)
			require.NoError(t, err)
			assert.Equal(t, single, w, "%s j=%d", v, j)
		}
	}
}

// TestWeight_ZeroTerm verifies a vanishing term is an overflow, not an Inf.
func TestWeight_ZeroTerm(t *testing.T) {
	src := series.FromTerms([]float64{1, 0, 1, 1})
	_, err := remainder.Weight[float64](remainder.T, src, 0, 1, 1)
	assert.ErrorIs(t, err, accel.ErrOverflow)

	// constant terms make the v-variant difference vanish: weight 0 is finite
	w, err := remainder.Weight[float64](remainder.V, src, 2, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w)
}

// TestWeight_Domain verifies bad arguments are domain errors.
func TestWeight_Domain(t *testing.T) {
	src := series.Basel[float64]()
	_, err := remainder.Weight[float64](remainder.T, src, -1, 0, 1)
	assert.ErrorIs(t, err, accel.ErrDomain)
	_, err = remainder.Weight[float64](remainder.Variant(99), src, 0, 0, 1)
	assert.ErrorIs(t, err, accel.ErrDomain)
}

// TestParse verifies names round-trip through String.
func TestParse(t *testing.T) {
	for v := remainder.U; v <= remainder.VWave; v++ {
		got, err := remainder.Parse(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	got, err := remainder.Parse(" T-Wave ")
	require.NoError(t, err)
	assert.Equal(t, remainder.TWave, got)

	_, err = remainder.Parse("w")
	assert.ErrorIs(t, err, accel.ErrDomain)
	assert.Equal(t, "Variant(9)", remainder.Variant(9).String())
}
