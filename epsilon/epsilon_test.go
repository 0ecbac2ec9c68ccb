package epsilon_test

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
	"github.com/DarkLordRowan/shanks-university-sub001/epsilon"
	"github.com/DarkLordRowan/shanks-university-sub001/series"
)

func algorithms(src accel.Source[float64]) map[string]accel.Algorithm[float64] {
	return map[string]accel.Algorithm[float64]{
		"wynn":    epsilon.NewWynn[float64](src),
		"patched": epsilon.NewPatched[float64](src),
		"robust":  epsilon.NewRobust[float64](src),
		"eat":     epsilon.NewAitkenTheta[float64](src),
	}
}

// TestEpsilon_Identity verifies order 0 returns S(n) bit for bit.
func TestEpsilon_Identity(t *testing.T) {
	src := series.Basel[float64]()
	for name, alg := range algorithms(src) {
		for n := 0; n < 6; n++ {
			want, err := src.PartialSum(n)
			require.NoError(t, err)
			got, err := alg.Estimate(n, 0)
			require.NoError(t, err, name)
			assert.Equal(t, want, got, "%s n=%d", name, n)
		}
	}
}

// TestEpsilon_NegativeArgs verifies negative n and order are domain errors.
func TestEpsilon_NegativeArgs(t *testing.T) {
	for name, alg := range algorithms(series.Basel[float64]()) {
		_, err := alg.Estimate(-1, 1)
		assert.ErrorIs(t, err, accel.ErrDomain, name)
		_, err = alg.Estimate(5, -2)
		assert.ErrorIs(t, err, accel.ErrDomain, name)
	}
}

// TestWynn_AitkenAtOrderOne verifies ε_2 equals the Shanks order-1 value on x^n.
func TestWynn_AitkenAtOrderOne(t *testing.T) {
	geo, err := series.Geometric(0.5)
	require.NoError(t, err)
	for n := 0; n < 5; n++ {
		got, err := epsilon.NewWynn[float64](geo).Estimate(n, 1)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, got, 1e-12, "n=%d", n)
	}
}

// TestWynn_MonotonicImprovement verifies the error on ln 2 keeps shrinking
// over consecutive orders.
func TestWynn_MonotonicImprovement(t *testing.T) {
	src := series.AlternatingHarmonic[float64]()
	for _, alg := range []accel.Algorithm[float64]{epsilon.NewWynn[float64](src), epsilon.NewPatched[float64](src), epsilon.NewRobust[float64](src)} {
		prev := math.Inf(1)
		for order := 1; order <= 5; order++ {
			got, err := alg.Estimate(0, order)
			require.NoError(t, err)
			e := math.Abs(got - math.Ln2)
			assert.Less(t, e, prev, "order %d", order)
			prev = e
		}
		assert.Less(t, prev, 1e-8)
	}
}

// TestWynn_GeometricOverflow verifies the naive and patched tables report the
// genuine singularity of ε_3 on an exact geometric series.
func TestWynn_GeometricOverflow(t *testing.T) {
	geo, err := series.Geometric(0.5)
	require.NoError(t, err)

	_, err = epsilon.NewWynn[float64](geo).Estimate(0, 2)
	assert.ErrorIs(t, err, accel.ErrOverflow)
	_, err = epsilon.NewPatched[float64](geo).Estimate(0, 2)
	assert.ErrorIs(t, err, accel.ErrOverflow)
}

// TestPatched_MatchesNaive verifies the singular rule is inert on regular tables.
func TestPatched_MatchesNaive(t *testing.T) {
	for _, src := range []series.Known[float64]{series.AlternatingHarmonic[float64](), series.Basel[float64](), series.Leibniz[float64]()} {
		for order := 1; order <= 4; order++ {
			a, err := epsilon.NewWynn[float64](src).Estimate(3, order)
			require.NoError(t, err)
			b, err := epsilon.NewPatched[float64](src).Estimate(3, order)
			require.NoError(t, err)
			assert.Equal(t, a, b, "%s order %d", src.Name, order)
		}
	}
}

// TestPatched_SingularRule verifies an isolated pole is jumped over and the
// estimate matches the limit of the table as the coincidence is lifted.
func TestPatched_SingularRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "accel")
	defer teardown()

	tests := []struct {
		name  string
		terms []float64
		order int
		want  float64
	}{
		// a(2) = a(3): ε_1^{(1)} = ε_1^{(2)}, pole in column 2
		{"equal terms order 2", []float64{1, .5, .3, .3, .1, .05, .02, .01, .004}, 2, 2.7},
		{"equal terms order 3", []float64{1, .5, .3, .3, .1, .05, .02, .01, .004, .002, .001}, 3, 2.2856164383561643},
		// a(3) = 0: S(2) = S(3), pole in column 1
		{"zero term order 2", []float64{1, -.5, .25, 0, .1, -.05, .02, -.01, .004}, 2, 0.25},
		{"zero term order 3", []float64{1, -.5, .25, 0, .1, -.05, .02, -.01, .004, -.002, .001}, 3, 0.805921052631579},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := series.FromTerms(tc.terms)
			_, err := epsilon.NewWynn[float64](src).Estimate(0, tc.order)
			require.ErrorIs(t, err, accel.ErrOverflow)

			got, err := epsilon.NewPatched[float64](src).Estimate(0, tc.order)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

// TestPatched_PoleAtResult verifies a pole landing on the result cell is an
// overflow rather than a value.
func TestPatched_PoleAtResult(t *testing.T) {
	src := series.FromTerms([]float64{1, .5, .3, .3, .1})
	_, err := epsilon.NewPatched[float64](src).Estimate(1, 1)
	assert.ErrorIs(t, err, accel.ErrOverflow)
}

// TestRobust_RecoversGeometric verifies the robust variant stops at the
// converged column instead of dividing by zero.
func TestRobust_RecoversGeometric(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "accel")
	defer teardown()

	geo, err := series.Geometric(0.5)
	require.NoError(t, err)
	for order := 1; order <= 4; order++ {
		got, errEst, err := epsilon.NewRobust[float64](geo).EstimateWithError(0, order)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, got, 1e-12, "order %d", order)
		assert.GreaterOrEqual(t, errEst, 0.0)
	}
}

// TestRobust_AgreesWithNaive verifies the cross rule reproduces the rhombus
// rule on a regular table, and the error estimate brackets the true error.
func TestRobust_AgreesWithNaive(t *testing.T) {
	src := series.AlternatingHarmonic[float64]()
	for order := 1; order <= 5; order++ {
		naive, err := epsilon.NewWynn[float64](src).Estimate(0, order)
		require.NoError(t, err)
		got, errEst, err := epsilon.NewRobust[float64](src).EstimateWithError(0, order)
		require.NoError(t, err)
		assert.InDelta(t, naive, got, 1e-10, "order %d", order)
		assert.GreaterOrEqual(t, errEst, math.Abs(got-math.Ln2), "order %d", order)
	}
}

// TestRobust_Threshold verifies a huge threshold stops the table at once and
// reports the newest partial sum with an infinite error.
func TestRobust_Threshold(t *testing.T) {
	src := series.AlternatingHarmonic[float64]()
	got, errEst, err := epsilon.NewRobust[float64](src, epsilon.WithThreshold(1e300)).EstimateWithError(0, 3)
	require.NoError(t, err)
	s6, err := src.PartialSum(6)
	require.NoError(t, err)
	assert.Equal(t, s6, got)
	assert.True(t, math.IsInf(errEst, 1))

	assert.Panics(t, func() { epsilon.WithThreshold(-1) })
	assert.Panics(t, func() { epsilon.WithThreshold(math.NaN()) })
}

// TestAitkenTheta_FewTerms verifies the n < 4 fallback and its strict form.
func TestAitkenTheta_FewTerms(t *testing.T) {
	src := series.Basel[float64]()
	for n := 0; n < epsilon.MinTerms; n++ {
		got, err := epsilon.NewAitkenTheta[float64](src).Estimate(n, 1)
		require.NoError(t, err)
		assert.Equal(t, 0.0, got, "n=%d", n)

		_, err = epsilon.NewAitkenTheta[float64](src, epsilon.WithStrict()).Estimate(n, 1)
		assert.ErrorIs(t, err, accel.ErrDomain, "n=%d", n)
	}
}

// TestAitkenTheta_Logarithmic verifies the hybrid beats plain summation by
// orders of magnitude on ζ(2), where plain ε stalls.
func TestAitkenTheta_Logarithmic(t *testing.T) {
	src := series.Basel[float64]()
	s8, err := src.PartialSum(8)
	require.NoError(t, err)
	raw := math.Abs(s8 - src.Limit)

	for _, class := range []int{1, 2} {
		got, err := epsilon.NewAitkenTheta[float64](src).Estimate(8, class)
		require.NoError(t, err)
		assert.Less(t, math.Abs(got-src.Limit), raw/1000, "class %d", class)
	}

	got, err := epsilon.NewAitkenTheta[float64](src).Estimate(12, 1)
	require.NoError(t, err)
	assert.InDelta(t, src.Limit, got, 1e-7)

	got, err = epsilon.NewAitkenTheta[float64](src).Estimate(12, 3)
	require.NoError(t, err)
	assert.Less(t, math.Abs(got-src.Limit), raw)
}
