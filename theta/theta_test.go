package theta_test

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
	"github.com/DarkLordRowan/shanks-university-sub001/levin"
	"github.com/DarkLordRowan/shanks-university-sub001/remainder"
	"github.com/DarkLordRowan/shanks-university-sub001/series"
	"github.com/DarkLordRowan/shanks-university-sub001/theta"
)

func algorithms(src accel.Source[float64]) map[string]accel.Algorithm[float64] {
	return map[string]accel.Algorithm[float64]{
		"brezinski": theta.NewBrezinski(src),
		"lubkin":    theta.NewLubkin(src),
		"fs1":       theta.NewFordSidi1(src),
		"fs2":       theta.NewFordSidi2(src),
		"fs3":       theta.NewFordSidi3(src),
	}
}

func geometric(t *testing.T) series.Known[float64] {
	geo, err := series.Geometric(0.5)
	require.NoError(t, err)
	return geo
}

// TestTheta_Identity verifies order 0 returns S(n) bit for bit, n = 0 included.
func TestTheta_Identity(t *testing.T) {
	src := series.Basel[float64]()
	for name, alg := range algorithms(src) {
		for n := 0; n < 5; n++ {
			want, err := src.PartialSum(n)
			require.NoError(t, err)
			got, err := alg.Estimate(n, 0)
			require.NoError(t, err, name)
			assert.Equal(t, want, got, "%s n=%d", name, n)
		}
	}
}

// TestTheta_Domain verifies n = 0 and negative arguments are domain errors.
func TestTheta_Domain(t *testing.T) {
	src := series.Basel[float64]()
	for name, alg := range algorithms(src) {
		_, err := alg.Estimate(0, 2)
		assert.ErrorIs(t, err, accel.ErrDomain, name)
		_, err = alg.Estimate(-1, 2)
		assert.ErrorIs(t, err, accel.ErrDomain, name)
		_, err = alg.Estimate(2, -1)
		assert.ErrorIs(t, err, accel.ErrDomain, name)
	}
}

// TestBrezinski_Geometric verifies θ_2 is exact on a geometric series.
func TestBrezinski_Geometric(t *testing.T) {
	got, err := theta.NewBrezinski[float64](geometric(t)).Estimate(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-15)
}

// TestBrezinski_OddOrder verifies odd orders are rejected.
func TestBrezinski_OddOrder(t *testing.T) {
	_, err := theta.NewBrezinski[float64](series.Basel[float64]()).Estimate(1, 3)
	assert.ErrorIs(t, err, accel.ErrDomain)
}

// TestBrezinski_Convergence verifies the error shrinks with the order on
// both an alternating and a logarithmic series.
func TestBrezinski_Convergence(t *testing.T) {
	cases := []struct {
		name  string
		src   series.Known[float64]
		order int
		tol   float64
	}{
		{"ln2", series.AlternatingHarmonic[float64](), 8, 1e-12},
		{"zeta2", series.Basel[float64](), 6, 1e-8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			alg := theta.NewBrezinski[float64](tc.src)
			prev := math.Inf(1)
			for order := 2; order <= tc.order; order += 2 {
				got, err := alg.Estimate(1, order)
				require.NoError(t, err)
				e := math.Abs(got - tc.src.Limit)
				assert.Less(t, e, prev, "order=%d", order)
				prev = e
			}
			assert.Less(t, prev, tc.tol)
		})
	}
}

// TestBrezinski_Overflow verifies a repeated partial sum is an overflow.
func TestBrezinski_Overflow(t *testing.T) {
	src := series.FromTerms([]float64{1, 1, 0, 1, 1})
	_, err := theta.NewBrezinski[float64](src).Estimate(1, 2)
	assert.ErrorIs(t, err, accel.ErrOverflow)
}

// TestLubkin_MatchesBrezinski verifies one W step equals θ_2.
func TestLubkin_MatchesBrezinski(t *testing.T) {
	for _, src := range []series.Known[float64]{series.AlternatingHarmonic[float64](), series.Basel[float64]()} {
		for n := 1; n <= 4; n++ {
			w, err := theta.NewLubkin[float64](src).Estimate(n, 1)
			require.NoError(t, err)
			th, err := theta.NewBrezinski[float64](src).Estimate(n, 2)
			require.NoError(t, err)
			assert.InEpsilon(t, th, w, 1e-12, "%s n=%d", src.Name, n)
		}
	}
}

// TestLubkin_Accuracy verifies exactness on a geometric series and the
// accuracy of repeated steps.
func TestLubkin_Accuracy(t *testing.T) {
	got, err := theta.NewLubkin[float64](geometric(t)).Estimate(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-15)

	alt := series.AlternatingHarmonic[float64]()
	got, err = theta.NewLubkin[float64](alt).Estimate(1, 4)
	require.NoError(t, err)
	assert.InDelta(t, alt.Limit, got, 1e-12)

	zeta := series.Basel[float64]()
	got, err = theta.NewLubkin[float64](zeta).Estimate(1, 3)
	require.NoError(t, err)
	assert.InDelta(t, zeta.Limit, got, 1e-8)
}

// TestFordSidi1_Geometric verifies the first order is exact on a geometric series.
func TestFordSidi1_Geometric(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "accel")
	defer teardown()

	alg := theta.NewFordSidi1[float64](geometric(t))
	for n := 1; n <= 4; n++ {
		got, err := alg.Estimate(n, 1)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, got, 1e-14, "n=%d", n)
	}
}

// TestFordSidi1_Accuracy verifies the transform accelerates ln 2.
func TestFordSidi1_Accuracy(t *testing.T) {
	alt := series.AlternatingHarmonic[float64]()
	got, err := theta.NewFordSidi1[float64](alt).Estimate(4, 3)
	require.NoError(t, err)
	assert.InDelta(t, alt.Limit, got, 1e-8)
}

// TestFordSidi1_TooFewTerms verifies n < order is a domain error.
func TestFordSidi1_TooFewTerms(t *testing.T) {
	_, err := theta.NewFordSidi1[float64](series.Basel[float64]()).Estimate(2, 3)
	assert.ErrorIs(t, err, accel.ErrDomain)
}

// TestFordSidi2_Step verifies the Aitken step, the walk back past vanishing
// second differences, and the failure when none is left.
func TestFordSidi2_Step(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "accel")
	defer teardown()

	got, err := theta.NewFordSidi2[float64](geometric(t)).Estimate(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	// Δ²S vanishes at m = 3 and m = 2; m = 1 gives the geometric limit
	src := series.FromTerms([]float64{1, 0.5, 0.25, 0.125, 0.125, 0.125})
	got, err = theta.NewFordSidi2[float64](src).Estimate(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	// only Δ²S(0) is non-zero; the walk ends on the first sum
	src = series.FromTerms([]float64{1, 0.5, 0.25, 0.25, 0.25})
	got, err = theta.NewFordSidi2[float64](src).Estimate(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	flat := series.FromTerms([]float64{1, 1, 1, 1, 1})
	_, err = theta.NewFordSidi2[float64](flat).Estimate(2, 1)
	assert.ErrorIs(t, err, accel.ErrOverflow)

	_, err = theta.NewFordSidi2[float64](flat).Estimate(1, 2)
	assert.ErrorIs(t, err, accel.ErrDomain)
}

// TestFordSidi3_MatchesLevinU verifies the E process with g_i(m) =
// a(m)(m+1)^{2−i} reproduces Levin's u transform with β = 1.
func TestFordSidi3_MatchesLevinU(t *testing.T) {
	for _, src := range []series.Known[float64]{series.AlternatingHarmonic[float64](), series.Basel[float64]()} {
		for k := 1; k <= 6; k++ {
			want, err := levin.NewLevin[float64](src, levin.WithRemainder(remainder.U), levin.WithBeta(1)).Estimate(1, k)
			require.NoError(t, err)
			got, err := theta.NewFordSidi3[float64](src).Estimate(1, k)
			require.NoError(t, err)
			assert.InEpsilon(t, want, got, 1e-10, "%s k=%d", src.Name, k)
		}
	}
}

// TestFordSidi3_ZeroTerm verifies a vanishing term is an overflow.
func TestFordSidi3_ZeroTerm(t *testing.T) {
	src := series.FromTerms([]float64{1, 0.5, 0, 0.125})
	_, err := theta.NewFordSidi3[float64](src).Estimate(1, 2)
	assert.ErrorIs(t, err, accel.ErrOverflow)
}
