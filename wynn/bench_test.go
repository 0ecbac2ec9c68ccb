package wynn_test

import (
	"testing"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
	"github.com/DarkLordRowan/shanks-university-sub001/series"
	"github.com/DarkLordRowan/shanks-university-sub001/wynn"
)

func benchmarkWynn(b *testing.B, alg accel.Algorithm[float64], order int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := alg.Estimate(1, order); err != nil {
			b.Fatalf("Estimate failed: %v", err)
		}
	}
}

// BenchmarkRho measures an 11-sum ρ table.
func BenchmarkRho(b *testing.B) {
	src := series.NewCached[float64](series.Basel[float64]())
	benchmarkWynn(b, wynn.NewRho[float64](src), 10)
}

// BenchmarkChangWynn measures Chang-Wynn at order 6.
func BenchmarkChangWynn(b *testing.B) {
	src := series.NewCached[float64](series.AlternatingHarmonic[float64]())
	benchmarkWynn(b, wynn.NewChangWynn[float64](src), 6)
}
