package shanks_test

import (
	"fmt"

	"github.com/DarkLordRowan/shanks-university-sub001/series"
	"github.com/DarkLordRowan/shanks-university-sub001/shanks"
)

// ExampleTransform_Estimate accelerates Σ 0.5^n from seven terms.
func ExampleTransform_Estimate() {
	geo, _ := series.Geometric(0.5)
	s6, _ := geo.PartialSum(6)
	est, _ := shanks.New[float64](geo).Estimate(6, 1)
	fmt.Printf("S(6)=%.6f shanks(6,1)=%.6f\n", s6, est)
	// Output: S(6)=1.984375 shanks(6,1)=2.000000
}
