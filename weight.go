package targetcost

import (
	"github.com/pkg/errors"
)

// BalancedWeight returns the multiplicative weight that equalizes the total cost mass of
// each class: totalSamples / (numClasses * classSampleCount). For any partition of
// totalSamples into classes, summing weight*count over the observed classes gives back
// totalSamples, so balancing never changes the overall scale of the cost.
//
// BalancedWeight is only defined for classes that actually occur; it panics if
// numClasses or classSampleCount is less than one.
func BalancedWeight(numClasses, totalSamples, classSampleCount int) float64 {
	if numClasses < 1 || classSampleCount < 1 {
		panic(errors.Errorf("BalancedWeight requires an observed class (classes: %d, samples in class: %d)",
			numClasses, classSampleCount))
	}

	return float64(totalSamples) / (float64(numClasses) * float64(classSampleCount))
}
