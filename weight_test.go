package targetcost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalancedWeight(t *testing.T) {
	classSampleCounts := []int{1000, 100, 10, 1}
	classes := len(classSampleCounts)

	total := 0
	for _, n := range classSampleCounts {
		total += n
	}

	weights := make([]float64, classes)
	for i, n := range classSampleCounts {
		weights[i] = BalancedWeight(classes, total, n)
	}

	assert.InDelta(t, 0.27775, weights[0], 1e-6)
	assert.InDelta(t, 2.7775, weights[1], 1e-6)
	assert.InDelta(t, 27.775, weights[2], 1e-6)
	assert.InDelta(t, 277.75, weights[3], 1e-6)

	// cost-mass conservation: weight*count is the same constant for every class, and
	// the weighted total equals the plain total
	expected := weights[0] * float64(classSampleCounts[0])
	var sum float64
	for i, n := range classSampleCounts {
		product := weights[i] * float64(n)
		assert.InDelta(t, expected, product, 1e-6)
		sum += product
	}

	assert.InDelta(t, float64(total), sum, 1e-6)
}

func TestBalancedWeight_Preconditions(t *testing.T) {
	// a class with zero observed samples has no defined weight
	assert.Panics(t, func() { BalancedWeight(4, 100, 0) })
	assert.Panics(t, func() { BalancedWeight(0, 100, 10) })
	assert.Panics(t, func() { BalancedWeight(4, 100, -1) })
}
