package nnet

import (
	"fmt"
	"math"
)

// CostFunction scores Network outputs against target values and provides the
// derivative of the cost with respect to each output.
//
// For both methods, outs and targets are guaranteed to have the same length.
type CostFunction interface {
	Cost(outs, targets []float64) float64
	Derivs(outs, targets []float64) []float64
}

type mse bool

// MSE returns the mean squared error cost function.
func MSE() *mse {
	m := mse(false)
	return &m
}

// PrintOuts makes the cost function println(targets, outs) at each call to Cost, for
// debugging.
func (m *mse) PrintOuts() *mse {
	*m = mse(true)
	return m
}

// NoPrint undoes PrintOuts.
func (m *mse) NoPrint() *mse {
	*m = mse(false)
	return m
}

func (m *mse) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		sum += 0.5 * math.Pow(outs[i]-targets[i], 2)
	}

	if bool(*m) {
		fmt.Println(targets, outs)
	}

	return sum / float64(len(outs))
}

func (m *mse) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		ds[i] = outs[i] - targets[i]
	}

	return ds
}
