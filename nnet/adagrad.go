package nnet

import (
	"math"
)

// Optimizer adjusts a layer's weights in place, given the batch-averaged gradients of
// the cost with respect to each weight. Layers are identified by index so that
// optimizers can keep per-weight state.
type Optimizer interface {
	Update(layer int, weights, grads [][]float64)
}

type adagrad struct {
	rate  float64
	accum map[int][][]float64
}

const adagradEps = 1e-8

// AdaGrad returns an optimizer that scales each weight's step by the inverse square
// root of that weight's accumulated squared gradients, so frequently-updated weights
// take smaller and smaller steps.
func AdaGrad(rate float64) Optimizer {
	return &adagrad{
		rate:  rate,
		accum: make(map[int][][]float64),
	}
}

func (o *adagrad) Update(layer int, weights, grads [][]float64) {
	acc := o.accum[layer]
	if acc == nil {
		acc = make([][]float64, len(weights))
		for j := range acc {
			acc[j] = make([]float64, len(weights[j]))
		}
		o.accum[layer] = acc
	}

	for j := range weights {
		for k := range weights[j] {
			g := grads[j][k]
			acc[j][k] += g * g
			weights[j][k] -= o.rate * g / (math.Sqrt(acc[j][k]) + adagradEps)
		}
	}
}

type sgd float64

// SGD returns a plain gradient descent optimizer with a constant learning rate.
func SGD(rate float64) Optimizer {
	return sgd(rate)
}

func (o sgd) Update(layer int, weights, grads [][]float64) {
	for j := range weights {
		for k := range weights[j] {
			weights[j][k] -= float64(o) * grads[j][k]
		}
	}
}
