// Package nnet is a deliberately small feed-forward network used to consume target
// cost matrices during training: sequential fully connected layers with tanh
// activations, mean squared error, and AdaGrad updates. It implements
// targetcost.Trainer; it is not a general architecture (no layer graph, no recurrence,
// no persistence).
package nnet

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/sharnoff/targetcost"
)

// Network is a sequential feed-forward network. The zero value is not usable; Networks
// are initialized by New.
type Network struct {
	layers []*layer

	cf  CostFunction
	opt Optimizer

	rng *rand.Rand

	// used to keep track of the minibatch count across the current training run
	iter int
}

type layer struct {
	in, out int

	// weights[j] holds unit j's incoming weights; the bias sits in the final slot, so
	// each row has in+1 values
	weights [][]float64
}

// New returns a Network with the given layer sizes, from inputs to outputs. Weights
// start uniformly random in [-1/sqrt(in), 1/sqrt(in)]; seed pins them down, alongside
// any shuffling done while training.
//
// The cost function defaults to MSE() and the optimizer to AdaGrad(0.01); both can be
// swapped with ChangeCost and ChangeOptimizer. New panics if fewer than two sizes are
// given, or if any size is less than one.
func New(seed uint64, sizes ...int) *Network {
	if len(sizes) < 2 {
		panic(errors.Errorf("Network needs input and output sizes (got %d sizes)", len(sizes)))
	}

	for _, s := range sizes {
		if s < 1 {
			panic(errors.Errorf("Network layer sizes must be >= 1 (%v)", sizes))
		}
	}

	net := &Network{
		cf:  MSE(),
		opt: AdaGrad(0.01),
		rng: rand.New(rand.NewSource(seed)),
	}

	for l := 1; l < len(sizes); l++ {
		in, out := sizes[l-1], sizes[l]
		bound := 1 / math.Sqrt(float64(in))

		ws := make([][]float64, out)
		for j := range ws {
			ws[j] = make([]float64, in+1)
			for k := range ws[j] {
				ws[j][k] = bound * (2*net.rng.Float64() - 1)
			}
		}

		net.layers = append(net.layers, &layer{in: in, out: out, weights: ws})
	}

	return net
}

// ChangeCost swaps the CostFunction used while training. It panics if cf is nil.
func (net *Network) ChangeCost(cf CostFunction) *Network {
	if cf == nil {
		panic(errors.Errorf("CostFunction is nil"))
	}

	net.cf = cf
	return net
}

// ChangeOptimizer swaps the Optimizer used while training. It panics if opt is nil.
func (net *Network) ChangeOptimizer(opt Optimizer) *Network {
	if opt == nil {
		panic(errors.Errorf("Optimizer is nil"))
	}

	net.opt = opt
	return net
}

// InputSize returns the number of input values the Network expects.
func (net *Network) InputSize() int {
	return net.layers[0].in
}

// OutputSize returns the number of output values the Network produces, which doubles as
// the number of classes it can distinguish.
func (net *Network) OutputSize() int {
	return net.layers[len(net.layers)-1].out
}

// GetOutputs returns the Network's output values for the given inputs.
func (net *Network) GetOutputs(inputs []float64) ([]float64, error) {
	if len(inputs) != net.InputSize() {
		return nil, errors.Errorf("inputs do not fit Network (expected %d, got %d)", net.InputSize(), len(inputs))
	}

	acts := net.forward(inputs)

	outs := make([]float64, net.OutputSize())
	copy(outs, acts[len(acts)-1])
	return outs, nil
}

// PredictLabel returns the class whose output value is highest for the given inputs.
func (net *Network) PredictLabel(inputs []float64) (targetcost.Label, error) {
	outs, err := net.GetOutputs(inputs)
	if err != nil {
		return 0, err
	}

	best := 0
	for j := range outs {
		if outs[j] > outs[best] {
			best = j
		}
	}

	return targetcost.Label(best), nil
}

// forward runs the Network on the given inputs and returns the activations of every
// layer, inputs first. Assumes len(inputs) == net.InputSize().
func (net *Network) forward(inputs []float64) [][]float64 {
	acts := make([][]float64, len(net.layers)+1)
	acts[0] = inputs

	for l, ly := range net.layers {
		a := make([]float64, ly.out)
		for j, ws := range ly.weights {
			z := ws[ly.in] // bias
			for k, x := range acts[l] {
				z += ws[k] * x
			}

			a[j] = math.Tanh(z)
		}

		acts[l+1] = a
	}

	return acts
}

// backward takes the activations from forward and the derivative of the cost with
// respect to each output, and accumulates the derivative with respect to each weight
// into g. derivs is clobbered in the process.
func (net *Network) backward(acts [][]float64, derivs []float64, g [][][]float64) {
	delta := derivs

	for l := len(net.layers) - 1; l >= 0; l-- {
		ly := net.layers[l]
		a, x := acts[l+1], acts[l]

		// fold in the tanh derivative
		for j := range delta {
			delta[j] *= 1 - a[j]*a[j]
		}

		for j := range ly.weights {
			row, d := g[l][j], delta[j]
			for k := 0; k < ly.in; k++ {
				row[k] += d * x[k]
			}
			row[ly.in] += d // bias
		}

		if l > 0 {
			next := make([]float64, ly.in)
			for k := 0; k < ly.in; k++ {
				var sum float64
				for j := range ly.weights {
					sum += ly.weights[j][k] * delta[j]
				}
				next[k] = sum
			}

			delta = next
		}
	}
}

// newGrads allocates a gradient accumulator shaped like the Network's weights.
func (net *Network) newGrads() [][][]float64 {
	g := make([][][]float64, len(net.layers))
	for l, ly := range net.layers {
		g[l] = make([][]float64, ly.out)
		for j := range g[l] {
			g[l][j] = make([]float64, ly.in+1)
		}
	}

	return g
}
