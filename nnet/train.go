package nnet

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/sharnoff/targetcost"
)

// tanh saturates at +/-1; label targets sit inside that range so the cost keeps a
// usable gradient at the optimum.
const (
	targetMax = 0.8
	targetMin = -0.8
)

// labelTargets expands each label into a target vector of the given width: targetMax at
// the label's position, targetMin everywhere else.
func labelTargets(labels []targetcost.Label, classes int) [][]float64 {
	ts := make([][]float64, len(labels))
	for i, l := range labels {
		t := make([]float64, classes)
		for j := range t {
			t[j] = targetMin
		}
		t[l] = targetMax
		ts[i] = t
	}

	return ts
}

// Train runs minibatch gradient descent over the given dataset, satisfying
// targetcost.Trainer. Per TrainArgs: samples are visited in minibatches of BatchSize
// for Epochs full passes, reshuffled each pass when Shuffle is set; PreEpoch and
// PostMiniBatch fire as documented there. Minibatch gradients are computed in parallel
// spans of roughly TaskSize samples each.
//
// If args.TargetCost is present it must fit the dataset (Matrix.Check) and be exactly
// OutputSize classes wide; each sample's output error is then scaled elementwise by its
// row before backward propagation. With a nil TargetCost every sample weighs the same.
func (net *Network) Train(args targetcost.TrainArgs) error {
	// handle error cases and set defaults
	{
		if len(args.Inputs) == 0 {
			return errors.Errorf("Inputs is empty")
		}

		if len(args.Inputs) != len(args.Labels) {
			return errors.Errorf("Inputs and Labels are not index-aligned (%d != %d)",
				len(args.Inputs), len(args.Labels))
		}

		for i, in := range args.Inputs {
			if len(in) != net.InputSize() {
				return errors.Errorf("input %d does not fit Network (expected %d, got %d)",
					i, net.InputSize(), len(in))
			}
		}

		for i, l := range args.Labels {
			if l < 0 || int(l) >= net.OutputSize() {
				return errors.Errorf("label %d of sample %d is outside the Network's %d classes",
					l, i, net.OutputSize())
			}
		}

		if args.BatchSize < 1 {
			return errors.Errorf("BatchSize must be >= 1 (%d)", args.BatchSize)
		}

		if args.Epochs < 1 {
			return errors.Errorf("Epochs must be >= 1 (%d)", args.Epochs)
		}

		if tc := args.TargetCost; tc != nil {
			if err := tc.Check(args.Labels); err != nil {
				return errors.Wrapf(err, "target cost does not fit dataset")
			}

			if tc.NumClasses() != net.OutputSize() {
				return errors.Errorf("target cost is %d classes wide; Network has %d outputs",
					tc.NumClasses(), net.OutputSize())
			}
		}
	}

	n := len(args.Inputs)
	targets := labelTargets(args.Labels, net.OutputSize())

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	net.iter = 0

	for epoch := 0; epoch < args.Epochs; epoch++ {
		if args.PreEpoch != nil {
			args.PreEpoch(epoch)
		}

		if args.Shuffle {
			net.rng.Shuffle(n, func(i, j int) {
				order[i], order[j] = order[j], order[i]
			})
		}

		for start := 0; start < n; start += args.BatchSize {
			end := start + args.BatchSize
			if end > n {
				end = n
			}

			if err := net.trainBatch(order[start:end], args, targets); err != nil {
				return errors.Wrapf(err, "minibatch %d failed", net.iter)
			}

			if args.PostMiniBatch != nil {
				args.PostMiniBatch(net.iter)
			}
			net.iter++
		}
	}

	return nil
}

// trainBatch accumulates the gradients of every sample in the minibatch, averages them,
// and applies one optimizer step per layer. Samples are processed in parallel spans;
// each span accumulates into its own buffer, reduced afterwards.
func (net *Network) trainBatch(batch []int, args targetcost.TrainArgs, targets [][]float64) error {
	spans := chunkSpans(len(batch), args.TaskSize)

	partial := make([][][][]float64, len(spans))
	err := runChunks(spans, func(i, start, end int) error {
		g := net.newGrads()
		for _, s := range batch[start:end] {
			acts := net.forward(args.Inputs[s])
			derivs := net.cf.Derivs(acts[len(acts)-1], targets[s])

			if args.TargetCost != nil {
				if err := args.TargetCost.Scale(s, derivs); err != nil {
					return err
				}
			}

			net.backward(acts, derivs, g)
		}

		partial[i] = g
		return nil
	})
	if err != nil {
		return err
	}

	g := partial[0]
	for _, p := range partial[1:] {
		for l := range g {
			for j := range g[l] {
				floats.Add(g[l][j], p[l][j])
			}
		}
	}

	scale := 1 / float64(len(batch))
	for l, ly := range net.layers {
		for j := range g[l] {
			floats.Scale(scale, g[l][j])
		}
		net.opt.Update(l, ly.weights, g[l])
	}

	return nil
}
