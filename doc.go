// Package targetcost computes class-balanced per-sample target costs for training
// feed-forward neural networks on imbalanced datasets.
//
// When one class dominates a training set, minimizing the plain average cost is
// rightly satisfied by always guessing the majority class. Target costs correct for
// that by scaling each sample's contribution to the cost inversely with how common its
// class is, without changing the overall scale of the loss.
//
// Building Target Costs
//
// The matrix is built once, from the complete label sequence, before training:
//
//		tc, err := targetcost.Balanced(labels)
//		if err != nil {
//			return err
//		}
//
// Balanced gives fully class-balanced weighting. New additionally takes a factor w in
// [0, 1] that blends linearly between uniform weighting (w = 0, a no-op) and fully
// balanced weighting (w = 1):
//
//		tc, err := targetcost.New(labels, 0.5)
//
// Each row of the result is one sample's cost, broadcast across every class position.
// At w = 1, weight times class count is the same constant for every observed class, so
// the total weighted sample count equals the plain sample count.
//
// Consuming Target Costs
//
// Training loops receive the Matrix through TrainArgs and apply it with Matrix.Scale,
// which multiplies a sample's per-output error elementwise by its row before backward
// propagation. That is the entire integration surface; see the subpackage "nnet" for a
// small feed-forward implementation of the Trainer interface.
//
// The Matrix is immutable once built: concurrent training workers may read it by
// sample index without locking.
package targetcost
