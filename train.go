package targetcost

// TrainArgs is a proxy for the type of optional arguments that are available in other
// languages: everything a training loop needs for one run, including the optional
// target cost Matrix. Fields other than the dataset can usually be left at their zero
// value; implementations of Trainer document their defaults.
type TrainArgs struct {
	// Inputs and Labels make up the dataset, index-aligned: Labels[i] is the class of
	// Inputs[i]. If TargetCost is present, its rows follow the same order.
	Inputs [][]float64
	Labels []Label

	// BatchSize is the number of samples per gradient update.
	BatchSize int

	// Epochs is the number of full passes over the dataset.
	Epochs int

	// PreEpoch, if not nil, is invoked once before each epoch with the epoch number.
	PreEpoch func(epoch int)

	// PostMiniBatch, if not nil, is invoked once after each minibatch with the running
	// minibatch count across all epochs.
	PostMiniBatch func(iter int)

	// Shuffle randomizes the sample order once per epoch.
	Shuffle bool

	// TaskSize is a granularity hint for parallel work partitioning: roughly how many
	// samples each parallel task should cover. Zero lets the trainer choose.
	TaskSize int

	// TargetCost, if not nil, scales each sample's per-output error elementwise before
	// backward propagation (see Matrix.Scale). nil trains with every sample weighted
	// equally - the same result as a Matrix built with w == 0.
	TargetCost *Matrix
}

// Trainer is the boundary toward the training loop that consumes a Matrix. The target
// cost subsystem only ever calls through this interface; batching, shuffling, and
// parallelism are entirely the implementation's concern.
type Trainer interface {
	Train(args TrainArgs) error
}

// Nop satisfies either callback field of TrainArgs, for callers that do not track
// progress.
func Nop(int) {}

// EveryN wraps a callback so that it only fires once per n calls. It can be used for
// either callback field of TrainArgs.
func EveryN(n int, f func(int)) func(int) {
	return func(i int) {
		if i%n == 0 {
			f(i)
		}
	}
}
