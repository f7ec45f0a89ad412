package targetcost

import (
	"math"

	"github.com/pkg/errors"
)

// New builds the target cost matrix for the given label sequence. w blends uniform
// weighting (w == 0, every cost 1) with fully class-balanced weighting (w == 1, cost
// inversely proportional to class frequency); in between, each sample's cost is the
// pointwise linear blend (1-w) + w*BalancedWeight(...) of the two, broadcast across all
// class positions of its row.
//
// The label sequence must be the complete training set: counts and weights are derived
// from it once, up front. There are no streaming semantics; build a new Matrix if the
// dataset changes.
//
// New returns ErrBadBalance (wrapped) if w is outside [0, 1] - beyond that range the
// formula is an extrapolation with no defined meaning - and passes through CountLabels
// failures for bad label sequences.
func New(labels []Label, w float64) (*Matrix, error) {
	if w < 0 || w > 1 || math.IsNaN(w) {
		return nil, errors.Wrapf(ErrBadBalance, "w = %v", w)
	}

	counts, err := CountLabels(labels)
	if err != nil {
		return nil, err
	}

	numClasses := len(counts)
	total := len(labels)

	// Balanced weights exist only where the class occurs. Gaps in the counts stay at
	// zero and are never read back, since no sample carries their label.
	balanced := make([]float64, numClasses)
	for c, n := range counts {
		if n > 0 {
			balanced[c] = BalancedWeight(numClasses, total, n)
		}
	}

	costs := make([][]float64, total)
	for i, l := range labels {
		effective := (1 - w) + w*balanced[l]

		row := make([]float64, numClasses)
		for j := range row {
			row[j] = effective
		}
		costs[i] = row
	}

	return &Matrix{costs: costs, classes: numClasses}, nil
}

// Balanced is New with w = 1: fully class-balanced target costs.
func Balanced(labels []Label) (*Matrix, error) {
	return New(labels, 1)
}
