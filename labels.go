package targetcost

import (
	"github.com/pkg/errors"
)

// Label is an integer class id attached to a training sample. Labels are 0-based;
// negative values are invalid.
type Label int

// CountLabels returns the number of occurrences of each class in the given label
// sequence. The result has length max(labels)+1, so a class that never occurs but is
// implied by a higher label elsewhere still holds a slot with count zero.
//
// CountLabels returns ErrNoLabels if the sequence is empty (there is no maximum to size
// the result by), and ErrNegativeLabel if any label is below zero.
func CountLabels(labels []Label) ([]int, error) {
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}

	max := Label(0)
	for i, l := range labels {
		if l < 0 {
			return nil, errors.Wrapf(ErrNegativeLabel, "sample %d has label %d", i, l)
		}

		if l > max {
			max = l
		}
	}

	counts := make([]int, max+1)
	for _, l := range labels {
		counts[l]++
	}

	return counts, nil
}
