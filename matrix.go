package targetcost

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Matrix is a per-sample target cost matrix: one row per training sample, in the order
// of the label sequence it was built from, with each row holding that sample's cost
// broadcast across every class position.
//
// A Matrix is never modified after construction, so any number of training workers may
// read it concurrently without locking. Rows are indexable in O(1) by sample position.
type Matrix struct {
	costs   [][]float64
	classes int
}

// NumSamples returns the number of rows (training samples).
func (m *Matrix) NumSamples() int {
	return len(m.costs)
}

// NumClasses returns the width of each row: the number of distinct classes the Matrix
// was built over.
func (m *Matrix) NumClasses() int {
	return m.classes
}

// SampleCost returns the cost vector of the given sample. The returned slice is shared
// with the Matrix and must not be modified.
func (m *Matrix) SampleCost(i int) []float64 {
	return m.costs[i]
}

// Scale multiplies errs elementwise by the given sample's cost vector. This is the
// whole consumption contract toward a training loop: each sample's per-output error is
// scaled by its row before backward propagation.
//
// Scale returns SizeMismatchError if errs is not NumClasses wide.
func (m *Matrix) Scale(i int, errs []float64) error {
	if len(errs) != m.classes {
		return SizeMismatchError{m.classes, len(errs), "error vector"}
	}

	floats.Mul(errs, m.costs[i])
	return nil
}

// Check verifies that the Matrix fits the given label sequence: exactly one row per
// sample, rows wide enough to cover every label, and every entry finite and
// non-negative. Trainers run Check before accepting a Matrix alongside a dataset.
func (m *Matrix) Check(labels []Label) error {
	if len(labels) != len(m.costs) {
		return SizeMismatchError{len(labels), len(m.costs), "target cost matrix"}
	}

	for i, l := range labels {
		if int(l) >= m.classes || l < 0 {
			return errors.Errorf("label %d of sample %d is not covered by the %d-class matrix", l, i, m.classes)
		}
	}

	for i, row := range m.costs {
		for j, c := range row {
			if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
				return errors.Errorf("cost of sample %d at class %d is not usable (%v)", i, j, c)
			}
		}
	}

	return nil
}
