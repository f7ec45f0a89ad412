package targetcost

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCountLabels(t *testing.T) {
	// note that there's no class "3"
	counts, err := CountLabels([]Label{0, 1, 4, 0, 1, 2})

	assert.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1, 0, 1}, counts)
}

func TestCountLabels_SumsToSampleCount(t *testing.T) {
	labels := []Label{3, 3, 0, 7, 3, 1, 1, 0}

	counts, err := CountLabels(labels)
	assert.NoError(t, err)
	assert.Len(t, counts, 8)

	sum := 0
	for _, n := range counts {
		sum += n
	}
	assert.Equal(t, len(labels), sum)
}

func TestCountLabels_Empty(t *testing.T) {
	counts, err := CountLabels(nil)

	assert.Nil(t, counts)
	assert.Equal(t, ErrNoLabels, errors.Cause(err))
}

func TestCountLabels_Negative(t *testing.T) {
	counts, err := CountLabels([]Label{0, 2, -1, 1})

	assert.Nil(t, counts)
	assert.Equal(t, ErrNegativeLabel, errors.Cause(err))
}
