package nnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharnoff/targetcost"
)

func TestNew_Panics(t *testing.T) {
	assert.Panics(t, func() { New(0, 3) })
	assert.Panics(t, func() { New(0, 3, 0, 2) })
}

func TestGetOutputs(t *testing.T) {
	net := New(4, 2, 5, 3)

	assert.Equal(t, 2, net.InputSize())
	assert.Equal(t, 3, net.OutputSize())

	outs, err := net.GetOutputs([]float64{0.5, -0.5})
	require.NoError(t, err)
	require.Len(t, outs, 3)

	// tanh keeps everything in (-1, 1)
	for _, o := range outs {
		assert.Less(t, o, 1.0)
		assert.Greater(t, o, -1.0)
	}

	_, err = net.GetOutputs([]float64{1})
	assert.Error(t, err)
}

func TestNew_SeedDeterminism(t *testing.T) {
	a := New(7, 3, 8, 2)
	b := New(7, 3, 8, 2)

	in := []float64{0.1, -0.2, 0.3}
	outsA, err := a.GetOutputs(in)
	require.NoError(t, err)
	outsB, err := b.GetOutputs(in)
	require.NoError(t, err)

	assert.Equal(t, outsA, outsB)
}

func TestPredictLabel(t *testing.T) {
	net := New(11, 1, 4, 3)

	l, err := net.PredictLabel([]float64{0.3})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, int(l), 0)
	assert.Less(t, int(l), 3)
}

func TestLabelTargets(t *testing.T) {
	ts := labelTargets([]targetcost.Label{1, 0}, 3)

	require.Len(t, ts, 2)
	assert.Equal(t, []float64{targetMin, targetMax, targetMin}, ts[0])
	assert.Equal(t, []float64{targetMax, targetMin, targetMin}, ts[1])
}

func TestChunkSpans(t *testing.T) {
	spans := chunkSpans(10, 4)
	assert.Equal(t, [][2]int{{0, 4}, {4, 8}, {8, 10}}, spans)

	// chosen automatically, but still covering [0, n) exactly once
	spans = chunkSpans(5, 0)
	next := 0
	for _, s := range spans {
		assert.Equal(t, next, s[0])
		assert.Greater(t, s[1], s[0])
		next = s[1]
	}
	assert.Equal(t, 5, next)
}

func TestTrain_Validation(t *testing.T) {
	net := New(0, 1, 2)

	inputs := [][]float64{{0}, {1}}
	labels := []targetcost.Label{0, 1}

	ok := targetcost.TrainArgs{Inputs: inputs, Labels: labels, BatchSize: 1, Epochs: 1}

	{
		args := ok
		args.Inputs = nil
		assert.Error(t, net.Train(args))
	}
	{
		args := ok
		args.Labels = labels[:1]
		assert.Error(t, net.Train(args))
	}
	{
		args := ok
		args.BatchSize = 0
		assert.Error(t, net.Train(args))
	}
	{
		args := ok
		args.Epochs = 0
		assert.Error(t, net.Train(args))
	}
	{
		// label outside the network's classes
		args := ok
		args.Labels = []targetcost.Label{0, 2}
		assert.Error(t, net.Train(args))
	}
	{
		// target cost built from a different label sequence
		tc, err := targetcost.Balanced([]targetcost.Label{0, 1, 1})
		require.NoError(t, err)

		args := ok
		args.TargetCost = tc
		assert.Error(t, net.Train(args))
	}

	assert.NoError(t, net.Train(ok))
}

// the network should learn the identity function from clean, balanced 1-dim data
func TestTrain_LearnsIdentity(t *testing.T) {
	net := New(3, 1, 10, 2)

	var inputs [][]float64
	var labels []targetcost.Label
	for i := 0; i < 100; i++ {
		in := float64(i % 2)
		inputs = append(inputs, []float64{in})
		labels = append(labels, targetcost.Label(i%2))
	}

	err := net.Train(targetcost.TrainArgs{
		Inputs:    inputs,
		Labels:    labels,
		BatchSize: 10,
		Epochs:    100,
		Shuffle:   true,
	})
	require.NoError(t, err)

	for _, in := range []float64{0, 1} {
		l, err := net.PredictLabel([]float64{in})
		require.NoError(t, err)
		assert.Equal(t, targetcost.Label(int(in)), l)
	}
}
