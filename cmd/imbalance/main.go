// Command imbalance demonstrates balanced target costs on noisy, unbalanced 1-dim
// data: one model trained with equal cost per sample degenerates to guessing the
// majority class, while one trained with equal cost per class learns the underlying
// identity function.
package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sharnoff/targetcost"
	"github.com/sharnoff/targetcost/nnet"
)

const (
	p  = 0.9 // p(in == 1)
	p0 = 0.6 // p(label == 1 | in == 0)
	p1 = 0.9 // p(label == 1 | in == 1)

	tnum = 1000
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	src := rand.NewSource(uint64(1))
	bernIn := distuv.Bernoulli{P: p, Src: src}
	bern0 := distuv.Bernoulli{P: p0, Src: src}
	bern1 := distuv.Bernoulli{P: p1, Src: src}

	inputs := make([][]float64, tnum)
	labels := make([]targetcost.Label, tnum)
	nLabel1 := 0

	for i := range inputs {
		in := bernIn.Rand()

		var label float64
		if in == 1 {
			label = bern1.Rand()
		} else {
			label = bern0.Rand()
		}

		inputs[i] = []float64{in}
		labels[i] = targetcost.Label(int(label))
		nLabel1 += int(label)
	}

	log.Info().Int("samples", tnum).Int("label-1", nLabel1).Msg("generated unbalanced dataset")

	balancedCost, err := targetcost.Balanced(labels)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build target cost")
	}

	counts, _ := targetcost.CountLabels(labels)
	for c, n := range counts {
		log.Info().
			Int("class", c).
			Int("count", n).
			Float64("weight", targetcost.BalancedWeight(len(counts), tnum, n)).
			Msg("balanced class weight")
	}

	equalSample := train("equal-sample-cost", inputs, labels, nil)
	equalClass := train("equal-class-cost", inputs, labels, balancedCost)

	// evaluate on a held-out set balanced between the classes
	bernTest := distuv.Bernoulli{P: 0.5, Src: src}
	errsSample, errsClass := 0, 0

	for i := 0; i < tnum; i++ {
		in := bernTest.Rand()
		expected := targetcost.Label(int(in))

		if predict(equalSample, in) != expected {
			errsSample++
		}
		if predict(equalClass, in) != expected {
			errsClass++
		}
	}

	log.Info().
		Float64("equal-sample-cost", float64(errsSample)/tnum).
		Float64("equal-class-cost", float64(errsClass)/tnum).
		Msg("balanced held-out error rates")
}

func train(name string, inputs [][]float64, labels []targetcost.Label, tc *targetcost.Matrix) *nnet.Network {
	net := nnet.New(1, 1, 10, 2)

	err := net.Train(targetcost.TrainArgs{
		Inputs:    inputs,
		Labels:    labels,
		BatchSize: 10,
		Epochs:    100,
		Shuffle:   true,
		PreEpoch: targetcost.EveryN(20, func(epoch int) {
			log.Debug().Str("model", name).Int("epoch", epoch).Msg("training")
		}),
		TargetCost: tc,
	})
	if err != nil {
		log.Fatal().Err(err).Str("model", name).Msg("training failed")
	}

	log.Info().Str("model", name).Bool("balanced-cost", tc != nil).Msg("trained")
	return net
}

func predict(net *nnet.Network, in float64) targetcost.Label {
	l, err := net.PredictLabel([]float64{in})
	if err != nil {
		log.Fatal().Err(err).Msg("prediction failed")
	}

	return l
}
