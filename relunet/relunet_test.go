package relunet

import (
	"testing"

	"golang.org/x/exp/rand"
)

// TestTrainFacade exercises the re-exported training entry point.
func TestTrainFacade(t *testing.T) {
	cfg := Config{
		Examples:     6,
		InputDim:     12,
		HiddenDim:    5,
		OutputDim:    2,
		LearningRate: 1e-5,
		Iterations:   10,
		Seed:         3,
	}

	res, err := Train(cfg)
	if err != nil {
		t.Fatalf("Train() error: %v", err)
	}
	if len(res.History.Train) != cfg.Iterations || len(res.History.Val) != cfg.Iterations {
		t.Errorf("history lengths = %d/%d, want %d",
			len(res.History.Train), len(res.History.Val), cfg.Iterations)
	}
}

// TestTwoLayerFacade exercises the network constructor and one manual step.
func TestTwoLayerFacade(t *testing.T) {
	src := rand.NewSource(4)
	ds := Synthetic(5, 8, 2, src)
	n := TwoLayer(8, 4, 2, ReLU, SquaredError, SGD(1e-5), src)

	before := n.Evaluate(ds.X, ds.Y)
	n.TrainStep(ds.X, ds.Y)
	after := n.Evaluate(ds.X, ds.Y)

	if !(after < before) {
		t.Errorf("loss after step = %v, want < %v", after, before)
	}
}
