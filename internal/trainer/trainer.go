// Package trainer runs fixed-iteration full-batch gradient descent on a
// two-layer network over synthetic data.
package trainer

import (
	"fmt"

	"golang.org/x/exp/rand"

	"relunet/internal/activations"
	"relunet/internal/data"
	"relunet/internal/loss"
	"relunet/internal/net"
	"relunet/internal/opt"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Examples     int
	InputDim     int
	HiddenDim    int
	OutputDim    int
	LearningRate float64
	Iterations   int

	// Seed drives all random sampling. Zero means unseeded: the run uses
	// the process-global generator and is not reproducible.
	Seed uint64
}

// Default returns the reference configuration: a 64x1000 batch through
// 100 hidden units to 10 outputs, 500 iterations at a 1e-6 rate.
func Default() Config {
	return Config{
		Examples:     64,
		InputDim:     1000,
		HiddenDim:    100,
		OutputDim:    10,
		LearningRate: 1e-6,
		Iterations:   500,
	}
}

// Validate verifies the config is runnable.
func (c Config) Validate() error {
	if c.Examples <= 0 {
		return fmt.Errorf("examples must be > 0 (got %d)", c.Examples)
	}
	if c.InputDim <= 0 {
		return fmt.Errorf("input dim must be > 0 (got %d)", c.InputDim)
	}
	if c.HiddenDim <= 0 {
		return fmt.Errorf("hidden dim must be > 0 (got %d)", c.HiddenDim)
	}
	if c.OutputDim <= 0 {
		return fmt.Errorf("output dim must be > 0 (got %d)", c.OutputDim)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be > 0 (got %g)", c.LearningRate)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be > 0 (got %d)", c.Iterations)
	}
	return nil
}

// History records the per-iteration losses. Both slices are append-only
// and grow by exactly one entry per iteration.
type History struct {
	Train []float64
	Val   []float64
}

// Result is the externally observable outcome of a run: the loss
// histories plus the final weights.
type Result struct {
	History History
	Net     *net.TwoLayerNet
}

// Run initializes data and weights once, then executes the fixed
// iteration loop. Each iteration evaluates the validation loss with the
// current weights, performs one training step (whose reported loss is
// also pre-update), and appends both losses to the history. Validation
// data never contributes to gradients. There is no early stopping.
func Run(cfg Config, callbacks ...Callback) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("trainer: %w", err)
	}

	var src rand.Source
	if cfg.Seed != 0 {
		src = rand.NewSource(cfg.Seed)
	}

	train := data.Synthetic(cfg.Examples, cfg.InputDim, cfg.OutputDim, src)
	val := data.Synthetic(cfg.Examples, cfg.InputDim, cfg.OutputDim, src)

	model := net.New(cfg.InputDim, cfg.HiddenDim, cfg.OutputDim,
		activations.ReLU{},
		loss.SquaredError{},
		opt.SGD{LearningRate: cfg.LearningRate},
		src)

	history := History{
		Train: make([]float64, 0, cfg.Iterations),
		Val:   make([]float64, 0, cfg.Iterations),
	}

	for _, cb := range callbacks {
		cb.OnTrainBegin()
	}

	for i := 0; i < cfg.Iterations; i++ {
		valLoss := model.Evaluate(val.X, val.Y)
		trainLoss := model.TrainStep(train.X, train.Y)

		history.Train = append(history.Train, trainLoss)
		history.Val = append(history.Val, valLoss)

		for _, cb := range callbacks {
			cb.OnIterationEnd(i, trainLoss, valLoss)
		}
	}

	for _, cb := range callbacks {
		cb.OnTrainEnd()
	}

	return &Result{History: history, Net: model}, nil
}
