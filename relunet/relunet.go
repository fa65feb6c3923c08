// Package relunet re-exports the common types and constructors for
// library consumers.
package relunet

import (
	"golang.org/x/exp/rand"

	"relunet/internal/activations"
	"relunet/internal/data"
	"relunet/internal/loss"
	"relunet/internal/net"
	"relunet/internal/opt"
	"relunet/internal/trainer"
)

// Re-export common types for easier access
type (
	Net        = net.TwoLayerNet
	Cache      = net.Cache
	Gradients  = net.Gradients
	Activation = activations.Activation
	Loss       = loss.Loss
	Optimizer  = opt.Optimizer
	Dataset    = data.Dataset
	Config     = trainer.Config
	History    = trainer.History
	Result     = trainer.Result
	Callback   = trainer.Callback
)

// Activations
var (
	ReLU   = activations.ReLU{}
	Linear = activations.Linear{}
)

func LeakyReLU(alpha float64) Activation {
	return activations.NewLeakyReLU(alpha)
}

// Losses
var (
	SquaredError = loss.SquaredError{}
	MSE          = loss.MSE{}
)

// SGD returns a plain constant-rate gradient descent optimizer.
func SGD(learningRate float64) Optimizer {
	return opt.SGD{LearningRate: learningRate}
}

// TwoLayer creates a two-layer network with standard-normal weights.
func TwoLayer(in, hidden, out int, act Activation, lossFn Loss, optimizer Optimizer, src rand.Source) *Net {
	return net.New(in, hidden, out, act, lossFn, optimizer, src)
}

// Synthetic draws a standard-normal dataset.
func Synthetic(n, in, out int, src rand.Source) Dataset {
	return data.Synthetic(n, in, out, src)
}

// DefaultConfig returns the reference training configuration.
func DefaultConfig() Config {
	return trainer.Default()
}

// Train runs fixed-iteration full-batch gradient descent.
func Train(cfg Config, callbacks ...Callback) (*Result, error) {
	return trainer.Run(cfg, callbacks...)
}

// CSVLogger creates a callback that writes the loss history to a CSV file.
func CSVLogger(filename string, append bool) Callback {
	return trainer.NewCSVLogger(filename, append)
}

// ConsoleLogger creates a callback that logs every interval iterations.
func ConsoleLogger(interval int) Callback {
	return trainer.Logger{Interval: interval}
}
