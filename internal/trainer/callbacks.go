package trainer

import "log"

// Callback defines the interface for training callbacks.
type Callback interface {
	OnTrainBegin()
	OnIterationEnd(iteration int, trainLoss, valLoss float64)
	OnTrainEnd()
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (BaseCallback) OnTrainBegin() {}

func (BaseCallback) OnIterationEnd(iteration int, trainLoss, valLoss float64) {}

func (BaseCallback) OnTrainEnd() {}

// Logger logs training progress to the standard logger.
type Logger struct {
	BaseCallback
	Interval int
}

func (c Logger) OnIterationEnd(iteration int, trainLoss, valLoss float64) {
	if c.Interval > 0 && iteration%c.Interval == 0 {
		log.Printf("iter=%d train_loss=%.6e val_loss=%.6e", iteration, trainLoss, valLoss)
	}
}

// Recorder collects every reported loss pair. Useful for tests and for
// callers that want the history without waiting for the final Result.
type Recorder struct {
	BaseCallback
	Train []float64
	Val   []float64
}

func (r *Recorder) OnIterationEnd(iteration int, trainLoss, valLoss float64) {
	r.Train = append(r.Train, trainLoss)
	r.Val = append(r.Val, valLoss)
}
