// Package opt provides optimization algorithms.
package opt

// Optimizer updates parameters based on gradients.
// Parameters and gradients are flat slices; matrix-backed weights pass
// their raw backing data.
type Optimizer interface {
	// Step computes updated parameters: params - lr * gradients
	// Returns a new slice with updated values
	Step(params, gradients []float64) []float64

	// StepInPlace updates params in-place: params = params - lr * gradients
	// This avoids allocations in the training loop
	StepInPlace(params, gradients []float64)
}

// SGD is plain gradient descent with a constant learning rate.
// No momentum, no adaptive scaling, no gradient clipping.
type SGD struct {
	LearningRate float64
}

// Step computes updated parameters: params - lr * gradients
func (s SGD) Step(params, gradients []float64) []float64 {
	result := make([]float64, len(params))
	for i := range params {
		result[i] = params[i] - s.LearningRate*gradients[i]
	}
	return result
}

// StepInPlace updates params in-place: params = params - lr * gradients
func (s SGD) StepInPlace(params, gradients []float64) {
	for i := range params {
		params[i] -= s.LearningRate * gradients[i]
	}
}
