// Package activations provides elementwise activation functions.
package activations

// Activation is an activation function with derivative.
type Activation interface {
	// Activate computes f(x)
	Activate(x float64) float64

	// Derivative computes f'(x)
	Derivative(x float64) float64
}

// ReLU activation function.
type ReLU struct{}

// Activate computes max(0, x)
func (r ReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 0 if x < 0, else 1.
// The mask is strict: an input of exactly zero keeps gradient 1.
func (r ReLU) Derivative(x float64) float64 {
	if x < 0 {
		return 0
	}
	return 1
}

// LeakyReLU activation function to prevent dying neurons.
type LeakyReLU struct {
	Alpha float64 // Slope for x < 0
}

// NewLeakyReLU creates a LeakyReLU with the given alpha value.
func NewLeakyReLU(alpha float64) *LeakyReLU {
	return &LeakyReLU{Alpha: alpha}
}

// Activate computes x if x >= 0, else alpha*x
func (l *LeakyReLU) Activate(x float64) float64 {
	if x < 0 {
		return l.Alpha * x
	}
	return x
}

// Derivative returns alpha if x < 0, else 1
func (l *LeakyReLU) Derivative(x float64) float64 {
	if x < 0 {
		return l.Alpha
	}
	return 1
}

// Linear is the identity activation.
type Linear struct{}

// Activate returns x unchanged.
func (l Linear) Activate(x float64) float64 { return x }

// Derivative returns 1.
func (l Linear) Derivative(x float64) float64 { return 1 }
