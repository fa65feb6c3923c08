package activations

import (
	"math"
	"testing"
)

// TestReLUActivate tests the ReLU forward values.
func TestReLUActivate(t *testing.T) {
	relu := ReLU{}

	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"Positive", 2.5, 2.5},
		{"Zero", 0.0, 0.0},
		{"Negative", -3.0, 0.0},
		{"Small negative", -1e-12, 0.0},
		{"Large positive", 1e9, 1e9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relu.Activate(tt.x); got != tt.expected {
				t.Errorf("ReLU.Activate(%v) = %v, want %v", tt.x, got, tt.expected)
			}
		})
	}
}

// TestReLUDerivative tests the strict-negative mask policy:
// the derivative is zero only for strictly negative inputs.
func TestReLUDerivative(t *testing.T) {
	relu := ReLU{}

	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"Positive", 1.0, 1.0},
		{"Zero passes gradient", 0.0, 1.0},
		{"Negative", -1.0, 0.0},
		{"Small negative", -1e-300, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relu.Derivative(tt.x); got != tt.expected {
				t.Errorf("ReLU.Derivative(%v) = %v, want %v", tt.x, got, tt.expected)
			}
		})
	}
}

// TestLeakyReLU tests LeakyReLU forward and derivative.
func TestLeakyReLU(t *testing.T) {
	lrelu := NewLeakyReLU(0.01)

	if got := lrelu.Activate(-2.0); math.Abs(got-(-0.02)) > 1e-12 {
		t.Errorf("LeakyReLU.Activate(-2) = %v, want -0.02", got)
	}
	if got := lrelu.Activate(3.0); got != 3.0 {
		t.Errorf("LeakyReLU.Activate(3) = %v, want 3", got)
	}
	if got := lrelu.Derivative(-1.0); got != 0.01 {
		t.Errorf("LeakyReLU.Derivative(-1) = %v, want 0.01", got)
	}
	if got := lrelu.Derivative(0.0); got != 1.0 {
		t.Errorf("LeakyReLU.Derivative(0) = %v, want 1", got)
	}
}

// TestLinear tests the identity activation.
func TestLinear(t *testing.T) {
	lin := Linear{}

	for _, x := range []float64{-5, 0, 7.25} {
		if got := lin.Activate(x); got != x {
			t.Errorf("Linear.Activate(%v) = %v, want %v", x, got, x)
		}
		if got := lin.Derivative(x); got != 1 {
			t.Errorf("Linear.Derivative(%v) = %v, want 1", x, got)
		}
	}
}
