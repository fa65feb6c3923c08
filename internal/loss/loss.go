// Package loss provides loss functions over full-batch prediction matrices.
package loss

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Loss is a loss function with derivative.
type Loss interface {
	// Forward computes the scalar loss between predicted and true values.
	Forward(yPred, yTrue mat.Matrix) float64

	// Backward computes the gradient of the loss w.r.t. the prediction.
	Backward(yPred, yTrue mat.Matrix) *mat.Dense
}

// SquaredError is the total squared error: sum((y_pred - y_true)^2).
// The sum runs over every element with no normalization by batch size
// or output width.
type SquaredError struct{}

// Forward computes sum((y_pred - y_true)^2).
func (SquaredError) Forward(yPred, yTrue mat.Matrix) float64 {
	checkDims("SquaredError", yPred, yTrue)

	var diff mat.Dense
	diff.Sub(yPred, yTrue)
	d := diff.RawMatrix().Data
	return floats.Dot(d, d)
}

// Backward computes dL/dy_pred = 2 * (y_pred - y_true).
// The returned matrix is newly allocated.
func (SquaredError) Backward(yPred, yTrue mat.Matrix) *mat.Dense {
	checkDims("SquaredError", yPred, yTrue)

	grad := &mat.Dense{}
	grad.Sub(yPred, yTrue)
	grad.Scale(2, grad)
	return grad
}

// MSE is the mean squared error: sum((y_pred - y_true)^2) / (rows*cols).
type MSE struct{}

// Forward computes the mean of the elementwise squared differences.
func (MSE) Forward(yPred, yTrue mat.Matrix) float64 {
	r, c := yPred.Dims()
	return SquaredError{}.Forward(yPred, yTrue) / float64(r*c)
}

// Backward computes dL/dy_pred = 2 * (y_pred - y_true) / (rows*cols).
func (MSE) Backward(yPred, yTrue mat.Matrix) *mat.Dense {
	r, c := yPred.Dims()
	grad := SquaredError{}.Backward(yPred, yTrue)
	grad.Scale(1/float64(r*c), grad)
	return grad
}

// checkDims panics when prediction and target shapes disagree.
func checkDims(name string, yPred, yTrue mat.Matrix) {
	pr, pc := yPred.Dims()
	tr, tc := yTrue.Dims()
	if pr != tr || pc != tc {
		panic(fmt.Sprintf("%s: prediction %dx%d and target %dx%d must have the same shape", name, pr, pc, tr, tc))
	}
}
