// Package net provides the two-layer fully-connected network and its
// manual forward and backward passes.
package net

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"relunet/internal/activations"
	"relunet/internal/loss"
	"relunet/internal/opt"
)

// TwoLayerNet is a fully-connected network with one hidden layer:
// output = act(x . W1) . W2. There are no bias terms.
type TwoLayerNet struct {
	// W1 is inputDim x hidden, W2 is hidden x outputDim. Both are
	// mutated in place by TrainStep and owned exclusively by the net.
	W1 *mat.Dense
	W2 *mat.Dense

	act  activations.Activation
	loss loss.Loss
	opt  opt.Optimizer
}

// Cache holds the intermediate matrices of one forward pass. Hidden is
// retained because the backward pass masks gradients by the sign of the
// pre-activation.
type Cache struct {
	Hidden    *mat.Dense // pre-activation, examples x hidden
	HiddenAct *mat.Dense // post-activation, examples x hidden
	Output    *mat.Dense // prediction, examples x outputDim
}

// Gradients holds loss gradients with shape parity to the weights.
type Gradients struct {
	W1 *mat.Dense
	W2 *mat.Dense
}

// New creates a TwoLayerNet with weights drawn from the standard normal
// distribution. A nil src uses the process-global generator.
func New(in, hidden, out int, act activations.Activation, lossFn loss.Loss, optimizer opt.Optimizer, src rand.Source) *TwoLayerNet {
	if in <= 0 || hidden <= 0 || out <= 0 {
		panic(fmt.Sprintf("net: invalid layer sizes %d -> %d -> %d", in, hidden, out))
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	return &TwoLayerNet{
		W1:   randomDense(in, hidden, normal),
		W2:   randomDense(hidden, out, normal),
		act:  act,
		loss: lossFn,
		opt:  optimizer,
	}
}

// Forward computes the full forward pass for input x (examples x inputDim).
// It is a pure function of x and the current weights: no state is mutated,
// and repeated calls with unchanged weights return identical results.
func (n *TwoLayerNet) Forward(x mat.Matrix) *Cache {
	xr, xc := x.Dims()
	w1r, _ := n.W1.Dims()
	if xc != w1r {
		panic(fmt.Sprintf("net: input %dx%d incompatible with W1 %dx%d", xr, xc, w1r, n.hidden()))
	}

	hidden := &mat.Dense{}
	hidden.Mul(x, n.W1)

	hiddenAct := &mat.Dense{}
	hiddenAct.Apply(func(_, _ int, v float64) float64 {
		return n.act.Activate(v)
	}, hidden)

	output := &mat.Dense{}
	output.Mul(hiddenAct, n.W2)

	return &Cache{Hidden: hidden, HiddenAct: hiddenAct, Output: output}
}

// Evaluate returns the loss of the current weights on (x, y) without
// touching any state.
func (n *TwoLayerNet) Evaluate(x, y mat.Matrix) float64 {
	return n.loss.Forward(n.Forward(x).Output, y)
}

// Gradients computes the analytic weight gradients from a forward cache.
// Gradients are summed over all examples, never averaged.
func (n *TwoLayerNet) Gradients(x, y mat.Matrix, c *Cache) *Gradients {
	gradOutput := n.loss.Backward(c.Output, y)

	gradW2 := &mat.Dense{}
	gradW2.Mul(c.HiddenAct.T(), gradOutput)

	gradHiddenAct := &mat.Dense{}
	gradHiddenAct.Mul(gradOutput, n.W2.T())

	// Mask by the derivative at the pre-activation.
	gradHidden := &mat.Dense{}
	gradHidden.Apply(func(i, j int, g float64) float64 {
		return g * n.act.Derivative(c.Hidden.At(i, j))
	}, gradHiddenAct)

	gradW1 := &mat.Dense{}
	gradW1.Mul(x.T(), gradHidden)

	return &Gradients{W1: gradW1, W2: gradW2}
}

// Step applies one optimizer update to both weight matrices in place.
func (n *TwoLayerNet) Step(g *Gradients) {
	n.opt.StepInPlace(n.W1.RawMatrix().Data, g.W1.RawMatrix().Data)
	n.opt.StepInPlace(n.W2.RawMatrix().Data, g.W2.RawMatrix().Data)
}

// TrainStep performs one full iteration on (x, y): forward pass, loss,
// backward pass and in-place weight update. It returns the loss measured
// before the update.
func (n *TwoLayerNet) TrainStep(x, y mat.Matrix) float64 {
	c := n.Forward(x)
	l := n.loss.Forward(c.Output, y)
	n.Step(n.Gradients(x, y, c))
	return l
}

func (n *TwoLayerNet) hidden() int {
	_, h := n.W1.Dims()
	return h
}

// randomDense fills an r x c matrix with draws from dist.
func randomDense(r, c int, dist distuv.Normal) *mat.Dense {
	values := make([]float64, r*c)
	for i := range values {
		values[i] = dist.Rand()
	}
	return mat.NewDense(r, c, values)
}
