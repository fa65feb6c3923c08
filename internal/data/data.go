// Package data generates synthetic datasets for training and evaluation.
package data

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dataset is an immutable pair of input and target matrices.
// X has one training example per row; Y holds the matching targets.
type Dataset struct {
	X *mat.Dense
	Y *mat.Dense
}

// Dims returns (examples, input width, output width).
func (d Dataset) Dims() (n, in, out int) {
	n, in = d.X.Dims()
	_, out = d.Y.Dims()
	return n, in, out
}

// Synthetic draws a dataset of standard-normal values: X is n x in,
// Y is n x out. A nil src uses the process-global generator, so runs
// are not reproducible unless a seeded source is supplied.
func Synthetic(n, in, out int, src rand.Source) Dataset {
	if n <= 0 || in <= 0 || out <= 0 {
		panic(fmt.Sprintf("data: invalid dataset shape %dx%d -> %dx%d", n, in, n, out))
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	return Dataset{
		X: randomDense(n, in, normal),
		Y: randomDense(n, out, normal),
	}
}

// randomDense fills an r x c matrix with draws from dist.
func randomDense(r, c int, dist distuv.Normal) *mat.Dense {
	values := make([]float64, r*c)
	for i := range values {
		values[i] = dist.Rand()
	}
	return mat.NewDense(r, c, values)
}
