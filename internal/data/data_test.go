package data

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// TestSyntheticShapes tests that generated matrices have the requested shapes.
func TestSyntheticShapes(t *testing.T) {
	ds := Synthetic(64, 1000, 10, rand.NewSource(1))

	if r, c := ds.X.Dims(); r != 64 || c != 1000 {
		t.Errorf("X dims = %dx%d, want 64x1000", r, c)
	}
	if r, c := ds.Y.Dims(); r != 64 || c != 10 {
		t.Errorf("Y dims = %dx%d, want 64x10", r, c)
	}

	n, in, out := ds.Dims()
	if n != 64 || in != 1000 || out != 10 {
		t.Errorf("Dims() = (%d, %d, %d), want (64, 1000, 10)", n, in, out)
	}
}

// TestSyntheticDeterministic tests that the same seed reproduces the same data.
func TestSyntheticDeterministic(t *testing.T) {
	a := Synthetic(8, 5, 3, rand.NewSource(42))
	b := Synthetic(8, 5, 3, rand.NewSource(42))

	if !mat.Equal(a.X, b.X) || !mat.Equal(a.Y, b.Y) {
		t.Error("same seed produced different datasets")
	}
}

// TestSyntheticIndependentDraws tests that consecutive draws from one source
// yield different data (the train/validation split relies on this).
func TestSyntheticIndependentDraws(t *testing.T) {
	src := rand.NewSource(7)
	train := Synthetic(8, 5, 3, src)
	val := Synthetic(8, 5, 3, src)

	if mat.Equal(train.X, val.X) {
		t.Error("training and validation inputs are identical")
	}
	if mat.Equal(train.Y, val.Y) {
		t.Error("training and validation targets are identical")
	}
}

// TestSyntheticInvalidShape tests fail-fast on non-positive dimensions.
func TestSyntheticInvalidShape(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for non-positive dimension")
		}
	}()

	Synthetic(0, 10, 2, rand.NewSource(1))
}
