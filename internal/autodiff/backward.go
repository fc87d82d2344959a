package autodiff

import (
	"fmt"

	"github.com/born-ml/gradtape/internal/tensor"
)

// Backward computes gradients of a single-element tensor, seeded with 1.
//
// Example:
//
//	x, _ := autodiff.FromSlice([]float64{1, 2, 3}, 3)
//	loss := ops.Mean(ops.SumLast(autodiff.Trace(x)))
//	tape := autodiff.Backward(loss)
//	grad := tape.Gradient(x) // [1 1 1]
func Backward(t *Tensor[*OwnedTape]) *Tape {
	if t.raw.NumElements() != 1 {
		panic(fmt.Sprintf("backward: terminal tensor must have one element, got shape %v (use BackwardWithGrad)", t.Shape()))
	}
	return BackwardWithGrad(t, tensor.OnesLike(t))
}

// BackwardWithGrad computes gradients of t seeded with a caller-supplied
// gradient of t's shape.
func BackwardWithGrad(t *Tensor[*OwnedTape], seed *tensor.RawTensor) *Tape {
	if !seed.Shape().Equal(t.Shape()) {
		panic(fmt.Sprintf("backward: seed shape %v does not match tensor shape %v", seed.Shape(), t.Shape()))
	}
	return t.holder.IntoTapeAndRun(seed, t.raw.Phantom())
}

// Gradient returns the gradient of ref from tape.
// It is an alias of Tape.Gradient.
func Gradient(tape *Tape, ref tensor.Identity) *tensor.RawTensor {
	return tape.Gradient(ref)
}
