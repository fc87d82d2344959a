package autodiff

import (
	"fmt"

	"github.com/born-ml/gradtape/internal/tensor"
)

// Tape stores the gradients accumulated by one backward pass, keyed by
// tensor identity.
//
// A Tape is created by OwnedTape.IntoTapeAndRun, filled by the replayed
// operations and then handed to the caller. It is never reused across
// passes.
//
// Usage:
//
//	tape := autodiff.Backward(loss)
//	grad := tape.Gradient(x) // same shape as x
type Tape struct {
	gradients map[tensor.ID]*tensor.RawTensor
}

// NewTape creates an empty tape.
func NewTape() *Tape {
	return &Tape{
		gradients: make(map[tensor.ID]*tensor.RawTensor),
	}
}

// Gradient returns the accumulated gradient for ref.
//
// Panics if nothing was ever accumulated for ref. During replay this cannot
// happen for a well-formed holder, since an operation only runs once its
// output has received a gradient.
func (t *Tape) Gradient(ref tensor.Identity) *tensor.RawTensor {
	grad, ok := t.gradients[ref.ID()]
	if !ok {
		panic(fmt.Sprintf("gradient: no gradient recorded for tensor %s with shape %v", ref.ID(), ref.Shape()))
	}
	return grad
}

// MutGradient returns the gradient buffer for ref, allocating a zero buffer
// of ref's shape on first use. Callers must add into the buffer.
func (t *Tape) MutGradient(ref tensor.Identity) *tensor.RawTensor {
	grad, ok := t.gradients[ref.ID()]
	if !ok {
		grad = tensor.ZerosLike(ref)
		t.gradients[ref.ID()] = grad
		return grad
	}
	if !grad.Shape().Equal(ref.Shape()) {
		panic(fmt.Sprintf("gradient: tensor %s registered with shape %v, requested as %v",
			ref.ID(), grad.Shape(), ref.Shape()))
	}
	return grad
}

// Lookup returns the gradient for ref and whether one was recorded.
func (t *Tape) Lookup(ref tensor.Identity) (*tensor.RawTensor, bool) {
	grad, ok := t.gradients[ref.ID()]
	return grad, ok
}

// Has reports whether a gradient was recorded for ref.
func (t *Tape) Has(ref tensor.Identity) bool {
	_, ok := t.gradients[ref.ID()]
	return ok
}

// Len returns the number of tensors with a recorded gradient.
func (t *Tape) Len() int {
	return len(t.gradients)
}
