// Package ops implements differentiable tensor operations.
//
// Every operation follows the same protocol:
//  1. Split the input into its payload and its tape holder
//  2. Compute the forward result from the payload only
//  3. Record a backward operation capturing local derivatives and the input/output phantoms
//  4. Attach the holder to the result
//
// Operations are generic over the holder type, so the same code serves
// tracked and untracked tensors; untracked inputs record nothing.
//
// Supported operations:
//   - SumLast, MeanLast, MaxLast: reductions over the trailing axis (rank R → R-1)
//   - Mean: reduction of all elements to a scalar
//   - Add, Mul: elementwise, two inputs (holders are merged)
//   - Scale: multiplication by a constant
package ops

import (
	"fmt"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// mustHaveTrailingAxis panics if t is a scalar.
func mustHaveTrailingAxis(op string, t tensor.Identity) {
	if len(t.Shape()) == 0 {
		panic(fmt.Sprintf("%s: input must have rank >= 1, got a scalar", op))
	}
}

// mustSameShape panics unless a and b have identical shapes.
func mustSameShape[H autodiff.TapeHolder[H]](op string, a, b *autodiff.Tensor[H]) {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, a.Shape(), b.Shape()))
	}
}
