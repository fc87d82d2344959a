package ops

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// AddOp represents an element-wise addition operation: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a += outputGrad
//   - d(a+b)/db = 1, so grad_b += outputGrad
//
// When a and b are the same tensor both contributions land in one buffer.
type AddOp struct {
	a, b   tensor.Phantom
	output tensor.Phantom
}

// NewAddOp creates a new AddOp.
func NewAddOp(a, b, output tensor.Phantom) *AddOp {
	return &AddOp{a: a, b: b, output: output}
}

// Output returns the sum tensor.
func (op *AddOp) Output() tensor.Identity {
	return op.output
}

// Apply adds the output gradient into both input gradients.
func (op *AddOp) Apply(tape *autodiff.Tape) {
	grad := tape.Gradient(op.output)
	tensor.AddAssign(tape.MutGradient(op.a), grad)
	tensor.AddAssign(tape.MutGradient(op.b), grad)
}

// Add returns a + b. Both tensors must have the same shape.
//
// The holders of a and b are merged, so tensors traced separately can be
// combined into one computation.
func Add[H autodiff.TapeHolder[H]](a, b *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	mustSameShape("add", a, b)

	x, holderA := autodiff.Split(a)
	y, holderB := autodiff.Split(b)
	holder := holderA.Merge(holderB)

	result := tensor.Add(x, y)
	holder.AddOperation(NewAddOp(x.Phantom(), y.Phantom(), result.Phantom()))
	return autodiff.WithHolder(result, holder)
}
