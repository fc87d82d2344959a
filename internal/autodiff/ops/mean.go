package ops

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// MeanOp represents the mean of all elements: output = sum(x) / n.
//
// Backward:
//
//	grad_x += grad_y / n (for every element)
type MeanOp struct {
	input  tensor.Phantom // x
	output tensor.Phantom // scalar
}

// NewMeanOp creates a new MeanOp.
func NewMeanOp(input, output tensor.Phantom) *MeanOp {
	return &MeanOp{input: input, output: output}
}

// Output returns the scalar mean.
func (op *MeanOp) Output() tensor.Identity {
	return op.output
}

// Apply spreads the scalar gradient evenly over the input.
func (op *MeanOp) Apply(tape *autodiff.Tape) {
	n := float64(op.input.Shape().NumElements())
	grad := tensor.BroadcastTo(tape.Gradient(op.output), op.input.Shape())
	tensor.AddAssign(tape.MutGradient(op.input), tensor.Scale(grad, 1/n))
}

// Mean reduces all elements of t to their average, a scalar.
func Mean[H autodiff.TapeHolder[H]](t *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	x, holder := autodiff.Split(t)

	n := float64(x.NumElements())
	result := tensor.Scalar(tensor.SumAll(x) / n)

	holder.AddOperation(NewMeanOp(x.Phantom(), result.Phantom()))
	return autodiff.WithHolder(result, holder)
}
