package ops

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// MulOp represents an element-wise multiplication operation: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a += outputGrad * b
//   - d(a*b)/db = a, so grad_b += outputGrad * a
type MulOp struct {
	a, b       tensor.Phantom
	aVal, bVal *tensor.RawTensor // forward values, never mutated
	output     tensor.Phantom
}

// NewMulOp creates a new MulOp from the forward inputs.
func NewMulOp(a, b *tensor.RawTensor, output tensor.Phantom) *MulOp {
	return &MulOp{
		a:      a.Phantom(),
		b:      b.Phantom(),
		aVal:   a,
		bVal:   b,
		output: output,
	}
}

// Output returns the product tensor.
func (op *MulOp) Output() tensor.Identity {
	return op.output
}

// Apply accumulates the product-rule gradients.
func (op *MulOp) Apply(tape *autodiff.Tape) {
	grad := tape.Gradient(op.output)
	tensor.AddAssign(tape.MutGradient(op.a), tensor.Mul(grad, op.bVal))
	tensor.AddAssign(tape.MutGradient(op.b), tensor.Mul(grad, op.aVal))
}

// Mul returns a * b elementwise. Both tensors must have the same shape.
func Mul[H autodiff.TapeHolder[H]](a, b *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	mustSameShape("mul", a, b)

	x, holderA := autodiff.Split(a)
	y, holderB := autodiff.Split(b)
	holder := holderA.Merge(holderB)

	result := tensor.Mul(x, y)
	holder.AddOperation(NewMulOp(x, y, result.Phantom()))
	return autodiff.WithHolder(result, holder)
}

// ScaleOp represents multiplication by a constant: output = s * x.
type ScaleOp struct {
	input  tensor.Phantom
	output tensor.Phantom
	factor float64
}

// Output returns the scaled tensor.
func (op *ScaleOp) Output() tensor.Identity {
	return op.output
}

// Apply adds factor * outputGrad into the input gradient.
func (op *ScaleOp) Apply(tape *autodiff.Tape) {
	grad := tensor.Scale(tape.Gradient(op.output), op.factor)
	tensor.AddAssign(tape.MutGradient(op.input), grad)
}

// Scale returns s * t.
func Scale[H autodiff.TapeHolder[H]](t *autodiff.Tensor[H], s float64) *autodiff.Tensor[H] {
	x, holder := autodiff.Split(t)

	result := tensor.Scale(x, s)
	holder.AddOperation(&ScaleOp{input: x.Phantom(), output: result.Phantom(), factor: s})
	return autodiff.WithHolder(result, holder)
}
