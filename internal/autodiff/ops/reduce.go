package ops

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// ReduceLastOp is the backward step of a reduction over the trailing axis.
//
// Forward:
//
//	y[i...] = reduce(x[i..., :])
//
// Backward:
//
//	grad_x += deriv * broadcast_last(grad_y)
//
// deriv has the input's shape and holds ∂y/∂x for every input element:
// all ones for a sum, 1/k for a mean, a one-hot mask of the maximum for a max.
type ReduceLastOp struct {
	deriv  *tensor.RawTensor // ∂y/∂x, input shape
	input  tensor.Phantom    // x
	output tensor.Phantom    // y, input shape without last axis
}

// NewReduceLastOp creates a new ReduceLastOp.
func NewReduceLastOp(deriv *tensor.RawTensor, input, output tensor.Phantom) *ReduceLastOp {
	return &ReduceLastOp{
		deriv:  deriv,
		input:  input,
		output: output,
	}
}

// Output returns the reduced tensor.
func (op *ReduceLastOp) Output() tensor.Identity {
	return op.output
}

// Apply repeats each output gradient across the trailing axis, weights it
// by the local derivative and adds it into the input gradient.
func (op *ReduceLastOp) Apply(tape *autodiff.Tape) {
	grad := tensor.BroadcastLast(tape.Gradient(op.output), op.input.Shape().Last())
	tensor.AddAssign(tape.MutGradient(op.input), tensor.Mul(op.deriv, grad))
}

// reduceLast is the shared forward path of the trailing-axis reductions.
// deriv fills the local derivative of one trailing slice.
func reduceLast[H autodiff.TapeHolder[H]](
	name string,
	t *autodiff.Tensor[H],
	reduce func(slice []float64) float64,
	deriv func(dst, src []float64),
) *autodiff.Tensor[H] {
	mustHaveTrailingAxis(name, t)

	x, holder := autodiff.Split(t)
	result := tensor.ReduceLast(x, reduce)

	// Untracked inputs skip building the derivative; a tracked holder always
	// receives the operation, so a drained one panics.
	if _, untracked := any(holder).(autodiff.NoTape); !untracked {
		holder.AddOperation(NewReduceLastOp(tensor.MapLast(x, deriv), x.Phantom(), result.Phantom()))
	}

	return autodiff.WithHolder(result, holder)
}

// SumLast sums over the trailing axis: shape [d1, ..., dR] becomes
// [d1, ..., dR-1]. A rank-1 input gives a scalar.
//
// Example:
//
//	x, _ := autodiff.FromNested([][]float64{{1, 2, 3}, {4, 5, 6}})
//	y := ops.SumLast(autodiff.Trace(x)) // [6 15]
//
// Panics if t is a scalar.
func SumLast[H autodiff.TapeHolder[H]](t *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return reduceLast("sum_last", t, floats.Sum, func(dst, _ []float64) {
		for i := range dst {
			dst[i] = 1
		}
	})
}

// MeanLast averages over the trailing axis.
func MeanLast[H autodiff.TapeHolder[H]](t *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	mean := func(slice []float64) float64 {
		return floats.Sum(slice) / float64(len(slice))
	}
	return reduceLast("mean_last", t, mean, func(dst, _ []float64) {
		k := float64(len(dst))
		for i := range dst {
			dst[i] = 1 / k
		}
	})
}

// MaxLast takes the maximum over the trailing axis.
//
// The gradient is routed only to the maximal element of each slice; on ties
// the first maximum receives it.
func MaxLast[H autodiff.TapeHolder[H]](t *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return reduceLast("max_last", t, floats.Max, func(dst, src []float64) {
		dst[floats.MaxIdx(src)] = 1
	})
}
