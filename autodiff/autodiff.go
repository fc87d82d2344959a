// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// A tensor is either untracked (Tensor[NoTape]) or tracked
// (Tensor[*OwnedTape]). Trace turns the first into the second; every
// operation on a tracked tensor records a backward step in the tensor's
// holder, and Backward replays those steps in reverse to produce a Tape of
// gradients keyed by tensor identity.
//
// Example:
//
//	import "github.com/born-ml/gradtape/autodiff"
//
//	func main() {
//	    x, _ := autodiff.FromNested([][]float64{{1, 2, 3}, {4, 5, 6}})
//
//	    y := autodiff.SumLast(autodiff.Trace(x)) // [6 15]
//	    tape := autodiff.Backward(autodiff.Mean(y))
//
//	    fmt.Println(autodiff.Gradient(tape, x)) // 0.5 everywhere
//	}
package autodiff

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/autodiff/ops"
	"github.com/born-ml/gradtape/internal/tensor"
)

// TapeHolder is the tracking type-state of a Tensor.
type TapeHolder[H any] = autodiff.TapeHolder[H]

// NoTape marks untracked tensors.
type NoTape = autodiff.NoTape

// OwnedTape holds the recorded operations of tracked tensors.
type OwnedTape = autodiff.OwnedTape

// Tensor is a shaped tensor with tracking type-state H.
type Tensor[H TapeHolder[H]] = autodiff.Tensor[H]

// Tape stores the gradients produced by a backward pass.
type Tape = autodiff.Tape

// Operation is a recorded backward step, for custom operations.
type Operation = autodiff.Operation

// New wraps a RawTensor as an untracked tensor.
func New(raw *tensor.RawTensor) *Tensor[NoTape] {
	return autodiff.New(raw)
}

// FromSlice creates an untracked tensor from a flat row-major slice.
func FromSlice(data []float64, shape ...int) (*Tensor[NoTape], error) {
	return autodiff.FromSlice(data, shape...)
}

// FromNested creates an untracked tensor from a nested literal.
func FromNested(value any) (*Tensor[NoTape], error) {
	return autodiff.FromNested(value)
}

// NewOperation wraps a closure as an Operation producing output.
func NewOperation(output tensor.Identity, apply func(tape *Tape)) Operation {
	return autodiff.NewOperation(output, apply)
}

// Trace marks t as tracked.
func Trace(t *Tensor[NoTape]) *Tensor[*OwnedTape] {
	return autodiff.Trace(t)
}

// Detach returns an untracked tensor sharing t's storage.
func Detach[H TapeHolder[H]](t *Tensor[H]) *Tensor[NoTape] {
	return autodiff.Detach(t)
}

// Split separates t's payload from its holder.
func Split[H TapeHolder[H]](t *Tensor[H]) (*tensor.RawTensor, H) {
	return autodiff.Split(t)
}

// WithHolder joins a payload and a holder into a tensor.
func WithHolder[H TapeHolder[H]](raw *tensor.RawTensor, holder H) *Tensor[H] {
	return autodiff.WithHolder(raw, holder)
}

// SumLast sums over the trailing axis (rank R → R-1).
func SumLast[H TapeHolder[H]](t *Tensor[H]) *Tensor[H] {
	return ops.SumLast(t)
}

// MeanLast averages over the trailing axis.
func MeanLast[H TapeHolder[H]](t *Tensor[H]) *Tensor[H] {
	return ops.MeanLast(t)
}

// MaxLast takes the maximum over the trailing axis.
func MaxLast[H TapeHolder[H]](t *Tensor[H]) *Tensor[H] {
	return ops.MaxLast(t)
}

// Mean averages all elements into a scalar.
func Mean[H TapeHolder[H]](t *Tensor[H]) *Tensor[H] {
	return ops.Mean(t)
}

// Add returns a + b.
func Add[H TapeHolder[H]](a, b *Tensor[H]) *Tensor[H] {
	return ops.Add(a, b)
}

// Mul returns a * b elementwise.
func Mul[H TapeHolder[H]](a, b *Tensor[H]) *Tensor[H] {
	return ops.Mul(a, b)
}

// Scale returns s * t.
func Scale[H TapeHolder[H]](t *Tensor[H], s float64) *Tensor[H] {
	return ops.Scale(t, s)
}

// Backward computes gradients of a single-element tensor, seeded with 1.
func Backward(t *Tensor[*OwnedTape]) *Tape {
	return autodiff.Backward(t)
}

// BackwardWithGrad computes gradients of t seeded with grad.
func BackwardWithGrad(t *Tensor[*OwnedTape], grad *tensor.RawTensor) *Tape {
	return autodiff.BackwardWithGrad(t, grad)
}

// Gradient returns the gradient of ref from tape.
func Gradient(tape *Tape, ref tensor.Identity) *tensor.RawTensor {
	return autodiff.Gradient(tape, ref)
}
