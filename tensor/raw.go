// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradtape/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape information via Shape(), Rank(), NumElements()
//   - Direct data access via Data() and At()
//   - A stable identity via ID() and Phantom()
//   - Deep copies with a fresh identity via Clone()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3})
//	data := raw.Data() // zero-filled, row-major
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-filled tensor of the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	return tensor.NewRaw(shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *RawTensor {
	return tensor.Zeros(shape)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float64) *RawTensor {
	return tensor.Full(shape, value)
}

// OnesLike creates a tensor of ones shaped like ref.
func OnesLike(ref Identity) *RawTensor {
	return tensor.OnesLike(ref)
}

// Scalar creates a rank-0 tensor.
func Scalar(value float64) *RawTensor {
	return tensor.Scalar(value)
}

// FromSlice creates a tensor from a flat row-major slice.
func FromSlice(data []float64, shape ...int) (*RawTensor, error) {
	return tensor.FromSlice(data, shape...)
}

// FromNested creates a tensor from a nested literal, inferring its shape.
func FromNested(value any) (*RawTensor, error) {
	return tensor.FromNested(value)
}

// FromDense creates a rank-2 tensor from a gonum matrix.
func FromDense(m mat.Matrix) *RawTensor {
	return tensor.FromDense(m)
}
