// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/gradtape/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// ID is the stable identity of a tensor's storage.
type ID = tensor.ID

// Identity is anything that names a tensor storage and knows its shape.
type Identity = tensor.Identity

// Phantom is the identity and shape of a tensor, without its data.
type Phantom = tensor.Phantom

// Add returns a + b elementwise.
func Add(a, b *RawTensor) *RawTensor {
	return tensor.Add(a, b)
}

// Mul returns a * b elementwise.
func Mul(a, b *RawTensor) *RawTensor {
	return tensor.Mul(a, b)
}

// Scale returns s * a.
func Scale(a *RawTensor, s float64) *RawTensor {
	return tensor.Scale(a, s)
}

// Map applies fn to every element.
func Map(a *RawTensor, fn func(float64) float64) *RawTensor {
	return tensor.Map(a, fn)
}

// AddAssign adds src into dst in place.
func AddAssign(dst, src *RawTensor) {
	tensor.AddAssign(dst, src)
}

// SumLast sums over the trailing axis.
func SumLast(a *RawTensor) *RawTensor {
	return tensor.SumLast(a)
}

// BroadcastLast repeats every element k times along a new trailing axis.
func BroadcastLast(a *RawTensor, k int) *RawTensor {
	return tensor.BroadcastLast(a, k)
}

// Equal reports whether a and b have the same shape and elements.
func Equal(a, b *RawTensor) bool {
	return tensor.Equal(a, b)
}

// EqualApprox reports whether a and b match within tol.
func EqualApprox(a, b *RawTensor, tol float64) bool {
	return tensor.EqualApprox(a, b, tol)
}
