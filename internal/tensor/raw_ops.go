package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Raw array operations. All of them except AddAssign allocate a new tensor
// and leave their inputs untouched. Shape mismatches are programming errors
// and panic.

// mustMatch panics unless a and b have the same shape.
func mustMatch(op string, a, b *RawTensor) {
	if !a.shape.Equal(b.shape) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, a.shape, b.shape))
	}
}

// Add returns a + b elementwise.
func Add(a, b *RawTensor) *RawTensor {
	mustMatch("add", a, b)
	result := a.Clone()
	floats.Add(result.data, b.data)
	return result
}

// Mul returns a * b elementwise.
func Mul(a, b *RawTensor) *RawTensor {
	mustMatch("mul", a, b)
	result := a.Clone()
	floats.Mul(result.data, b.data)
	return result
}

// Scale returns s * a.
func Scale(a *RawTensor, s float64) *RawTensor {
	result := a.Clone()
	floats.Scale(s, result.data)
	return result
}

// Map applies fn to every element.
func Map(a *RawTensor, fn func(float64) float64) *RawTensor {
	result := a.Clone()
	for i, v := range result.data {
		result.data[i] = fn(v)
	}
	return result
}

// AddAssign adds src into dst in place. It is the accumulation primitive
// for gradient buffers.
func AddAssign(dst, src *RawTensor) {
	mustMatch("add_assign", dst, src)
	floats.Add(dst.data, src.data)
}

// ReduceLast collapses the trailing axis, calling fn once per trailing slice.
// The result has the input shape without its last axis.
func ReduceLast(a *RawTensor, fn func(slice []float64) float64) *RawTensor {
	if a.Rank() == 0 {
		panic("reduce_last: scalar has no trailing axis")
	}
	k := a.shape.Last()
	result := Zeros(a.shape.WithoutLast())
	for i := range result.data {
		result.data[i] = fn(a.data[i*k : (i+1)*k])
	}
	return result
}

// MapLast replaces every trailing slice with fn(slice). fn writes into dst,
// which has the same length as src. The result has the input shape.
func MapLast(a *RawTensor, fn func(dst, src []float64)) *RawTensor {
	if a.Rank() == 0 {
		panic("map_last: scalar has no trailing axis")
	}
	k := a.shape.Last()
	result := Zeros(a.shape)
	for i := 0; i < len(a.data); i += k {
		fn(result.data[i:i+k], a.data[i:i+k])
	}
	return result
}

// SumLast sums over the trailing axis.
//
//	[[1 2 3] [4 5 6]] → [6 15]
func SumLast(a *RawTensor) *RawTensor {
	return ReduceLast(a, floats.Sum)
}

// SumAll returns the sum of all elements.
func SumAll(a *RawTensor) float64 {
	return floats.Sum(a.data)
}

// BroadcastLast appends a trailing axis of size k, repeating every element
// of a k times along it. It is the inverse shape mapping of ReduceLast.
//
//	BroadcastLast([6 15], 3) → [[6 6 6] [15 15 15]]
//	BroadcastLast(6, 3)      → [6 6 6]
func BroadcastLast(a *RawTensor, k int) *RawTensor {
	shape := append(a.shape.Clone(), k)
	result := Zeros(shape)
	for i, v := range a.data {
		row := result.data[i*k : (i+1)*k]
		for j := range row {
			row[j] = v
		}
	}
	return result
}

// BroadcastTo repeats a one-element tensor to the given shape.
func BroadcastTo(a *RawTensor, shape Shape) *RawTensor {
	if a.NumElements() != 1 {
		panic(fmt.Sprintf("broadcast_to: only single-element tensors broadcast, got shape %v", a.shape))
	}
	return Full(shape, a.data[0])
}

// Equal reports whether a and b have the same shape and elements.
func Equal(a, b *RawTensor) bool {
	return a.shape.Equal(b.shape) && floats.Equal(a.data, b.data)
}

// EqualApprox reports whether a and b have the same shape and all elements
// are within tol of each other (absolute or relative).
func EqualApprox(a, b *RawTensor, tol float64) bool {
	return a.shape.Equal(b.shape) && floats.EqualApprox(a.data, b.data, tol)
}
