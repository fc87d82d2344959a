package tensor

import (
	"reflect"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) *RawTensor {
	raw, err := NewRaw(shape)
	if err != nil {
		panic(err)
	}
	return raw
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *RawTensor {
	raw := Zeros(shape)
	for i := range raw.data {
		raw.data[i] = value
	}
	return raw
}

// ZerosLike creates a zero tensor with the same shape as ref.
func ZerosLike(ref Identity) *RawTensor {
	return Zeros(ref.Shape())
}

// OnesLike creates a tensor of ones with the same shape as ref.
func OnesLike(ref Identity) *RawTensor {
	return Full(ref.Shape(), 1)
}

// Scalar creates a rank-0 tensor.
func Scalar(value float64) *RawTensor {
	return Full(Shape{}, value)
}

// FromSlice creates a tensor from a flat slice in row-major order.
// The slice is copied into the tensor's memory.
//
// Example:
//
//	t, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice(data []float64, shape ...int) (*RawTensor, error) {
	s := Shape(shape)
	if s.NumElements() != len(data) {
		return nil, errors.Errorf("shape %v requires %d elements, but got %d", s, s.NumElements(), len(data))
	}

	raw, err := NewRaw(s)
	if err != nil {
		return nil, err
	}
	copy(raw.data, data)
	return raw, nil
}

// FromDense creates a rank-2 tensor from a gonum matrix.
func FromDense(m mat.Matrix) *RawTensor {
	rows, cols := m.Dims()
	raw := Zeros(Shape{rows, cols})
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			raw.data[i*cols+j] = m.At(i, j)
		}
	}
	return raw
}

// FromNested creates a tensor from a nested literal, inferring the shape.
//
// Accepted values are numbers (giving a scalar) and arbitrarily nested
// slices or arrays of numbers, for example [][]float64 or the []any values
// produced by YAML and JSON decoders. Every slice on the same level must have
// the same length.
//
// Example:
//
//	t, err := tensor.FromNested([][]float64{{1, 2, 3}, {4, 5, 6}}) // shape [2 3]
func FromNested(value any) (*RawTensor, error) {
	var shape Shape
	if err := inferShape(reflect.ValueOf(value), 0, &shape); err != nil {
		return nil, err
	}

	raw, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}

	data := raw.data[:0]
	if err := flatten(reflect.ValueOf(value), 0, shape, &data); err != nil {
		return nil, err
	}
	return raw, nil
}

// inferShape walks the first element of every level and records its length.
func inferShape(v reflect.Value, depth int, shape *Shape) error {
	v = unwrap(v)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return errors.Errorf("empty list at depth %d", depth)
		}
		*shape = append(*shape, v.Len())
		return inferShape(v.Index(0), depth+1, shape)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	default:
		return errors.Errorf("unsupported element %v at depth %d", v.Kind(), depth)
	}
}

// flatten appends the leaves of v in row-major order, checking that every
// level matches the length recorded for it in want.
func flatten(v reflect.Value, depth int, want Shape, data *[]float64) error {
	v = unwrap(v)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if len(want) == 0 {
			return errors.Errorf("unexpected list at depth %d", depth)
		}
		if v.Len() != want[0] {
			return errors.Errorf("ragged input at depth %d: got length %d, want %d", depth, v.Len(), want[0])
		}
		for i := 0; i < v.Len(); i++ {
			if err := flatten(v.Index(i), depth+1, want[1:], data); err != nil {
				return err
			}
		}
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if len(want) != 0 {
			return errors.Errorf("ragged input at depth %d: got a number, want a list", depth)
		}
		*data = append(*data, float64(v.Int()))
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if len(want) != 0 {
			return errors.Errorf("ragged input at depth %d: got a number, want a list", depth)
		}
		*data = append(*data, float64(v.Uint()))
		return nil
	case reflect.Float32, reflect.Float64:
		if len(want) != 0 {
			return errors.Errorf("ragged input at depth %d: got a number, want a list", depth)
		}
		*data = append(*data, v.Float())
		return nil
	default:
		return errors.Errorf("unsupported element %v at depth %d", v.Kind(), depth)
	}
}

// unwrap strips interface boxing, which []any from decoders introduces.
func unwrap(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}
