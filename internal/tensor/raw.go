package tensor

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// RawTensor is the low-level tensor representation: a dense row-major
// float64 buffer, its shape, and the identity of the storage.
//
// Every allocation gets a fresh ID. Wrapping a RawTensor (for example when a
// tensor is traced) keeps the ID, so gradients recorded against the wrapped
// value are found with the original.
type RawTensor struct {
	id     ID
	data   []float64
	shape  Shape
	stride []int
}

// NewRaw creates a new zero-filled RawTensor with the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}

	return &RawTensor{
		id:     newID(),
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// ID returns the storage identity.
func (r *RawTensor) ID() ID {
	return r.id
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// Rank returns the number of dimensions.
func (r *RawTensor) Rank() int {
	return len(r.shape)
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return len(r.data)
}

// Data returns the underlying buffer.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []float64 {
	return r.data
}

// Item returns the single element of a one-element tensor.
func (r *RawTensor) Item() float64 {
	if len(r.data) != 1 {
		panic(fmt.Sprintf("item: tensor has %d elements, want 1", len(r.data)))
	}
	return r.data[0]
}

// At returns the element at the given multi-dimensional index.
func (r *RawTensor) At(index ...int) float64 {
	if len(index) != len(r.shape) {
		panic(fmt.Sprintf("at: got %d indices for rank %d tensor", len(index), len(r.shape)))
	}
	offset := 0
	for i, idx := range index {
		if idx < 0 || idx >= r.shape[i] {
			panic(fmt.Sprintf("at: index %d out of range for axis %d of size %d", idx, i, r.shape[i]))
		}
		offset += idx * r.stride[i]
	}
	return r.data[offset]
}

// Phantom returns the identity and shape of this tensor without its data.
func (r *RawTensor) Phantom() Phantom {
	return Phantom{id: r.id, shape: r.shape.Clone()}
}

// Clone returns a deep copy with a new identity.
func (r *RawTensor) Clone() *RawTensor {
	return &RawTensor{
		id:     newID(),
		data:   append([]float64(nil), r.data...),
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
	}
}

// View returns a tensor sharing r's data under a new identity.
// Gradients recorded against the view are not found with r.
func (r *RawTensor) View() *RawTensor {
	return &RawTensor{
		id:     newID(),
		data:   r.data,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
	}
}

// Dense returns a copy of a rank-2 tensor as a gonum matrix.
func (r *RawTensor) Dense() *mat.Dense {
	if r.Rank() != 2 {
		panic(fmt.Sprintf("dense: tensor has rank %d, want 2", r.Rank()))
	}
	return mat.NewDense(r.shape[0], r.shape[1], append([]float64(nil), r.data...))
}

// String formats the tensor as nested brackets. Rank-2 tensors are printed
// as a matrix.
func (r *RawTensor) String() string {
	switch r.Rank() {
	case 0:
		return fmt.Sprintf("%g", r.data[0])
	case 2:
		return fmt.Sprintf("%v", mat.Formatted(r.Dense(), mat.Squeeze()))
	}
	var sb strings.Builder
	r.format(&sb, 0, 0)
	return sb.String()
}

func (r *RawTensor) format(sb *strings.Builder, axis, offset int) {
	sb.WriteByte('[')
	for i := 0; i < r.shape[axis]; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		pos := offset + i*r.stride[axis]
		if axis == r.Rank()-1 {
			fmt.Fprintf(sb, "%g", r.data[pos])
			continue
		}
		r.format(sb, axis+1, pos)
	}
	sb.WriteByte(']')
}
