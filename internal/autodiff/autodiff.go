// Package autodiff implements reverse-mode automatic differentiation with a
// type-state tape.
//
// Architecture:
//   - Tensor[H]: a RawTensor payload plus a holder H that is NoTape (untracked) or *OwnedTape (tracked)
//   - OwnedTape: the ordered list of backward Operations threaded through a forward chain
//   - Operation: one recorded backward step, capturing its inputs by value
//   - Tape: the gradients produced by a backward pass, keyed by tensor identity
//
// Usage:
//
//	x, _ := autodiff.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	y := ops.SumLast(autodiff.Trace(x)) // [6 15], operation recorded
//	tape := autodiff.Backward(ops.Mean(y))
//	fmt.Println(tape.Gradient(x)) // all 0.5
package autodiff

import "github.com/born-ml/gradtape/internal/tensor"

// Tensor is a shaped tensor with a tape-tracking type-state.
//
// Type Parameters:
//   - H: NoTape for untracked tensors, *OwnedTape for tracked ones
//
// Tensor implements tensor.Identity, so it can be passed to Tape.Gradient.
type Tensor[H TapeHolder[H]] struct {
	raw    *tensor.RawTensor
	holder H
}

// New wraps raw as an untracked tensor.
func New(raw *tensor.RawTensor) *Tensor[NoTape] {
	return &Tensor[NoTape]{raw: raw}
}

// FromSlice creates an untracked tensor from a flat slice in row-major order.
func FromSlice(data []float64, shape ...int) (*Tensor[NoTape], error) {
	raw, err := tensor.FromSlice(data, shape...)
	if err != nil {
		return nil, err
	}
	return New(raw), nil
}

// FromNested creates an untracked tensor from a nested literal.
func FromNested(value any) (*Tensor[NoTape], error) {
	raw, err := tensor.FromNested(value)
	if err != nil {
		return nil, err
	}
	return New(raw), nil
}

// Trace marks t as tracked, giving it an empty holder.
//
// The result shares t's storage and identity, so gradients computed for the
// traced tensor are found with t itself.
func Trace(t *Tensor[NoTape]) *Tensor[*OwnedTape] {
	return &Tensor[*OwnedTape]{
		raw:    t.raw,
		holder: NewOwnedTape(),
	}
}

// Detach returns an untracked tensor sharing t's storage under a new
// identity. Operations on the result are not recorded, and gradients of a
// traced copy of the result never reach t.
func Detach[H TapeHolder[H]](t *Tensor[H]) *Tensor[NoTape] {
	return New(t.raw.View())
}

// Split separates t's payload from its holder, so an operation can compute
// on the payload and thread the holder to its result.
func Split[H TapeHolder[H]](t *Tensor[H]) (*tensor.RawTensor, H) {
	return t.raw, t.holder
}

// WithHolder joins a payload and a holder into a tensor. It is the inverse
// of Split.
func WithHolder[H TapeHolder[H]](raw *tensor.RawTensor, holder H) *Tensor[H] {
	return &Tensor[H]{raw: raw, holder: holder}
}

// Data returns the elements in row-major order. The slice must not be modified.
func (t *Tensor[H]) Data() []float64 {
	return t.raw.Data()
}

// Item returns the value of a single-element tensor.
func (t *Tensor[H]) Item() float64 {
	return t.raw.Item()
}

// Shape returns the tensor's shape.
func (t *Tensor[H]) Shape() tensor.Shape {
	return t.raw.Shape()
}

// Rank returns the number of dimensions.
func (t *Tensor[H]) Rank() int {
	return t.raw.Rank()
}

// ID returns the storage identity used as the gradient key.
func (t *Tensor[H]) ID() tensor.ID {
	return t.raw.ID()
}

// Raw returns the underlying RawTensor.
func (t *Tensor[H]) Raw() *tensor.RawTensor {
	return t.raw
}

// Holder returns the tape holder.
func (t *Tensor[H]) Holder() H {
	return t.holder
}

// Phantom returns the identity and shape of t without its data.
func (t *Tensor[H]) Phantom() tensor.Phantom {
	return t.raw.Phantom()
}

// String formats the tensor's data.
func (t *Tensor[H]) String() string {
	return t.raw.String()
}
