package tensor

import "github.com/google/uuid"

// ID is the stable identity of a tensor's storage.
//
// Gradients are keyed by ID rather than by tensor value, so a gradient can be
// looked up after the tensor that produced it has been consumed by an
// operation. IDs are random UUIDs and are never reused.
type ID uuid.UUID

func newID() ID {
	return ID(uuid.New())
}

// String returns the canonical UUID form of the ID.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// Identity is anything that names a tensor storage and knows its shape.
// The shape is what a gradient buffer for that identity is allocated with.
type Identity interface {
	ID() ID
	Shape() Shape
}

// Phantom is a data-less stand-in for a tensor: its identity and shape only.
// Backward operations capture phantoms instead of the tensors themselves.
type Phantom struct {
	id    ID
	shape Shape
}

// ID returns the identity of the tensor this phantom stands for.
func (p Phantom) ID() ID {
	return p.id
}

// Shape returns the shape of the tensor this phantom stands for.
func (p Phantom) Shape() Shape {
	return p.shape
}
