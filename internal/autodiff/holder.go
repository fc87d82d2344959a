package autodiff

import (
	"fmt"

	"github.com/born-ml/gradtape/internal/tensor"
)

// TapeHolder is the type-state carried by a Tensor. It is implemented by
// NoTape (untracked) and *OwnedTape (tracked).
//
// Operations are written once, generic over the holder. They always call
// AddOperation; with NoTape the call is discarded.
type TapeHolder[H any] interface {
	// AddOperation appends a backward operation in forward order.
	AddOperation(op Operation)

	// Merge combines the holders of two inputs into the holder of the result.
	Merge(other H) H

	// Recording reports whether added operations are kept.
	Recording() bool
}

// NoTape is the holder of untracked tensors. It records nothing.
type NoTape struct{}

// AddOperation discards op.
func (NoTape) AddOperation(Operation) {}

// Merge returns NoTape.
func (NoTape) Merge(NoTape) NoTape { return NoTape{} }

// Recording returns false.
func (NoTape) Recording() bool { return false }

// OwnedTape is the holder of tracked tensors: the ordered list of backward
// operations of one computation.
//
// Every tensor produced from a traced tensor shares its holder. When two
// holders meet in a binary operation the second one's operations are moved
// to the end of the first one's list and the second holder forwards to the
// first from then on, so exactly one list survives.
//
// An OwnedTape is drained by IntoTapeAndRun. Recording into or merging a
// drained holder panics.
//
// OwnedTape is not safe for concurrent use.
type OwnedTape struct {
	operations []Operation
	mergedInto *OwnedTape
	drained    bool
}

// NewOwnedTape creates a holder with no operations.
func NewOwnedTape() *OwnedTape {
	return &OwnedTape{
		operations: make([]Operation, 0, 16),
	}
}

// root follows merge forwarding to the holder that owns the operations.
func (h *OwnedTape) root() *OwnedTape {
	for h.mergedInto != nil {
		h = h.mergedInto
	}
	return h
}

// AddOperation appends op to the operation list.
func (h *OwnedTape) AddOperation(op Operation) {
	r := h.root()
	if r.drained {
		panic("tape holder: cannot record after backward; trace a new tensor")
	}
	r.operations = append(r.operations, op)
}

// Merge concatenates other's operations after h's and returns the surviving
// holder. Each list keeps its own order; the two lists are independent up
// to this point, so their relative placement does not affect replay.
//
// Merging a holder with itself (both inputs derived from the same traced
// tensor) is a no-op.
func (h *OwnedTape) Merge(other *OwnedTape) *OwnedTape {
	a, b := h.root(), other.root()
	if a.drained || b.drained {
		panic("tape holder: cannot merge a holder drained by backward")
	}
	if a == b {
		return a
	}
	a.operations = append(a.operations, b.operations...)
	b.operations = nil
	b.mergedInto = a
	return a
}

// Recording returns true until the holder is drained.
func (h *OwnedTape) Recording() bool {
	return !h.root().drained
}

// NumOps returns the number of recorded operations.
func (h *OwnedTape) NumOps() int {
	return len(h.root().operations)
}

// IntoTapeAndRun runs the backward pass.
//
// Algorithm:
//  1. Create a fresh Tape
//  2. Add seed into the gradient of terminal
//  3. Replay operations in reverse order, skipping those whose output has no gradient
//  4. Drain the holder
//
// A skipped operation whose output receives a gradient later in the replay
// was recorded out of order; that is an internal-consistency failure and
// panics.
//
// Calling it again replays nothing: the returned tape holds only the seed.
func (h *OwnedTape) IntoTapeAndRun(seed *tensor.RawTensor, terminal tensor.Identity) *Tape {
	r := h.root()
	operations := r.operations
	r.operations = nil
	r.drained = true

	tape := NewTape()
	tensor.AddAssign(tape.MutGradient(terminal), seed)

	var skipped []tensor.Identity
	for i := len(operations) - 1; i >= 0; i-- {
		op := operations[i]
		if !tape.Has(op.Output()) {
			skipped = append(skipped, op.Output()) // No gradient flows through this branch
			continue
		}
		op.Apply(tape)
	}

	for _, out := range skipped {
		if tape.Has(out) {
			panic(fmt.Sprintf("tape holder: gradient of tensor %s arrived after its operation was replayed; operations recorded out of order", out.ID()))
		}
	}

	return tape
}
