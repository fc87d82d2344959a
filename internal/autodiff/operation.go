package autodiff

import "github.com/born-ml/gradtape/internal/tensor"

// Operation is a recorded backward step.
//
// It is created during the forward pass, when no Tape exists yet, so it
// captures everything it needs by value: forward-pass byproducts such as
// local derivatives, and the identities of its input and output tensors.
// During the backward pass Apply reads the gradient of Output from the tape
// and adds contributions into the gradients of the inputs.
type Operation interface {
	// Output returns the tensor whose gradient this operation consumes.
	// Operations whose output never received a gradient are skipped.
	Output() tensor.Identity

	// Apply accumulates input gradients. It must add into
	// tape.MutGradient(...), never overwrite it.
	Apply(tape *Tape)
}

// funcOperation adapts a closure to the Operation interface.
type funcOperation struct {
	output tensor.Identity
	apply  func(tape *Tape)
}

// NewOperation wraps a closure as an Operation producing output.
//
// Example:
//
//	holder.AddOperation(autodiff.NewOperation(out.Phantom(), func(tape *autodiff.Tape) {
//	    tensor.AddAssign(tape.MutGradient(in), tape.Gradient(out))
//	}))
func NewOperation(output tensor.Identity, apply func(tape *Tape)) Operation {
	return &funcOperation{output: output, apply: apply}
}

func (op *funcOperation) Output() tensor.Identity {
	return op.output
}

func (op *funcOperation) Apply(tape *Tape) {
	op.apply(tape)
}
