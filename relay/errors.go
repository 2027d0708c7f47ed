package relay

import (
	"errors"
	"fmt"
)

var (
	// ErrContractViolation is matched by every *ContractViolation.
	ErrContractViolation = errors.New("handler does not accept the emitted arguments")

	// ErrDestroyedNode is raised when a destroyed node is connected.
	ErrDestroyedNode = errors.New("node has been destroyed")

	// ErrForeignNode is raised when two nodes from different registries are connected.
	ErrForeignNode = errors.New("nodes belong to different registries")

	// ErrUnboundNode is raised when a Node that was not created by a Registry is used.
	ErrUnboundNode = errors.New("node is not bound to a registry")

	// ErrNotFunc is raised when a dynamic slot is built from something that is not a function.
	ErrNotFunc = errors.New("dynamic slot handler must be a function")

	// ErrBadHandler is raised when a dynamic slot handler has an unsupported shape.
	ErrBadHandler = errors.New("dynamic slot handler has an unsupported signature")
)

// ContractViolation reports a slot invoked with arguments it cannot accept.
// It is a programming error: the connection was built with mismatched
// signatures. Emit panics with it instead of returning it.
type ContractViolation struct {
	Signal   string
	Slot     string
	Receiver ID
	Reason   string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("relay: slot %q on %s cannot handle signal %q: %s", e.Slot, e.Receiver, e.Signal, e.Reason)
}

// Is allows errors.Is to match ContractViolation with ErrContractViolation.
func (e *ContractViolation) Is(target error) bool {
	return target == ErrContractViolation
}

func (e *ContractViolation) Unwrap() error {
	return ErrContractViolation
}
