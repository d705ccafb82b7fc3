package hierarchy

import (
	"errors"
	"fmt"
)

// Sentinel errors for node attachment and hierarchy mutation.
var (
	// ErrNilNode indicates a nil node was passed where one is required.
	ErrNilNode = errors.New("node cannot be nil")

	// ErrAlreadyAttached indicates the node already has a parent.
	ErrAlreadyAttached = errors.New("node already has a parent")

	// ErrForeignNode indicates the node is owned by a different hierarchy.
	ErrForeignNode = errors.New("node belongs to a different hierarchy")

	// ErrNotChild indicates a detach target is not a child of the parent.
	ErrNotChild = errors.New("node is not a child of this parent")

	// ErrDuplicateID indicates two items resolved to the same identifier.
	ErrDuplicateID = errors.New("duplicate identifier")

	// ErrUnknownID indicates an identifier has no node in the hierarchy.
	ErrUnknownID = errors.New("identifier not found in hierarchy")

	// ErrMissingItem indicates a relation references an identifier with
	// no corresponding item. See MissingItemError.
	ErrMissingItem = errors.New("no item for identifier")
)

// Side names which end of a parent/child relation failed to resolve.
type Side string

// Relation sides.
const (
	SideParent Side = "parent"
	SideChild  Side = "child"
)

// MissingItemError reports a relation referencing an identifier that has
// no corresponding item, naming the identifier and the side that was
// unresolved.
type MissingItemError struct {
	// ID is the identifier that could not be resolved.
	ID string
	// Side is the end of the relation the identifier appeared on.
	Side Side
}

// Error implements the error interface.
func (e *MissingItemError) Error() string {
	return fmt.Sprintf("no item for %s identifier %q", e.Side, e.ID)
}

// Unwrap returns ErrMissingItem for errors.Is support.
func (e *MissingItemError) Unwrap() error {
	return ErrMissingItem
}
