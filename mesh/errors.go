// File: errors.go
// Role: sentinel errors and the typed KernelError wrapper for the kernel's
// four classes of failure.
//
// Error policy (the same convention builder/errors.go follows):
//   - Only sentinel variables are exposed; callers use errors.Is to branch.
//   - Sentinels are never wrapped with formatted strings at definition site.
//   - Operators attach context (operation name, offending entity id) via
//     KernelError, never by stringifying into the sentinel itself.
package mesh

import (
	"errors"
	"fmt"
)

// Kind classifies a kernel error into one of four failure modes.
type Kind int

const (
	// KindBadArgument: a precondition on input handles/positions failed.
	KindBadArgument Kind = iota
	// KindStaleHandle: a handle no longer resolves to a live entity.
	KindStaleHandle
	// KindTopologyViolation: an operator's adjacency preconditions are unmet.
	KindTopologyViolation
	// KindInconsistency: navigation/validation detected a corrupt invariant.
	KindInconsistency
)

// String renders the Kind for diagnostic messages.
func (k Kind) String() string {
	switch k {
	case KindBadArgument:
		return "bad-argument"
	case KindStaleHandle:
		return "stale-handle"
	case KindTopologyViolation:
		return "topology-violation"
	case KindInconsistency:
		return "inconsistency"
	default:
		return "unknown"
	}
}

// Sentinel errors. Wrap these with %w via KernelError; never compare by
// string — use errors.Is.
var (
	ErrNilHandle         = errors.New("mesh: nil handle")
	ErrStaleHandle       = errors.New("mesh: stale handle")
	ErrIdenticalEndpoint = errors.New("mesh: edge endpoints must be distinct")
	ErrNotOnBoundary     = errors.New("mesh: vertex is not on the face boundary")
	ErrSameFace          = errors.New("mesh: faces must be distinct")
	ErrNotSeedVertex     = errors.New("mesh: vertex is not the face's seed")
	ErrNotDanglingSpur   = errors.New("mesh: edge is not a dangling spur")
	ErrNotTwoSided       = errors.New("mesh: edge does not have two distinct adjacent faces")
	ErrBoundariesTouch   = errors.New("mesh: face boundaries share a vertex")
	ErrInconsistentWing  = errors.New("mesh: wing links are inconsistent")
)

// KernelError is the typed error value surfaced to callers: a kind, an
// operator/query name, the offending entity id when applicable, and the
// wrapped sentinel.
type KernelError struct {
	Kind     Kind
	Op       string // operator or query name, e.g. "MEF", "IncidentEdges"
	EntityID uint64 // offending entity id, 0 if not applicable
	Err      error  // wrapped sentinel
}

// Error implements the error interface.
func (e *KernelError) Error() string {
	if e.EntityID != 0 {
		return fmt.Sprintf("%s: %s (id=%d): %v", e.Op, e.Kind, e.EntityID, e.Err)
	}

	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes the wrapped sentinel for errors.Is/errors.As.
func (e *KernelError) Unwrap() error {
	return e.Err
}

// NewError constructs a KernelError, the sole constructor operators and
// queries should use to report failures.
func NewError(kind Kind, op string, entityID uint64, err error) *KernelError {
	return &KernelError{Kind: kind, Op: op, EntityID: entityID, Err: err}
}
