// Package graph holds the immutable causal graph and the structural index
// built over it. Both are constructed once at startup and are safe for
// concurrent readers without locking.
package graph

import "errors"

var (
	// ErrNotFound reports an unknown node or edge id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput reports a structurally invalid query argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidGraph reports a dataset that violates the graph invariants.
	ErrInvalidGraph = errors.New("invalid graph")
)
