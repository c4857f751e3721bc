package graph

import "errors"

// Structural errors are sentinels so that callers can recognize them and
// degrade to a no-op instead of surfacing a fatal failure; the editor stays
// usable when a pointer gesture produces an illegal edit.
var (
	// ErrUnknownKind is returned when creating a node of an unregistered kind.
	ErrUnknownKind = errors.New("unknown node kind")
	// ErrNodeNotFound is returned when a referenced node does not exist.
	ErrNodeNotFound = errors.New("node not found")
	// ErrDuplicateConnection is returned when a connection's identity key
	// is already present.
	ErrDuplicateConnection = errors.New("duplicate connection")
	// ErrSelfLoop is returned when a connection's endpoints are the same node.
	ErrSelfLoop = errors.New("self-referential connection")
	// ErrDuplicateNode is returned when a node id is already taken.
	ErrDuplicateNode = errors.New("duplicate node id")
)
