// Package node defines the graph vertex: a unit of user-triggered work with
// a position on the canvas, a kind, and a mutable status/output slot.
package node

import (
	"sync"

	"github.com/zclconf/go-cty/cty"

	"github.com/cory321/node-playground-sub003/internal/geometry"
)

// Status is the execution state of a node.
type Status int32

const (
	// StatusIdle indicates the node has not been run yet.
	StatusIdle Status = iota
	// StatusLoading indicates the node's run handler is in flight.
	StatusLoading
	// StatusSuccess indicates the node completed and its output is valid.
	StatusSuccess
	// StatusError indicates the node failed; Err holds the cause.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Node is a single vertex in the pipeline graph.
//
// Identity and placement fields are written only by the graph under its own
// lock. The status/output slot is owned by the node itself and guarded by
// its mutex, because a run handler completes on a different goroutine than
// the pointer-event loop that reads it.
type Node struct {
	// ID is the unique identifier of the node within the graph.
	ID string
	// Kind names the registered node kind this node was built from.
	Kind string
	// Title is the human-readable label shown in the editor header.
	Title string
	// Position is the node's top-left corner in canvas coordinates.
	Position geometry.Point
	// Size is the node's rendered width and height.
	Size geometry.Size
	// Config holds kind-specific settings (model name, prompt overrides,
	// fan-out item state, ...). It is owned by the editor thread.
	Config map[string]cty.Value

	mu     sync.RWMutex
	status Status
	output cty.Value
	err    error
}

// New constructs an idle node of the given kind at (x, y).
func New(id, kind, title string, x, y float64, size geometry.Size) *Node {
	return &Node{
		ID:       id,
		Kind:     kind,
		Title:    title,
		Position: geometry.Point{X: x, Y: y},
		Size:     size,
		Config:   make(map[string]cty.Value),
		status:   StatusIdle,
		output:   cty.NilVal,
	}
}

// Status returns the node's current execution status.
func (n *Node) Status() Status {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.status
}

// Output returns the node's output and true only when the node is in
// StatusSuccess. Downstream consumers must not trust the output slot in any
// other state; a previous run's value may still be present.
func (n *Node) Output() (cty.Value, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.status != StatusSuccess {
		return cty.NilVal, false
	}
	return n.output, true
}

// Err returns the failure recorded by the last run, or nil.
func (n *Node) Err() error {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.err
}

// SetLoading marks the node as running and clears any previous error.
func (n *Node) SetLoading() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.status = StatusLoading
	n.err = nil
}

// SetSuccess records a completed run's output.
func (n *Node) SetSuccess(output cty.Value) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.status = StatusSuccess
	n.output = output
	n.err = nil
}

// SetError records a failed run. The output slot is left untouched but is
// unreadable through Output until the next successful run.
func (n *Node) SetError(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.status = StatusError
	n.err = err
}

// Reset returns the node to idle and discards its output.
func (n *Node) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.status = StatusIdle
	n.output = cty.NilVal
	n.err = nil
}

// RewriteOutput applies f to the node's current output while holding the
// node lock. It is used by editor actions that adjust output-derived state
// in place, such as toggling a fan-out item's visibility. It is a no-op
// unless the node is in StatusSuccess.
func (n *Node) RewriteOutput(f func(cty.Value) cty.Value) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.status != StatusSuccess {
		return
	}
	n.output = f(n.output)
}
