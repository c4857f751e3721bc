// Package draft implements the pointer-driven state machine for creating a
// connection: pointer-down on a port opens a draft, pointer-move updates
// the ephemeral feedback endpoint, pointer-up either commits a connection
// through the graph or discards the draft.
//
// A Session is not safe for concurrent use. Pointer events arrive on the
// single editor event loop, and every graph mutation happens synchronously
// inside a handler.
package draft

import (
	"context"

	"github.com/cory321/node-playground-sub003/internal/ctxlog"
	"github.com/cory321/node-playground-sub003/internal/geometry"
	"github.com/cory321/node-playground-sub003/internal/graph"
)

// Role distinguishes which side of a connection an endpoint sits on.
type Role int

const (
	// RoleInput marks an endpoint on a node's input side.
	RoleInput Role = iota
	// RoleOutput marks an endpoint on a node's output side.
	RoleOutput
)

func (r Role) String() string {
	if r == RoleInput {
		return "input"
	}
	return "output"
}

// Endpoint identifies one attachment point: a node, a port id (empty for
// the implicit single port), and the side it sits on.
type Endpoint struct {
	NodeID string
	PortID string
	Role   Role
}

// State is the drafting state machine's current state.
type State int

const (
	// StateIdle means no draft is in progress.
	StateIdle State = iota
	// StateDraftingFromOutput means the draft started on an output port.
	StateDraftingFromOutput
	// StateDraftingFromInput means the draft started on an input port.
	StateDraftingFromInput
)

// Session is the single, ephemeral drag session. It exists only between a
// pointer-down on a port and the next pointer-up and is never persisted.
type Session struct {
	g *graph.Graph

	state   State
	origin  Endpoint
	pointer geometry.Point
}

// NewSession creates an idle drafting session over the given graph.
func NewSession(g *graph.Graph) *Session {
	return &Session{g: g}
}

// State returns the session's current state.
func (s *Session) State() State {
	return s.state
}

// Origin returns the endpoint the active draft started from. Meaningless
// when idle.
func (s *Session) Origin() Endpoint {
	return s.origin
}

// Pointer returns the live pointer position, the free end of the draft
// line the renderer draws. Meaningless when idle.
func (s *Session) Pointer() geometry.Point {
	return s.pointer
}

// PointerDown starts a draft from the given endpoint. A pointer-down while
// a draft is already active is guarded as a no-op; only one draft session
// may exist.
func (s *Session) PointerDown(ctx context.Context, origin Endpoint, p geometry.Point) {
	if s.state != StateIdle {
		ctxlog.FromContext(ctx).Debug("Ignoring pointer-down during active draft.", "node", origin.NodeID)
		return
	}

	s.origin = origin
	s.pointer = p
	if origin.Role == RoleOutput {
		s.state = StateDraftingFromOutput
	} else {
		s.state = StateDraftingFromInput
	}
	ctxlog.FromContext(ctx).Debug("Draft started.", "node", origin.NodeID, "port", origin.PortID, "role", origin.Role.String())
}

// PointerMove updates the ephemeral feedback endpoint. It never mutates
// the graph.
func (s *Session) PointerMove(p geometry.Point) {
	if s.state == StateIdle {
		return
	}
	s.pointer = p
}

// PointerUp ends the draft. When target is a compatible endpoint — the
// opposite role, on a different node — the connection is committed with
// roles inferred from direction, and the committed connection is returned.
// Releasing over empty canvas (nil target), over an incompatible endpoint,
// or onto an edit the graph rejects discards the draft; the graph is left
// unchanged. The session always returns to idle.
func (s *Session) PointerUp(ctx context.Context, target *Endpoint) (graph.Connection, bool) {
	logger := ctxlog.FromContext(ctx)
	if s.state == StateIdle {
		return graph.Connection{}, false
	}
	origin := s.origin
	s.state = StateIdle

	if target == nil {
		logger.Debug("Draft discarded over empty canvas.")
		return graph.Connection{}, false
	}
	if target.Role == origin.Role {
		logger.Debug("Draft discarded on incompatible target.", "role", target.Role.String())
		return graph.Connection{}, false
	}

	out, in := origin, *target
	if origin.Role == RoleInput {
		out, in = *target, origin
	}
	conn := graph.Connection{
		FromNode: out.NodeID,
		FromPort: out.PortID,
		ToNode:   in.NodeID,
		ToPort:   in.PortID,
	}
	if err := s.g.AddConnection(ctx, conn); err != nil {
		logger.Debug("Draft discarded by graph.", "reason", err)
		return graph.Connection{}, false
	}
	return conn, true
}
