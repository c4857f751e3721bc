// Package graph holds the editable pipeline topology: the node set, the
// connection set, and the invariants between them. All mutations happen
// synchronously inside pointer-event handlers or explicit editor actions;
// the mutex exists because run handlers complete on other goroutines and
// read node state through the same accessors.
package graph

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/cory321/node-playground-sub003/internal/ctxlog"
	"github.com/cory321/node-playground-sub003/internal/kind"
	"github.com/cory321/node-playground-sub003/internal/node"
)

// Graph is the set of nodes and connections of one pipeline.
type Graph struct {
	kinds *kind.Registry

	mutex sync.RWMutex
	nodes map[string]*node.Node
	// conns is keyed by Connection.Key. connOrder preserves insertion
	// order; it decides which connection wins when a fixed input port has
	// more than one (last drawn wins).
	conns     map[string]*Connection
	connOrder []string
}

// New creates an empty graph backed by the given kind registry.
func New(kinds *kind.Registry) *Graph {
	return &Graph{
		kinds: kinds,
		nodes: make(map[string]*node.Node),
		conns: make(map[string]*Connection),
	}
}

// Kinds returns the kind registry the graph was built with.
func (g *Graph) Kinds() *kind.Registry {
	return g.kinds
}

// CreateNode builds a node of the given kind at (x, y) with a generated id.
// An unregistered kind returns ErrUnknownKind; callers treat that as a
// no-op.
func (g *Graph) CreateNode(ctx context.Context, kindName string, x, y float64) (*node.Node, error) {
	return g.CreateNodeWithID(ctx, kindName, uuid.NewString(), x, y)
}

// CreateNodeWithID is CreateNode with a caller-chosen id, used when seeding
// a graph from a pipeline description and in tests.
func (g *Graph) CreateNodeWithID(ctx context.Context, kindName, id string, x, y float64) (*node.Node, error) {
	n, ok := g.kinds.NewNode(kindName, id, x, y)
	if !ok {
		ctxlog.FromContext(ctx).Warn("Ignoring node of unregistered kind.", "kind", kindName)
		return nil, ErrUnknownKind
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, exists := g.nodes[id]; exists {
		return nil, ErrDuplicateNode
	}
	g.nodes[id] = n
	ctxlog.FromContext(ctx).Debug("Node created.", "id", id, "kind", kindName)
	return n, nil
}

// DeleteNode removes the node and every connection referencing it, so no
// dangling connection survives. Deleting an unknown id is a no-op.
func (g *Graph) DeleteNode(ctx context.Context, id string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return
	}
	delete(g.nodes, id)

	kept := g.connOrder[:0]
	for _, key := range g.connOrder {
		c := g.conns[key]
		if c.FromNode == id || c.ToNode == id {
			delete(g.conns, key)
			continue
		}
		kept = append(kept, key)
	}
	g.connOrder = kept
	ctxlog.FromContext(ctx).Debug("Node deleted with incident connections.", "id", id)
}

// AddConnection adds a directed connection. It rejects connections whose
// identity key already exists (idempotent), whose endpoints are the same
// node, or whose endpoint nodes are missing. No cycle check is performed
// beyond the self-loop rule; a longer cycle is structurally legal.
func (g *Graph) AddConnection(ctx context.Context, c Connection) error {
	logger := ctxlog.FromContext(ctx)
	if c.FromNode == c.ToNode {
		logger.Warn("Ignoring self-referential connection.", "node", c.FromNode)
		return ErrSelfLoop
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[c.FromNode]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[c.ToNode]; !ok {
		return ErrNodeNotFound
	}

	key := c.Key()
	if _, exists := g.conns[key]; exists {
		logger.Debug("Ignoring duplicate connection.", "key", key)
		return ErrDuplicateConnection
	}

	stored := c
	g.conns[key] = &stored
	g.connOrder = append(g.connOrder, key)
	logger.Debug("Connection added.", "key", key)
	return nil
}

// RemoveConnection deletes the connection with the given identity key and
// reports whether it existed.
func (g *Graph) RemoveConnection(ctx context.Context, key string) bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.conns[key]; !ok {
		return false
	}
	delete(g.conns, key)
	for i, k := range g.connOrder {
		if k == key {
			g.connOrder = append(g.connOrder[:i], g.connOrder[i+1:]...)
			break
		}
	}
	ctxlog.FromContext(ctx).Debug("Connection removed.", "key", key)
	return true
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*node.Node, bool) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns a snapshot of all nodes. Order is not specified.
func (g *Graph) Nodes() []*node.Node {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	out := make([]*node.Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	return out
}

// Connections returns a snapshot of all connections in insertion order.
func (g *Graph) Connections() []Connection {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	out := make([]Connection, 0, len(g.connOrder))
	for _, key := range g.connOrder {
		out = append(out, *g.conns[key])
	}
	return out
}

// ConnectionsInto returns, in insertion order, the connections targeting
// the given input port of a node. An empty portID matches the implicit
// single input port.
func (g *Graph) ConnectionsInto(nodeID, portID string) []Connection {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	var out []Connection
	for _, key := range g.connOrder {
		c := g.conns[key]
		if c.ToNode == nodeID && c.ToPort == portID {
			out = append(out, *c)
		}
	}
	return out
}

// ConnectionsFrom returns, in insertion order, the connections leaving the
// given node.
func (g *Graph) ConnectionsFrom(nodeID string) []Connection {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	var out []Connection
	for _, key := range g.connOrder {
		c := g.conns[key]
		if c.FromNode == nodeID {
			out = append(out, *c)
		}
	}
	return out
}
