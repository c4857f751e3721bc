package draft

import (
	"github.com/cory321/node-playground-sub003/internal/fanout"
	"github.com/cory321/node-playground-sub003/internal/geometry"
	"github.com/cory321/node-playground-sub003/internal/graph"
	"github.com/cory321/node-playground-sub003/internal/node"
)

// Locator resolves endpoints to canvas coordinates. The renderer uses it
// to place ports and connection lines; the drafting session uses it to
// hit-test pointer positions. Both go through the same resolution path, so
// a fan-out sub-port's drawn position and its clickable hitbox can never
// disagree.
type Locator struct {
	g *graph.Graph
}

// NewLocator creates a locator over the given graph.
func NewLocator(g *graph.Graph) *Locator {
	return &Locator{g: g}
}

// Position resolves an endpoint to canvas coordinates. It returns false
// when the node does not exist, the port id is not declared, or a fan-out
// sub-port is currently hidden — a hidden sub-port has no position and
// cannot be drafted to, even though connections to it persist.
func (l *Locator) Position(ep Endpoint) (geometry.Point, bool) {
	n, ok := l.g.Node(ep.NodeID)
	if !ok {
		return geometry.Point{}, false
	}
	def, ok := l.g.Kinds().Definition(n.Kind)
	if !ok {
		return geometry.Point{}, false
	}

	var local geometry.Point
	switch ep.Role {
	case RoleInput:
		if len(def.Inputs) == 0 {
			if ep.PortID != "" {
				return geometry.Point{}, false
			}
			local = geometry.SinglePort(n.Size, geometry.In)
			break
		}
		idx := -1
		for i, p := range def.Inputs {
			if p.ID == ep.PortID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return geometry.Point{}, false
		}
		local = geometry.FixedInputPort(idx)
	case RoleOutput:
		if !def.FanOut {
			if ep.PortID != "" {
				return geometry.Point{}, false
			}
			local = geometry.SinglePort(n.Size, geometry.Out)
			break
		}
		idx := -1
		for i, p := range fanOutPorts(n) {
			if p.ID == ep.PortID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return geometry.Point{}, false
		}
		local = geometry.FanOutPort(n.Size, idx)
	}
	return n.Position.Add(local), true
}

// Endpoints lists every currently attachable endpoint of a node: its
// declared (or implicit) input ports and its single or visible fan-out
// output ports.
func (l *Locator) Endpoints(nodeID string) []Endpoint {
	n, ok := l.g.Node(nodeID)
	if !ok {
		return nil
	}
	def, ok := l.g.Kinds().Definition(n.Kind)
	if !ok {
		return nil
	}

	var eps []Endpoint
	if len(def.Inputs) == 0 {
		eps = append(eps, Endpoint{NodeID: nodeID, Role: RoleInput})
	} else {
		for _, p := range def.Inputs {
			eps = append(eps, Endpoint{NodeID: nodeID, PortID: p.ID, Role: RoleInput})
		}
	}
	if def.FanOut {
		for _, p := range fanOutPorts(n) {
			eps = append(eps, Endpoint{NodeID: nodeID, PortID: p.ID, Role: RoleOutput})
		}
	} else {
		eps = append(eps, Endpoint{NodeID: nodeID, Role: RoleOutput})
	}
	return eps
}

// Hit finds the endpoint whose port center captures the pointer position,
// scanning every node's attachable endpoints.
func (l *Locator) Hit(p geometry.Point) (Endpoint, bool) {
	for _, n := range l.g.Nodes() {
		for _, ep := range l.Endpoints(n.ID) {
			center, ok := l.Position(ep)
			if !ok {
				continue
			}
			if geometry.Hit(p, center, geometry.PortHitRadius) {
				return ep, true
			}
		}
	}
	return Endpoint{}, false
}

// fanOutPorts derives a node's visible fan-out sub-port list from its
// output. A node that has not run successfully exposes no fan-out ports.
func fanOutPorts(n *node.Node) []fanout.Port {
	out, ok := n.Output()
	if !ok {
		return nil
	}
	items, err := fanout.ItemsFromValue(out)
	if err != nil {
		return nil
	}
	return fanout.VisiblePorts(items)
}
