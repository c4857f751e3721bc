// Package propagate resolves the values flowing into a node's input ports.
//
// Resolution is pull-based and synchronous: it is a pure function of the
// current connection set and upstream outputs, recomputed on demand. A new
// connection or a fresh upstream output becomes observable immediately, but
// nothing here ever triggers a downstream node's own asynchronous work —
// runs are user-triggered only.
package propagate

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/cory321/node-playground-sub003/internal/ctxlog"
	"github.com/cory321/node-playground-sub003/internal/fanout"
	"github.com/cory321/node-playground-sub003/internal/graph"
	"github.com/cory321/node-playground-sub003/internal/node"
)

// ResolveInputs computes the value present at each input port of n.
//
// For a port with no connection, or whose upstream node's status is not
// success, the port resolves to absent — never to a stale previous output.
// When several connections target one fixed port, the most recently drawn
// one wins. A connection leaving a fan-out sub-port projects the single
// matching item out of the upstream list; a hidden item still resolves, so
// dormant connections keep delivering until the item is deleted outright.
func ResolveInputs(ctx context.Context, n *node.Node, g *graph.Graph) Snapshot {
	logger := ctxlog.FromContext(ctx)
	snap := Snapshot{values: make(map[string]cty.Value)}

	def, ok := g.Kinds().Definition(n.Kind)
	if !ok {
		return snap
	}
	if len(def.Inputs) == 0 {
		snap.ports = []string{""}
	} else {
		for _, p := range def.Inputs {
			snap.ports = append(snap.ports, p.ID)
		}
	}

	for _, portID := range snap.ports {
		conns := g.ConnectionsInto(n.ID, portID)
		if len(conns) == 0 {
			continue
		}
		// Last drawn wins when fan-in exceeds one.
		c := conns[len(conns)-1]
		v, ok := resolveConnection(g, c)
		if !ok {
			continue
		}
		snap.values[portID] = v
		logger.Debug("Input resolved.", "node", n.ID, "port", portID, "from", c.FromNode)
	}
	return snap
}

// resolveConnection reads the value delivered by one connection, applying
// fan-out item projection and the upstream kind's output projection.
func resolveConnection(g *graph.Graph, c graph.Connection) (cty.Value, bool) {
	up, ok := g.Node(c.FromNode)
	if !ok {
		return cty.NilVal, false
	}
	out, ok := up.Output()
	if !ok {
		// Upstream is idle, loading, or failed: absence, not an error.
		return cty.NilVal, false
	}

	upDef, ok := g.Kinds().Definition(up.Kind)
	if !ok {
		return cty.NilVal, false
	}
	if upDef.FanOut && c.FromPort != "" {
		return fanout.ItemValue(out, c.FromPort)
	}
	if upDef.OutputAttr != "" && out.Type().IsObjectType() && out.Type().HasAttribute(upDef.OutputAttr) {
		return out.GetAttr(upDef.OutputAttr), true
	}
	return out, true
}
