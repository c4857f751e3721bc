// Package runner executes a node's kind handler in response to an explicit
// user action. There is no scheduler and no cascade: each run is
// independent, owns its node's status/output slot, and can be canceled
// without affecting siblings or the topology.
package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cory321/node-playground-sub003/internal/ctxlog"
	"github.com/cory321/node-playground-sub003/internal/graph"
	"github.com/cory321/node-playground-sub003/internal/propagate"
)

var (
	// ErrAlreadyRunning is returned when the node already has a run in
	// flight.
	ErrAlreadyRunning = errors.New("node already running")
	// ErrNoHandler is returned when the node's kind has no registered run
	// handler.
	ErrNoHandler = errors.New("no handler for node kind")
)

// Runner tracks in-flight node runs and their cancel functions.
type Runner struct {
	g *graph.Graph

	mu     sync.Mutex
	active map[string]context.CancelFunc
}

// New creates a runner over the given graph.
func New(g *graph.Graph) *Runner {
	return &Runner{
		g:      g,
		active: make(map[string]context.CancelFunc),
	}
}

// Start triggers one run of the given node. Inputs are resolved at start
// time; the handler executes on its own goroutine and the returned channel
// closes when the node has reached a terminal status.
//
// Handler failures are local to the node: they set its error status and
// never propagate as a Start error. Start itself errs only on structural
// problems — unknown node, missing handler, or a run already in flight.
func (r *Runner) Start(ctx context.Context, nodeID string) (<-chan struct{}, error) {
	logger := ctxlog.FromContext(ctx).With("node", nodeID)

	n, ok := r.g.Node(nodeID)
	if !ok {
		return nil, graph.ErrNodeNotFound
	}
	handler, ok := r.g.Kinds().Handler(n.Kind)
	if !ok || handler.Run == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, n.Kind)
	}

	r.mu.Lock()
	if _, busy := r.active[nodeID]; busy {
		r.mu.Unlock()
		return nil, ErrAlreadyRunning
	}

	done := make(chan struct{})
	snap := propagate.ResolveInputs(ctx, n, r.g)
	if err := r.checkRequired(n.Kind, snap); err != nil {
		// A missing required input fails the node, not the caller.
		r.mu.Unlock()
		logger.Debug("Node run refused.", "reason", err)
		n.SetError(err)
		close(done)
		return done, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.active[nodeID] = cancel
	n.SetLoading()
	r.mu.Unlock()

	logger.Info("Node run started.")
	go func() {
		defer close(done)
		defer func() {
			cancel()
			r.mu.Lock()
			delete(r.active, nodeID)
			r.mu.Unlock()
		}()

		output, err := handler.Run(runCtx, snap.Values())
		if err != nil {
			logger.Warn("Node run failed.", "error", err)
			n.SetError(err)
			return
		}
		logger.Info("Node run succeeded.")
		n.SetSuccess(output)
	}()
	return done, nil
}

// Stop cancels the node's in-flight run, if any, and reports whether one
// was active. Cancellation is best-effort: the handler decides how fast it
// honors its context, and the node lands in error status when it returns.
func (r *Runner) Stop(nodeID string) bool {
	r.mu.Lock()
	cancel, ok := r.active[nodeID]
	r.mu.Unlock()
	if !ok {
		return false
	}
	cancel()
	return true
}

// checkRequired verifies that every required input port resolved to a
// value.
func (r *Runner) checkRequired(kindName string, snap propagate.Snapshot) error {
	def, ok := r.g.Kinds().Definition(kindName)
	if !ok {
		return nil
	}
	for _, p := range def.Inputs {
		if !p.Required {
			continue
		}
		if _, ok := snap.Value(p.ID); !ok {
			return fmt.Errorf("required input '%s' is not wired or has no upstream output", p.ID)
		}
	}
	return nil
}
