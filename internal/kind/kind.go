// Package kind holds the registry of node kinds: the factory and port
// declarations for every kind of node the editor can place, plus the run
// handlers that perform each kind's actual work.
//
// The registry is populated once at startup — by Go modules implementing
// the Module interface and by HCL manifests — and is treated as immutable
// afterwards. Both the renderer and the connection-endpoint resolver read
// port declarations from here, which keeps their geometry in sync.
package kind

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zclconf/go-cty/cty"

	"github.com/cory321/node-playground-sub003/internal/geometry"
	"github.com/cory321/node-playground-sub003/internal/node"
)

// DefaultSize is used for kinds whose manifest does not set a size.
var DefaultSize = geometry.Size{Width: 240, Height: 140}

// PortDef declares one named input slot of a fixed multi-input port.
type PortDef struct {
	// ID is the port identifier used in connections.
	ID string
	// Label is the user-visible name of the slot.
	Label string
	// Required marks slots that must be wired before the node can run.
	Required bool
}

// Definition describes a node kind: its default presentation and its port
// shape. A kind with an empty Inputs list has the implicit single input
// port; a kind with FanOut set exposes a variable-length output port list
// derived from its output items.
type Definition struct {
	Name       string
	Title      string
	Size       geometry.Size
	Inputs     []PortDef
	FanOut     bool
	// OutputAttr optionally names an attribute to project out of this
	// kind's object output when a downstream port reads it.
	OutputAttr string
}

// Handler is the compiled Go side of a node kind's lifecycle. Run receives
// the resolved input values keyed by port id (absent ports are missing from
// the map) and returns the node's output. Run must honor ctx cancellation;
// the engine never invokes it except in response to an explicit user
// action.
type Handler struct {
	Run func(ctx context.Context, inputs map[string]cty.Value) (cty.Value, error)
}

// Module is the interface built-in kind packages implement to register
// themselves with the engine.
type Module interface {
	Register(r *Registry)
}

// Registry holds the definitions and handlers for a single application
// instance.
type Registry struct {
	defs     map[string]*Definition
	handlers map[string]*Handler
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		defs:     make(map[string]*Definition),
		handlers: make(map[string]*Handler),
	}
}

// RegisterKind registers a kind definition. It panics on a duplicate name;
// kind names are a startup-time namespace, and a collision is a programming
// error.
func (r *Registry) RegisterKind(def *Definition) {
	if _, exists := r.defs[def.Name]; exists {
		panic(fmt.Sprintf("kind '%s' already registered", def.Name))
	}
	if def.Size == (geometry.Size{}) {
		def.Size = DefaultSize
	}
	slog.Debug("Registering node kind.", "name", def.Name)
	r.defs[def.Name] = def
}

// RegisterHandler registers the run handler for a kind. It panics on a
// duplicate registration.
func (r *Registry) RegisterHandler(kindName string, h *Handler) {
	if _, exists := r.handlers[kindName]; exists {
		panic(fmt.Sprintf("handler for kind '%s' already registered", kindName))
	}
	slog.Debug("Registering kind handler.", "name", kindName)
	r.handlers[kindName] = h
}

// Definition returns the definition for a kind name.
func (r *Registry) Definition(name string) (*Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Handler returns the run handler for a kind name.
func (r *Registry) Handler(name string) (*Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Kinds returns the names of all registered kinds.
func (r *Registry) Kinds() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	return names
}

// NewNode builds a node of the given kind at (x, y) using the kind's
// default title and size. It returns false when the kind is unregistered.
func (r *Registry) NewNode(name, id string, x, y float64) (*node.Node, bool) {
	def, ok := r.defs[name]
	if !ok {
		return nil, false
	}
	return node.New(id, def.Name, def.Title, x, y, def.Size), true
}
