// Package note provides the note node: a pass-through used to pin an
// upstream value on the canvas.
package note

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/cory321/node-playground-sub003/internal/geometry"
	"github.com/cory321/node-playground-sub003/internal/kind"
)

// Module implements kind.Module for this package.
type Module struct{}

// Run echoes the value on the implicit input port.
func Run(ctx context.Context, inputs map[string]cty.Value) (cty.Value, error) {
	if v, ok := inputs[""]; ok {
		return v, nil
	}
	return cty.StringVal(""), nil
}

// Register registers the kind and its handler with the engine.
func (m *Module) Register(r *kind.Registry) {
	r.RegisterKind(&kind.Definition{
		Name:  "note",
		Title: "Note",
		Size:  geometry.Size{Width: 200, Height: 80},
	})
	r.RegisterHandler("note", &kind.Handler{Run: Run})
}
