// Package keywords provides the keyword research source node. The real
// research call lives behind the run-handler boundary; this built-in
// handler is a deterministic placeholder that derives a keyword list from
// the seed flowing into the node.
package keywords

import (
	"context"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/cory321/node-playground-sub003/internal/geometry"
	"github.com/cory321/node-playground-sub003/internal/kind"
)

// Module implements kind.Module for this package.
type Module struct{}

// Run derives a keyword set from the seed term on the implicit input port.
func Run(ctx context.Context, inputs map[string]cty.Value) (cty.Value, error) {
	seed := "content marketing"
	if v, ok := inputs[""]; ok && v.Type() == cty.String {
		seed = v.AsString()
	}

	variants := []string{seed, seed + " guide", seed + " examples", "best " + seed}
	return cty.ObjectVal(map[string]cty.Value{
		"keywords": cty.StringVal(strings.Join(variants, ", ")),
		"count":    cty.NumberIntVal(int64(len(variants))),
		"seed":     cty.StringVal(seed),
	}), nil
}

// Register registers the kind and its handler with the engine.
func (m *Module) Register(r *kind.Registry) {
	r.RegisterKind(&kind.Definition{
		Name:       "keywords",
		Title:      "Keyword Research",
		Size:       geometry.Size{Width: 240, Height: 120},
		OutputAttr: "keywords",
	})
	r.RegisterHandler("keywords", &kind.Handler{Run: Run})
}
