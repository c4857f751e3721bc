// Package article provides the article writer node, the fixed multi-input
// case: three named slots feed one draft. The built-in handler assembles a
// deterministic outline; the LLM call it stands in for is an external
// collaborator.
package article

import (
	"context"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/cory321/node-playground-sub003/internal/geometry"
	"github.com/cory321/node-playground-sub003/internal/kind"
)

// Module implements kind.Module for this package.
type Module struct{}

// Ports is the static input slot declaration. Both the renderer and the
// connection-endpoint resolver read this single list through the registry.
var Ports = []kind.PortDef{
	{ID: "blueprint", Label: "Blueprint", Required: true},
	{ID: "editorial", Label: "Editorial"},
	{ID: "comparison", Label: "Comparison"},
}

// Run composes a markdown draft from whichever slots are wired.
func Run(ctx context.Context, inputs map[string]cty.Value) (cty.Value, error) {
	var sections []string
	for _, p := range Ports {
		v, ok := inputs[p.ID]
		if !ok {
			continue
		}
		sections = append(sections, fmt.Sprintf("## %s\n\n%s", p.Label, renderValue(v)))
	}

	markdown := "# Draft\n\n" + strings.Join(sections, "\n\n")
	return cty.ObjectVal(map[string]cty.Value{
		"markdown": cty.StringVal(markdown),
		"sections": cty.NumberIntVal(int64(len(sections))),
	}), nil
}

// renderValue flattens an input value into prose for the outline.
func renderValue(v cty.Value) string {
	switch {
	case v == cty.NilVal || v.IsNull():
		return ""
	case v.Type() == cty.String:
		return v.AsString()
	case v.Type().IsObjectType() && v.Type().HasAttribute("label"):
		return v.GetAttr("label").AsString()
	default:
		return v.GoString()
	}
}

// Register registers the kind and its handler with the engine.
func (m *Module) Register(r *kind.Registry) {
	r.RegisterKind(&kind.Definition{
		Name:       "article",
		Title:      "Article Writer",
		Size:       geometry.Size{Width: 280, Height: 200},
		Inputs:     Ports,
		OutputAttr: "markdown",
	})
	r.RegisterHandler("article", &kind.Handler{Run: Run})
}
