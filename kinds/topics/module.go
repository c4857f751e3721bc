// Package topics provides the topic map node: the fan-out case. Its output
// is a list of category items, each independently routable to a downstream
// node through its own sub-port. The built-in handler fabricates a
// deterministic category set from the incoming keywords; a production
// deployment swaps it for the SERP-analysis collaborator.
package topics

import (
	"context"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/cory321/node-playground-sub003/internal/fanout"
	"github.com/cory321/node-playground-sub003/internal/geometry"
	"github.com/cory321/node-playground-sub003/internal/kind"
)

// Module implements kind.Module for this package.
type Module struct{}

// archetypes are the category shapes the placeholder fans out into. The
// verdict/SERP mix is spread so the ranking policy has something to do.
var archetypes = []struct {
	slug        string
	label       string
	verdict     fanout.Verdict
	serpQuality fanout.SerpQuality
	serpScore   float64
}{
	{"how-to", "How-to", fanout.VerdictStrong, fanout.SerpWeak, 10},
	{"comparison", "Comparisons", fanout.VerdictMaybe, fanout.SerpMedium, 50},
	{"pricing", "Pricing", fanout.VerdictMaybe, fanout.SerpWeak, 35},
	{"glossary", "Glossary", fanout.VerdictSkip, fanout.SerpStrong, 80},
}

// Run fans the incoming keyword set out into ranked category items with
// default visibility applied.
func Run(ctx context.Context, inputs map[string]cty.Value) (cty.Value, error) {
	topic := "topic"
	if v, ok := inputs[""]; ok && v.Type() == cty.String {
		if first, _, found := strings.Cut(v.AsString(), ","); found || first != "" {
			topic = strings.TrimSpace(first)
		}
	}

	items := make([]fanout.Item, 0, len(archetypes))
	for _, a := range archetypes {
		items = append(items, fanout.Item{
			ID:          "cat-" + a.slug,
			Label:       a.label + ": " + topic,
			Verdict:     a.verdict,
			SerpQuality: a.serpQuality,
			SerpScore:   a.serpScore,
		})
	}
	items = fanout.ApplyDefaultVisibility(items)
	return fanout.ItemsValue(fanout.Rank(items)), nil
}

// Register registers the kind and its handler with the engine.
func (m *Module) Register(r *kind.Registry) {
	r.RegisterKind(&kind.Definition{
		Name:   "topics",
		Title:  "Topic Map",
		Size:   geometry.Size{Width: 260, Height: 220},
		FanOut: true,
	})
	r.RegisterHandler("topics", &kind.Handler{Run: Run})
}
