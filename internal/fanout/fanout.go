// Package fanout implements the ordering and visibility policy for
// variable-length multi-output ports: each output item is scored by
// opportunity, ranked, and filtered by a user-togglable visibility flag.
// The visible, ranked subset is the sub-port list every other layer sees.
package fanout

import (
	"math"
	"sort"
)

// Verdict is the editorial judgement attached to a fan-out item.
type Verdict int

const (
	// VerdictSkip marks an item not worth pursuing.
	VerdictSkip Verdict = iota
	// VerdictMaybe marks an item worth considering.
	VerdictMaybe
	// VerdictStrong marks a clear opportunity.
	VerdictStrong
)

func (v Verdict) String() string {
	switch v {
	case VerdictStrong:
		return "strong"
	case VerdictMaybe:
		return "maybe"
	default:
		return "skip"
	}
}

// ParseVerdict maps a verdict name to its value. Unknown names parse as
// skip, the conservative default.
func ParseVerdict(s string) Verdict {
	switch s {
	case "strong":
		return VerdictStrong
	case "maybe":
		return VerdictMaybe
	default:
		return VerdictSkip
	}
}

// SerpQuality grades the competition already ranking for an item. A weak
// SERP is the bigger opportunity and scores higher.
type SerpQuality int

const (
	// SerpWeak means the current results are easy to beat.
	SerpWeak SerpQuality = iota
	// SerpMedium means mixed competition.
	SerpMedium
	// SerpStrong means entrenched competition.
	SerpStrong
)

func (q SerpQuality) String() string {
	switch q {
	case SerpWeak:
		return "weak"
	case SerpMedium:
		return "medium"
	default:
		return "strong"
	}
}

// ParseSerpQuality maps a quality name to its value. Unknown names parse as
// strong, the zero-opportunity default.
func ParseSerpQuality(s string) SerpQuality {
	switch s {
	case "weak":
		return SerpWeak
	case "medium":
		return SerpMedium
	default:
		return SerpStrong
	}
}

// Item is one independently routable element of a fan-out output.
type Item struct {
	ID          string
	Label       string
	Verdict     Verdict
	SerpQuality SerpQuality
	SerpScore   float64
	Visible     bool
}

// Score computes an item's opportunity score: the verdict dominates, a
// weaker SERP adds opportunity, and a low numeric SERP score adds up to 20
// more points.
func Score(it Item) float64 {
	var s float64
	switch it.Verdict {
	case VerdictStrong:
		s += 100
	case VerdictMaybe:
		s += 50
	}
	switch it.SerpQuality {
	case SerpWeak:
		s += 30
	case SerpMedium:
		s += 15
	}
	s += math.Max(0, 20-it.SerpScore/5)
	return s
}

// Rank returns the items sorted descending by opportunity score. The sort
// is stable: ties keep their original relative order.
func Rank(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return Score(out[i]) > Score(out[j])
	})
	return out
}

// ApplyDefaultVisibility sets each item's flag to the default policy:
// everything except a skip verdict starts visible.
func ApplyDefaultVisibility(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	for i := range out {
		out[i].Visible = out[i].Verdict != VerdictSkip
	}
	return out
}

// SetAllVisible sets every item's visibility uniformly, leaving order and
// scores untouched.
func SetAllVisible(items []Item, visible bool) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	for i := range out {
		out[i].Visible = visible
	}
	return out
}

// Toggle flips the named item's visibility and returns the updated slice.
// Hiding an item does not touch connections already drawn to its sub-port;
// they go dormant until the item is shown again.
func Toggle(items []Item, id string) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].Visible = !out[i].Visible
		}
	}
	return out
}

// Port is one entry of the visible sub-port list.
type Port struct {
	ID    string
	Label string
}

// VisiblePorts derives the fan-out sub-port list: the visible items of the
// ranked order. The index of a port in this slice is the visibleIndex the
// geometry layer positions it by, so the renderer and the endpoint resolver
// must both call through here.
func VisiblePorts(items []Item) []Port {
	var ports []Port
	for _, it := range Rank(items) {
		if !it.Visible {
			continue
		}
		ports = append(ports, Port{ID: it.ID, Label: it.Label})
	}
	return ports
}
