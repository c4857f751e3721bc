package propagate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// absentKey is the comparison key of a port that resolved to no value.
const absentKey = "<absent>"

// Snapshot is the result of one input resolution: the value present at
// each input port, keyed by port id (empty string for the implicit single
// port). Absent ports have no entry.
//
// Consumers must not rebuild their whole state from a snapshot on every
// evaluation. Upstream outputs are freshly allocated containers with
// structurally identical contents most of the time; an always-overwrite
// policy turns that into an endless update cycle. Compare keys via Diff
// and write only the ports that actually changed.
type Snapshot struct {
	ports  []string
	values map[string]cty.Value
}

// Ports returns the declared input port ids in declaration order.
func (s Snapshot) Ports() []string {
	return s.ports
}

// Value returns the resolved value of a port. ok is false when the port
// resolved to absent.
func (s Snapshot) Value(port string) (cty.Value, bool) {
	v, ok := s.values[port]
	return v, ok
}

// Values returns the present port values as a map, the shape run handlers
// consume.
func (s Snapshot) Values() map[string]cty.Value {
	out := make(map[string]cty.Value, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Key returns a deterministic string identifying the resolved value of a
// port. Two structurally equal values always produce the same key, no
// matter how they were allocated, which makes the key safe to cache and
// compare across evaluations.
func (s Snapshot) Key(port string) string {
	v, ok := s.values[port]
	if !ok {
		return absentKey
	}
	var sb strings.Builder
	appendCanonical(&sb, v)
	return sb.String()
}

// Diff returns the ports whose comparison key differs from prev, in
// declaration order. A consumer applies writes for exactly these ports.
func (s Snapshot) Diff(prev Snapshot) []string {
	var changed []string
	for _, port := range s.ports {
		if s.Key(port) != prev.Key(port) {
			changed = append(changed, port)
		}
	}
	return changed
}

// appendCanonical writes a canonical encoding of v: attribute and map keys
// are sorted, so the encoding depends only on the value's structure.
func appendCanonical(sb *strings.Builder, v cty.Value) {
	if v == cty.NilVal {
		sb.WriteString("nil")
		return
	}
	if v.IsNull() {
		sb.WriteString("null")
		return
	}
	if !v.IsKnown() {
		sb.WriteString("unknown")
		return
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		fmt.Fprintf(sb, "%q", v.AsString())
	case ty == cty.Number:
		sb.WriteString(v.AsBigFloat().Text('g', -1))
	case ty == cty.Bool:
		if v.True() {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case ty.IsObjectType():
		attrTypes := ty.AttributeTypes()
		names := make([]string, 0, len(attrTypes))
		for name := range attrTypes {
			names = append(names, name)
		}
		sort.Strings(names)
		sb.WriteByte('{')
		for i, name := range names {
			if i > 0 {
				sb.WriteByte(';')
			}
			sb.WriteString(name)
			sb.WriteByte('=')
			appendCanonical(sb, v.GetAttr(name))
		}
		sb.WriteByte('}')
	case ty.IsMapType():
		keys := make([]string, 0, v.LengthInt())
		elems := make(map[string]cty.Value, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			k, el := it.Element()
			keys = append(keys, k.AsString())
			elems[k.AsString()] = el
		}
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(';')
			}
			fmt.Fprintf(sb, "%q=", k)
			appendCanonical(sb, elems[k])
		}
		sb.WriteByte('}')
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		sb.WriteByte('[')
		first := true
		for it := v.ElementIterator(); it.Next(); {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			_, el := it.Element()
			appendCanonical(sb, el)
		}
		sb.WriteByte(']')
	default:
		sb.WriteString(v.GoString())
	}
}
