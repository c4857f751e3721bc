package fanout

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// itemType is the cty shape fan-out items travel in when stored as a node
// output and read back by the propagation layer.
var itemType = cty.Object(map[string]cty.Type{
	"id":           cty.String,
	"label":        cty.String,
	"verdict":      cty.String,
	"serp_quality": cty.String,
	"serp_score":   cty.Number,
	"visible":      cty.Bool,
})

// ItemsValue encodes items as a cty list for storage in a node's output
// slot.
func ItemsValue(items []Item) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(itemType)
	}
	vals := make([]cty.Value, 0, len(items))
	for _, it := range items {
		vals = append(vals, cty.ObjectVal(map[string]cty.Value{
			"id":           cty.StringVal(it.ID),
			"label":        cty.StringVal(it.Label),
			"verdict":      cty.StringVal(it.Verdict.String()),
			"serp_quality": cty.StringVal(it.SerpQuality.String()),
			"serp_score":   cty.NumberFloatVal(it.SerpScore),
			"visible":      cty.BoolVal(it.Visible),
		}))
	}
	return cty.ListVal(vals)
}

// ItemsFromValue decodes a fan-out item list from a node output produced by
// ItemsValue.
func ItemsFromValue(v cty.Value) ([]Item, error) {
	if v == cty.NilVal || v.IsNull() {
		return nil, nil
	}
	if !v.Type().IsListType() && !v.Type().IsTupleType() {
		return nil, fmt.Errorf("fan-out output is %s, not a list", v.Type().FriendlyName())
	}

	var items []Item
	for it := v.ElementIterator(); it.Next(); {
		_, el := it.Element()
		if !el.Type().IsObjectType() {
			return nil, fmt.Errorf("fan-out element is %s, not an object", el.Type().FriendlyName())
		}
		item, err := itemFromObject(el)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func itemFromObject(el cty.Value) (Item, error) {
	var item Item
	ty := el.Type()
	if !ty.HasAttribute("id") {
		return item, fmt.Errorf("fan-out element has no 'id' attribute")
	}
	item.ID = el.GetAttr("id").AsString()
	if ty.HasAttribute("label") {
		item.Label = el.GetAttr("label").AsString()
	}
	if ty.HasAttribute("verdict") {
		item.Verdict = ParseVerdict(el.GetAttr("verdict").AsString())
	}
	if ty.HasAttribute("serp_quality") {
		item.SerpQuality = ParseSerpQuality(el.GetAttr("serp_quality").AsString())
	}
	if ty.HasAttribute("serp_score") {
		f, _ := el.GetAttr("serp_score").AsBigFloat().Float64()
		item.SerpScore = f
	}
	if ty.HasAttribute("visible") {
		item.Visible = el.GetAttr("visible").True()
	}
	return item, nil
}

// ItemValue looks up the item with the given id inside a fan-out output
// value and returns its cty object. This is how a connection leaving one
// sub-port projects a single item, rather than the whole list, to its
// downstream consumer.
func ItemValue(v cty.Value, id string) (cty.Value, bool) {
	if v == cty.NilVal || v.IsNull() {
		return cty.NilVal, false
	}
	if !v.Type().IsListType() && !v.Type().IsTupleType() {
		return cty.NilVal, false
	}
	for it := v.ElementIterator(); it.Next(); {
		_, el := it.Element()
		if el.Type().IsObjectType() && el.Type().HasAttribute("id") && el.GetAttr("id").AsString() == id {
			return el, true
		}
	}
	return cty.NilVal, false
}
