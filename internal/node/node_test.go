package node

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/cory321/node-playground-sub003/internal/geometry"
)

func TestNewDefaults(t *testing.T) {
	n := New("n1", "keywords", "Keyword Research", 40, 80, geometry.Size{Width: 240, Height: 120})

	assert.Equal(t, StatusIdle, n.Status())
	assert.Equal(t, geometry.Point{X: 40, Y: 80}, n.Position)

	_, ok := n.Output()
	assert.False(t, ok)
}

func TestStatusLifecycle(t *testing.T) {
	n := New("n1", "keywords", "", 0, 0, geometry.Size{})

	n.SetLoading()
	assert.Equal(t, StatusLoading, n.Status())

	out := cty.ObjectVal(map[string]cty.Value{"keywords": cty.StringVal("a, b")})
	n.SetSuccess(out)
	assert.Equal(t, StatusSuccess, n.Status())

	got, ok := n.Output()
	require.True(t, ok)
	assert.True(t, out.RawEquals(got))
}

func TestOutputHiddenOutsideSuccess(t *testing.T) {
	n := New("n1", "keywords", "", 0, 0, geometry.Size{})
	n.SetSuccess(cty.StringVal("stale"))

	// A failed re-run must hide the previous output from consumers.
	n.SetError(errors.New("rate limited"))
	_, ok := n.Output()
	assert.False(t, ok)
	assert.EqualError(t, n.Err(), "rate limited")

	n.SetLoading()
	_, ok = n.Output()
	assert.False(t, ok)
	assert.NoError(t, n.Err())
}

func TestRewriteOutput(t *testing.T) {
	n := New("n1", "topics", "", 0, 0, geometry.Size{})

	// No-op before a successful run.
	n.RewriteOutput(func(cty.Value) cty.Value { return cty.StringVal("x") })
	_, ok := n.Output()
	assert.False(t, ok)

	n.SetSuccess(cty.StringVal("a"))
	n.RewriteOutput(func(v cty.Value) cty.Value {
		return cty.StringVal(v.AsString() + "b")
	})
	got, ok := n.Output()
	require.True(t, ok)
	assert.Equal(t, "ab", got.AsString())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "error", StatusError.String())
}
