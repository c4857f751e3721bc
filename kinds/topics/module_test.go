package topics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/cory321/node-playground-sub003/internal/fanout"
)

func TestRunFansOutCategories(t *testing.T) {
	out, err := Run(context.Background(), map[string]cty.Value{
		"": cty.StringVal("running shoes, best running shoes"),
	})
	require.NoError(t, err)

	items, err := fanout.ItemsFromValue(out)
	require.NoError(t, err)
	require.Len(t, items, len(archetypes))

	// Ranked descending, skip verdicts hidden by default.
	assert.Equal(t, "cat-how-to", items[0].ID)
	assert.True(t, items[0].Visible)
	for _, it := range items {
		if it.Verdict == fanout.VerdictSkip {
			assert.False(t, it.Visible, "%s should default hidden", it.ID)
		}
		assert.Contains(t, it.Label, "running shoes")
	}
}

func TestRunWithoutInputUsesPlaceholderTopic(t *testing.T) {
	out, err := Run(context.Background(), map[string]cty.Value{})
	require.NoError(t, err)

	items, err := fanout.ItemsFromValue(out)
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.Contains(t, items[0].Label, "topic")
}

func TestRunIsDeterministic(t *testing.T) {
	in := map[string]cty.Value{"": cty.StringVal("espresso machines")}

	a, err := Run(context.Background(), in)
	require.NoError(t, err)
	b, err := Run(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, a.RawEquals(b))
}
