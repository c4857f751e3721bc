package article

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestRunComposesWiredSections(t *testing.T) {
	out, err := Run(context.Background(), map[string]cty.Value{
		"blueprint": cty.StringVal("outline of the piece"),
		"comparison": cty.ObjectVal(map[string]cty.Value{
			"id":    cty.StringVal("cat-compare"),
			"label": cty.StringVal("Comparisons"),
		}),
	})
	require.NoError(t, err)

	md := out.GetAttr("markdown").AsString()
	assert.Contains(t, md, "## Blueprint")
	assert.Contains(t, md, "outline of the piece")
	assert.Contains(t, md, "## Comparison")
	assert.Contains(t, md, "Comparisons")
	assert.NotContains(t, md, "## Editorial", "unwired slot contributes nothing")

	sections, _ := out.GetAttr("sections").AsBigFloat().Int64()
	assert.Equal(t, int64(2), sections)
}

func TestRunWithNoInputs(t *testing.T) {
	out, err := Run(context.Background(), map[string]cty.Value{})
	require.NoError(t, err)
	assert.Contains(t, out.GetAttr("markdown").AsString(), "# Draft")
}
