package kind

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory321/node-playground-sub003/internal/geometry"
)

func TestRegisterKind(t *testing.T) {
	r := New()
	r.RegisterKind(&Definition{Name: "keywords", Title: "Keyword Research"})

	def, ok := r.Definition("keywords")
	require.True(t, ok)
	assert.Equal(t, "Keyword Research", def.Title)
	assert.Equal(t, DefaultSize, def.Size, "unset size falls back to the default")

	assert.Panics(t, func() {
		r.RegisterKind(&Definition{Name: "keywords"})
	})
}

func TestRegisterHandler(t *testing.T) {
	r := New()
	r.RegisterHandler("keywords", &Handler{})

	_, ok := r.Handler("keywords")
	assert.True(t, ok)

	_, ok = r.Handler("unknown")
	assert.False(t, ok)

	assert.Panics(t, func() {
		r.RegisterHandler("keywords", &Handler{})
	})
}

func TestNewNode(t *testing.T) {
	r := New()
	r.RegisterKind(&Definition{
		Name:  "note",
		Title: "Note",
		Size:  geometry.Size{Width: 200, Height: 80},
	})

	n, ok := r.NewNode("note", "n1", 10, 20)
	require.True(t, ok)
	assert.Equal(t, "note", n.Kind)
	assert.Equal(t, "Note", n.Title)
	assert.Equal(t, geometry.Point{X: 10, Y: 20}, n.Position)

	_, ok = r.NewNode("unregistered", "n2", 0, 0)
	assert.False(t, ok)
}

func TestLoadManifestSource(t *testing.T) {
	src := []byte(`
kind "article" {
  title  = "Article Writer"
  width  = 280
  height = 200

  input "blueprint" {
    label    = "Blueprint"
    required = true
  }
  input "editorial" {
    label = "Editorial"
  }
  input "comparison" {
    label = "Comparison"
  }
}

kind "topics" {
  title   = "Topic Map"
  fan_out = true
}
`)

	r := New()
	require.NoError(t, r.LoadManifestSource("test.hcl", src))

	article, ok := r.Definition("article")
	require.True(t, ok)
	want := []PortDef{
		{ID: "blueprint", Label: "Blueprint", Required: true},
		{ID: "editorial", Label: "Editorial"},
		{ID: "comparison", Label: "Comparison"},
	}
	if diff := cmp.Diff(want, article.Inputs); diff != "" {
		t.Fatalf("input ports mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, geometry.Size{Width: 280, Height: 200}, article.Size)

	topics, ok := r.Definition("topics")
	require.True(t, ok)
	assert.True(t, topics.FanOut)
	assert.Empty(t, topics.Inputs)
}

func TestLoadManifestSourceRejectsDuplicate(t *testing.T) {
	r := New()
	r.RegisterKind(&Definition{Name: "note", Title: "Note"})

	err := r.LoadManifestSource("dup.hcl", []byte(`
kind "note" {
  title = "Another Note"
}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declared twice")
}

func TestLoadManifestSourceInvalidHCL(t *testing.T) {
	r := New()
	err := r.LoadManifestSource("bad.hcl", []byte(`kind "x" {`))
	assert.Error(t, err)
}
