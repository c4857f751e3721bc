package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory321/node-playground-sub003/internal/graph"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg, err := NewConfig(Config{PipelinePath: "unused.hcl", LogLevel: "error"})
	require.NoError(t, err)
	return NewApp(&bytes.Buffer{}, cfg, BuiltinKinds()...)
}

func TestLoadPipelineSource(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)

	src := []byte(`
node "keywords" "seed" {
  x     = 40
  y     = 80
  title = "Seed keywords"
  topic = "running shoes"
}

node "topics" "plan" {
  x = 360
  y = 60
}

node "article" "writer" {
  x = 700
  y = 60
}

connect {
  from = "seed"
  to   = "plan"
}

connect {
  from      = "plan"
  from_port = "cat-how-to"
  to        = "writer"
  to_port   = "blueprint"
}
`)
	require.NoError(t, LoadPipelineSource(ctx, a.Graph(), "pipeline.hcl", src))

	seed, ok := a.Graph().Node("seed")
	require.True(t, ok)
	assert.Equal(t, "Seed keywords", seed.Title)
	assert.Equal(t, 40.0, seed.Position.X)

	topic, ok := seed.Config["topic"]
	require.True(t, ok)
	assert.Equal(t, "running shoes", topic.AsString())

	plan, ok := a.Graph().Node("plan")
	require.True(t, ok)
	assert.Equal(t, "Topic Map", plan.Title, "kind default title")

	assert.Len(t, a.Graph().Connections(), 2)
}

func TestLoadPipelineSourceUnknownKind(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)

	err := LoadPipelineSource(ctx, a.Graph(), "pipeline.hcl", []byte(`
node "unregistered" "x" {
  x = 0
  y = 0
}
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, graph.ErrUnknownKind)
}

func TestLoadPipelineSourceMissingEndpoint(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)

	err := LoadPipelineSource(ctx, a.Graph(), "pipeline.hcl", []byte(`
node "note" "only" {
  x = 0
  y = 0
}

connect {
  from = "only"
  to   = "ghost"
}
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestLoadPipelineSourceSkipsDuplicateConnections(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)

	require.NoError(t, LoadPipelineSource(ctx, a.Graph(), "pipeline.hcl", []byte(`
node "keywords" "a" {
  x = 0
  y = 0
}

node "note" "b" {
  x = 0
  y = 0
}

connect {
  from = "a"
  to   = "b"
}

connect {
  from = "a"
  to   = "b"
}
`)))
	assert.Len(t, a.Graph().Connections(), 1)
}
