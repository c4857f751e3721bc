package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/cory321/node-playground-sub003/internal/ctxlog"
	"github.com/cory321/node-playground-sub003/internal/graph"
	"github.com/cory321/node-playground-sub003/internal/schema"
)

// LoadPipelineFile seeds g from an HCL pipeline description on disk.
func LoadPipelineFile(ctx context.Context, g *graph.Graph, path string) error {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("parsing pipeline file %s: %w", path, diags)
	}
	return loadPipelineBody(ctx, g, hclFile.Body)
}

// LoadPipelineSource is LoadPipelineFile over an in-memory buffer, used by
// tests. filename is used for diagnostics only.
func LoadPipelineSource(ctx context.Context, g *graph.Graph, filename string, src []byte) error {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("parsing pipeline source %s: %w", filename, diags)
	}
	return loadPipelineBody(ctx, g, hclFile.Body)
}

func loadPipelineBody(ctx context.Context, g *graph.Graph, body hcl.Body) error {
	logger := ctxlog.FromContext(ctx)

	var pipeline schema.PipelineConfig
	if diags := gohcl.DecodeBody(body, nil, &pipeline); diags.HasErrors() {
		return diags
	}

	for _, nb := range pipeline.Nodes {
		n, err := g.CreateNodeWithID(ctx, nb.Kind, nb.ID, nb.X, nb.Y)
		if err != nil {
			return fmt.Errorf("node '%s': %w", nb.ID, err)
		}
		if nb.Title != "" {
			n.Title = nb.Title
		}
		if err := decodeNodeConfig(n.Config, nb.Config); err != nil {
			return fmt.Errorf("node '%s' config: %w", nb.ID, err)
		}
	}

	for _, cb := range pipeline.Connects {
		conn := graph.Connection{
			FromNode: cb.From,
			FromPort: cb.FromPort,
			ToNode:   cb.To,
			ToPort:   cb.ToPort,
		}
		err := g.AddConnection(ctx, conn)
		if errors.Is(err, graph.ErrDuplicateConnection) {
			logger.Warn("Duplicate connection in pipeline file, it will be ignored.", "key", conn.Key())
			continue
		}
		if err != nil {
			return fmt.Errorf("connection %s: %w", conn, err)
		}
	}

	logger.Info("Pipeline loaded.", "nodes", len(pipeline.Nodes), "connections", len(pipeline.Connects))
	return nil
}

// decodeNodeConfig collects the free-form attributes of a node block as
// kind-specific config values.
func decodeNodeConfig(dst map[string]cty.Value, body hcl.Body) error {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return diags
	}
	for name, attr := range attrs {
		v, valDiags := attr.Expr.Value(nil)
		if valDiags.HasErrors() {
			return valDiags
		}
		dst[name] = v
	}
	return nil
}
