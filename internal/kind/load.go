package kind

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/cory321/node-playground-sub003/internal/ctxlog"
	"github.com/cory321/node-playground-sub003/internal/fsutil"
	"github.com/cory321/node-playground-sub003/internal/schema"
)

// LoadManifests walks kindsPath for .hcl kind manifests and registers every
// kind they declare. Manifest kinds extend the built-in set; declaring a
// name that is already registered is a startup error rather than an
// override.
func (r *Registry) LoadManifests(ctx context.Context, kindsPath string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading kind manifests.", "path", kindsPath)

	filePaths, err := fsutil.FindFilesByExtension(kindsPath, ".hcl")
	if err != nil {
		return fmt.Errorf("walking kinds path %s: %w", kindsPath, err)
	}
	if len(filePaths) == 0 {
		logger.Warn("No kind manifest files found.", "path", kindsPath)
		return nil
	}

	parser := hclparse.NewParser()
	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return fmt.Errorf("parsing kind manifest %s: %w", filePath, diags)
		}
		if err := r.registerManifestBody(hclFile.Body); err != nil {
			return fmt.Errorf("loading kind manifest %s: %w", filePath, err)
		}
		logger.Debug("Loaded kind manifest.", "file", filePath)
	}

	logger.Info("Kind manifests loaded.", "kinds_registered", len(r.defs))
	return nil
}

// LoadManifestSource parses a single manifest from an in-memory buffer and
// registers its kinds. filename is used for diagnostics only.
func (r *Registry) LoadManifestSource(filename string, src []byte) error {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("parsing kind manifest %s: %w", filename, diags)
	}
	return r.registerManifestBody(hclFile.Body)
}

// registerManifestBody decodes a manifest body and registers its kinds.
func (r *Registry) registerManifestBody(body hcl.Body) error {
	var manifest schema.ManifestConfig
	if diags := gohcl.DecodeBody(body, nil, &manifest); diags.HasErrors() {
		return diags
	}

	for _, kb := range manifest.Kinds {
		if _, exists := r.defs[kb.Name]; exists {
			return fmt.Errorf("kind '%s' declared twice", kb.Name)
		}
		def := &Definition{
			Name:       kb.Name,
			Title:      kb.Title,
			FanOut:     kb.FanOut,
			OutputAttr: kb.OutputAttr,
		}
		if kb.Width > 0 && kb.Height > 0 {
			def.Size.Width = kb.Width
			def.Size.Height = kb.Height
		}
		for _, pb := range kb.Inputs {
			def.Inputs = append(def.Inputs, PortDef{
				ID:       pb.ID,
				Label:    pb.Label,
				Required: pb.Required,
			})
		}
		r.RegisterKind(def)
	}
	return nil
}
