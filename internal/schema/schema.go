// Package schema declares the HCL shapes understood by the engine: the
// kind-manifest files that describe a node kind's ports, and the pipeline
// description files the CLI can seed a graph from.
package schema

import "github.com/hashicorp/hcl/v2"

// --- Kind manifest structures ---

// PortBlock declares one named input slot of a fixed multi-input port.
// The block order in the manifest is the port order used for geometry.
type PortBlock struct {
	ID       string `hcl:"id,label"`
	Label    string `hcl:"label"`
	Required bool   `hcl:"required,optional"`
}

// KindBlock is the manifest for a single node kind.
type KindBlock struct {
	Name       string       `hcl:"name,label"`
	Title      string       `hcl:"title"`
	Width      float64      `hcl:"width,optional"`
	Height     float64      `hcl:"height,optional"`
	FanOut     bool         `hcl:"fan_out,optional"`
	OutputAttr string       `hcl:"output_attr,optional"`
	Inputs     []*PortBlock `hcl:"input,block"`
}

// ManifestConfig is the top-level structure of a kind manifest file.
type ManifestConfig struct {
	Kinds []*KindBlock `hcl:"kind,block"`
}

// --- Pipeline description structures ---

// NodeBlock places one node on the canvas. Any attributes beyond the
// declared ones are collected as kind-specific config.
type NodeBlock struct {
	Kind   string   `hcl:"kind,label"`
	ID     string   `hcl:"id,label"`
	X      float64  `hcl:"x"`
	Y      float64  `hcl:"y"`
	Title  string   `hcl:"title,optional"`
	Config hcl.Body `hcl:",remain"`
}

// ConnectBlock declares one directed connection. Port attributes are empty
// for implicit single ports.
type ConnectBlock struct {
	From     string `hcl:"from"`
	To       string `hcl:"to"`
	FromPort string `hcl:"from_port,optional"`
	ToPort   string `hcl:"to_port,optional"`
}

// PipelineConfig is the top-level structure of a pipeline description file.
type PipelineConfig struct {
	Nodes    []*NodeBlock    `hcl:"node,block"`
	Connects []*ConnectBlock `hcl:"connect,block"`
}
