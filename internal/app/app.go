// Package app wires the engine together: logger, kind registry, graph,
// runner, and the pipeline description loader.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/cory321/node-playground-sub003/internal/ctxlog"
	"github.com/cory321/node-playground-sub003/internal/graph"
	"github.com/cory321/node-playground-sub003/internal/kind"
	"github.com/cory321/node-playground-sub003/internal/runner"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	kinds  *kind.Registry
	graph  *graph.Graph
	runner *runner.Runner
}

// NewApp constructs a fully initialized App with its own isolated logger
// and registry. The given kind modules are registered before any manifest
// loading happens.
func NewApp(outW io.Writer, config *Config, modules ...kind.Module) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	reg := kind.New()
	for _, m := range modules {
		m.Register(reg)
	}

	g := graph.New(reg)
	return &App{
		outW:   outW,
		logger: logger,
		config: config,
		kinds:  reg,
		graph:  g,
		runner: runner.New(g),
	}
}

// Graph returns the app's graph.
func (a *App) Graph() *graph.Graph {
	return a.graph
}

// Kinds returns the app's kind registry.
func (a *App) Kinds() *kind.Registry {
	return a.kinds
}

// Run loads manifests and the pipeline description, optionally runs one
// node to completion, and prints a topology summary.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if a.config.KindsPath != "" {
		if err := a.kinds.LoadManifests(ctx, a.config.KindsPath); err != nil {
			return err
		}
	}
	if err := LoadPipelineFile(ctx, a.graph, a.config.PipelinePath); err != nil {
		return err
	}

	if a.config.RunNode != "" {
		done, err := a.runner.Start(ctx, a.config.RunNode)
		if err != nil {
			return fmt.Errorf("running node '%s': %w", a.config.RunNode, err)
		}
		select {
		case <-done:
		case <-ctx.Done():
			a.runner.Stop(a.config.RunNode)
			<-done
		}
	}

	if a.config.Summary {
		a.printSummary()
	}
	return nil
}

// printSummary writes a plain-text topology listing to the output writer.
func (a *App) printSummary() {
	nodes := a.graph.Nodes()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	fmt.Fprintf(a.outW, "nodes (%d):\n", len(nodes))
	for _, n := range nodes {
		fmt.Fprintf(a.outW, "  %-20s kind=%-10s status=%-8s at (%.0f, %.0f)\n",
			n.ID, n.Kind, n.Status(), n.Position.X, n.Position.Y)
		if err := n.Err(); err != nil {
			fmt.Fprintf(a.outW, "  %-20s error: %v\n", "", err)
		}
	}

	conns := a.graph.Connections()
	fmt.Fprintf(a.outW, "connections (%d):\n", len(conns))
	for _, c := range conns {
		fmt.Fprintf(a.outW, "  %s\n", c)
	}
}
