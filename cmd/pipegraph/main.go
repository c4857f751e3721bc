package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cory321/node-playground-sub003/internal/app"
	"github.com/cory321/node-playground-sub003/internal/cli"
)

// main is the entrypoint for the pipegraph CLI.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) (err error) {
	// Kind registration panics on startup misconfiguration; recover so
	// the user gets a clean exit message instead of a stack trace.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	pipegraph := app.NewApp(outW, appConfig, app.BuiltinKinds()...)
	return pipegraph.Run(context.Background())
}
