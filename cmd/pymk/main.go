// Package main is the entry point for the pymk CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/pymk-dev/pymk/cmd/pymk/commands"
	"github.com/pymk-dev/pymk/internal/app"
	_ "github.com/pymk-dev/pymk/internal/wiring"
	"go.trai.ch/zerr"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// The logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components)
	execErr := cli.Execute(ctx)

	// Flush recorded progress before deciding the exit status.
	if err := components.Telemetry.Close(); err != nil {
		components.Logger.Error(err)
	}

	if execErr != nil {
		components.Logger.Error(execErr)
		return exitCode(execErr)
	}
	return 0
}

// exitCode surfaces a failing subprocess's exit status as the process exit
// code when one was recorded, and falls back to 1.
func exitCode(err error) int {
	if code := findExitCode(err); code > 0 {
		return code
	}
	return 1
}

func findExitCode(err error) int {
	if err == nil {
		return 0
	}
	if zErr, ok := err.(*zerr.Error); ok {
		if code, ok := zErr.Metadata()["exit_code"].(int); ok && code > 0 {
			return code
		}
	}
	switch unwrapped := err.(type) {
	case interface{ Unwrap() error }:
		return findExitCode(unwrapped.Unwrap())
	case interface{ Unwrap() []error }:
		for _, e := range unwrapped.Unwrap() {
			if code := findExitCode(e); code > 0 {
				return code
			}
		}
	}
	return 0
}
