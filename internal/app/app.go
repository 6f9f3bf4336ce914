// Package app implements the application layer for pymk.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pymk-dev/pymk/internal/adapters/changelog" //nolint:depguard // Wired in app layer
	"github.com/pymk-dev/pymk/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/pymk-dev/pymk/internal/core/domain"
	"github.com/pymk-dev/pymk/internal/core/ports"
	"github.com/pymk-dev/pymk/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App coordinates configuration loading and task execution.
type App struct {
	configLoader ports.ConfigLoader
	runner       *runner.Runner
	logger       ports.Logger
	out          io.Writer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, run *runner.Runner, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		runner:       run,
		logger:       logger,
		out:          os.Stdout,
	}
}

// WithOutput redirects listing output. Used by tests.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Run executes the requested tasks in order, prerequisites first. The
// changelog lives at the configured path and is shared across invocations.
func (a *App) Run(ctx context.Context, targets []string) error {
	if len(targets) == 0 {
		return domain.ErrNoTasksSpecified
	}

	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// The help task prints the summary table instead of executing.
	remaining := make([]string, 0, len(targets))
	for _, target := range targets {
		if target == config.TaskHelp {
			if err := a.printTasks(project.Graph); err != nil {
				return err
			}
			continue
		}
		remaining = append(remaining, target)
	}
	if len(remaining) == 0 {
		return nil
	}

	log := changelog.NewFile(project.Settings.ChangelogPath)
	if err := a.runner.Run(ctx, project.Graph, log, remaining); err != nil {
		return zerr.Wrap(err, "task execution failed")
	}
	return nil
}

// List prints the task summary table.
func (a *App) List(_ context.Context) error {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	return a.printTasks(project.Graph)
}

func (a *App) printTasks(g *domain.Graph) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TASK\tDEPENDS ON\tDESCRIPTION")
	for _, name := range g.Names() {
		task, ok := g.Task(domain.NewInternedString(name))
		if !ok {
			continue
		}
		prereqs := make([]string, len(task.Prerequisites))
		for i, pre := range task.Prerequisites {
			prereqs[i] = pre.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, strings.Join(prereqs, ", "), task.Description)
	}
	if err := tw.Flush(); err != nil {
		return zerr.Wrap(err, "failed to print task table")
	}
	return nil
}
