// Package shell provides the shell executor adapter.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/pymk-dev/pymk/internal/core/domain"
	"github.com/pymk-dev/pymk/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Executor implements ports.Executor using os/exec. Each step blocks until
// its subprocess finishes; the subprocess's stdout and stderr are streamed
// line by line to the writers supplied by the caller.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs the step's command in dir. The command is echoed at info
// level before it runs, the way make echoes recipe lines. On a non-zero
// exit the returned error carries the exit code as "exit_code" metadata.
func (e *Executor) Execute(ctx context.Context, dir string, step *domain.Step, stdout, stderr io.Writer) error {
	if len(step.Command) == 0 {
		return nil
	}

	name := step.Command[0]
	args := step.Command[1:]

	e.logger.Info("$ " + strings.Join(step.Command, " "))

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // task commands come from the loaded configuration
	cmd.Dir = dir

	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stdout pipe")
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start command"), "command", name)
	}

	// Line-buffer both streams concurrently so interleaved output stays
	// whole-line. The group must be drained before Wait closes the pipes.
	var g errgroup.Group
	g.Go(func() error { return copyLines(outPipe, stdout) })
	g.Go(func() error { return copyLines(errPipe, stderr) })
	streamErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "command failed"),
			"command", name),
			"exit_code", exitCode)
	}
	if streamErr != nil {
		return zerr.Wrap(streamErr, "failed to stream command output")
	}
	return nil
}

// copyLines forwards r to w one line at a time. It reads with bufio.Reader
// rather than bufio.Scanner so a single line longer than the scanner's
// token limit does not turn a successful command into a stream failure.
func copyLines(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if !strings.HasSuffix(line, "\n") {
				line += "\n"
			}
			if _, werr := io.WriteString(w, line); werr != nil {
				return werr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
