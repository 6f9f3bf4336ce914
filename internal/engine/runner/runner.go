// Package runner implements the serial task runner.
package runner

import (
	"context"
	"errors"
	"strings"

	"github.com/pymk-dev/pymk/internal/core/domain"
	"github.com/pymk-dev/pymk/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner executes tasks from a dependency graph: prerequisites first, each
// task at most once per invocation, steps strictly in declared order. There
// is no parallelism, no retry and no caching across invocations; the first
// failing step aborts the run.
type Runner struct {
	executor  ports.Executor
	prober    ports.Prober
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewRunner creates a Runner with the given collaborators.
func NewRunner(
	executor ports.Executor,
	prober ports.Prober,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Runner {
	return &Runner{
		executor:  executor,
		prober:    prober,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run executes the requested targets in order. Every target is resolved
// before anything executes, so an unknown task name fails without side
// effects. The changelog is owned by the caller; the runner only appends.
func (r *Runner) Run(ctx context.Context, graph *domain.Graph, changelog ports.Changelog, targets []string) error {
	if len(targets) == 0 {
		return domain.ErrNoTasksSpecified
	}

	plans := make([][]domain.Task, 0, len(targets))
	for _, target := range targets {
		order, err := graph.Resolve(domain.NewInternedString(target))
		if err != nil {
			return err
		}
		plans = append(plans, order)
	}

	executed := make(map[domain.InternedString]bool, graph.TaskCount())
	for i, order := range plans {
		target := targets[i]
		for _, task := range order {
			if executed[task.Name] {
				continue
			}
			if err := r.runTask(ctx, &task, changelog); err != nil {
				if task.Name.String() != target {
					return errors.Join(domain.ErrPrerequisiteFailed,
						zerr.With(zerr.Wrap(err, "prerequisite failed"), "dependent", target))
				}
				return err
			}
			executed[task.Name] = true
		}
	}
	return nil
}

func (r *Runner) runTask(ctx context.Context, task *domain.Task, changelog ports.Changelog) error {
	ctx, vertex := r.telemetry.Record(ctx, task.Name.String())
	err := r.runSteps(ctx, task, vertex, changelog)
	vertex.Complete(err)
	return err
}

func (r *Runner) runSteps(ctx context.Context, task *domain.Task, vertex ports.Vertex, changelog ports.Changelog) error {
	for i := range task.Steps {
		step := &task.Steps[i]

		if err := ctx.Err(); err != nil {
			return r.stepError(task, step, zerr.Wrap(err, "run aborted"))
		}

		ready, err := r.stepReady(step)
		if err != nil {
			return r.stepError(task, step, err)
		}
		if !ready {
			r.logger.Info(skipMessage(task, step))
			continue
		}

		if step.Message != "" {
			r.logger.Info(step.Message)
		}
		if len(step.Command) > 0 {
			if err := r.executor.Execute(ctx, ".", step, vertex.Stdout(), vertex.Stderr()); err != nil {
				return r.stepError(task, step, err)
			}
		}
		if step.LogLine != "" {
			if err := changelog.Append(step.LogLine); err != nil {
				return r.stepError(task, step, zerr.Wrap(err, "failed to append changelog"))
			}
		}
	}
	return nil
}

// stepReady evaluates the step's precondition at execution time. A missing
// optional input is not an error: the step is skipped and reported.
func (r *Runner) stepReady(step *domain.Step) (bool, error) {
	if step.Condition == nil {
		return true, nil
	}
	presence, err := r.prober.Probe(step.Condition)
	if presence == domain.PresenceError {
		return false, zerr.Wrap(err, "precondition probe failed")
	}
	holds := presence == domain.PresencePresent
	if step.Condition.Negated {
		holds = !holds
	}
	return holds, nil
}

func (r *Runner) stepError(task *domain.Task, step *domain.Step, err error) error {
	return errors.Join(domain.ErrStepFailed,
		zerr.With(zerr.With(zerr.Wrap(err, "step failed"),
			"task", task.Name.String()),
			"step", step.Title))
}

func skipMessage(task *domain.Task, step *domain.Step) string {
	if step.SkipMessage != "" {
		return step.SkipMessage
	}
	var b strings.Builder
	b.WriteString(task.Name.String())
	b.WriteString(": skipping ")
	b.WriteString(step.Title)
	return b.String()
}
