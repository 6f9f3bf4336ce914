package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskAlreadyExists is returned when adding a task whose name is taken.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrMissingPrerequisite is returned when a task lists a prerequisite
	// that does not exist in the graph.
	ErrMissingPrerequisite = zerr.New("missing prerequisite")

	// ErrCycleDetected is returned when the prerequisite relation contains
	// a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrUnknownTask is returned when a requested task is not in the graph.
	ErrUnknownTask = zerr.New("unknown task")

	// ErrStepFailed is returned when a step's external invocation fails.
	ErrStepFailed = zerr.New("step failed")

	// ErrPrerequisiteFailed is returned when a task could not run because
	// one of its prerequisites failed.
	ErrPrerequisiteFailed = zerr.New("prerequisite failed")

	// ErrNoTasksSpecified is returned when a run is requested without
	// any task names.
	ErrNoTasksSpecified = zerr.New("no tasks specified")
)
