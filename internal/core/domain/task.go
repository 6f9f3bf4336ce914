package domain

// PreconditionKind selects how a precondition path is checked.
type PreconditionKind int

const (
	// KindFile requires a regular file at the path.
	KindFile PreconditionKind = iota
	// KindDir requires a directory at the path.
	KindDir
)

// Precondition gates a step on filesystem state. It is evaluated when the
// step is about to run, not when the graph is built, because the filesystem
// may change between invocations.
type Precondition struct {
	Kind PreconditionKind
	Path string

	// Negated inverts the check: the step runs when the path is absent.
	Negated bool
}

// Presence is the tri-state outcome of probing a precondition.
type Presence int

const (
	// PresenceAbsent means the path does not exist or is of the wrong kind.
	PresenceAbsent Presence = iota
	// PresencePresent means the path exists and matches the expected kind.
	PresencePresent
	// PresenceError means the probe itself failed (e.g. permission denied).
	PresenceError
)

// Step is one action within a task. Steps run sequentially in declared
// order; the first failing step aborts the whole invocation.
type Step struct {
	// Title identifies the step in error messages and progress output.
	Title string

	// Command is the external invocation in argv form. A step without a
	// command is log-only: it reports Message and appends LogLine.
	Command []string

	// Condition, when set, is probed before the command runs. If the
	// condition is absent the step is skipped, SkipMessage is reported,
	// and the step counts as successful.
	Condition   *Precondition
	SkipMessage string

	// Message is reported at info level when the step runs.
	Message string

	// LogLine, when non-empty, is appended to the changelog after the
	// step completes successfully.
	LogLine string
}

// Task is a named unit of work: an ordered prerequisite list plus an
// ordered sequence of steps.
type Task struct {
	Name          InternedString
	Description   string
	Prerequisites []InternedString
	Steps         []Step
}
