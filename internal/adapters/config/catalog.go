package config

import (
	"path/filepath"

	"github.com/pymk-dev/pymk/internal/core/domain"
)

// Task names of the builtin catalog.
const (
	TaskAll         = "all"
	TaskSetup       = "setup"
	TaskVenv        = "venv"
	TaskInstall     = "install"
	TaskUpdate      = "update"
	TaskBuild       = "build"
	TaskTest        = "test"
	TaskRun         = "run"
	TaskClean       = "clean"
	TaskDockerBuild = "docker-build"
	TaskDockerRun   = "docker-run"
	TaskDeploy      = "deploy"
	TaskHelp        = "help"
)

// manifestFile is the dependency manifest gating install/update.
const manifestFile = "requirements.txt"

// BuiltinGraph builds the builtin task catalog for the given settings.
// Tool paths are derived from the configured virtual environment so tasks
// run the project's interpreter rather than whatever is on PATH.
func BuiltinGraph(s domain.Settings) *domain.Graph {
	pip := venvBin(s, "pip")
	python := venvBin(s, "python")

	tasks := []domain.Task{
		{
			Name:        domain.NewInternedString(TaskAll),
			Description: "run setup, venv, install, build and test",
			Prerequisites: domain.NewInternedStrings([]string{
				TaskSetup, TaskVenv, TaskInstall, TaskBuild, TaskTest,
			}),
		},
		{
			Name:        domain.NewInternedString(TaskSetup),
			Description: "create the standard project directories",
			Steps: []domain.Step{{
				Title:   "create project directories",
				Command: []string{"mkdir", "-p", "src", "tests", "docs", "data"},
				LogLine: "created project directories",
			}},
		},
		{
			Name:        domain.NewInternedString(TaskVenv),
			Description: "create the virtual environment",
			Steps: []domain.Step{{
				Title:       "create virtual environment",
				Command:     []string{s.Python, "-m", "venv", s.VenvDir},
				Condition:   &domain.Precondition{Kind: domain.KindDir, Path: s.VenvDir, Negated: true},
				SkipMessage: "venv: environment already exists at " + s.VenvDir,
				LogLine:     "created virtual environment in " + s.VenvDir,
			}},
		},
		{
			Name:          domain.NewInternedString(TaskInstall),
			Description:   "install dependencies from " + manifestFile,
			Prerequisites: domain.NewInternedStrings([]string{TaskVenv}),
			Steps: []domain.Step{{
				Title:       "install dependencies",
				Command:     []string{pip, "install", "-r", manifestFile},
				Condition:   &domain.Precondition{Kind: domain.KindFile, Path: manifestFile},
				SkipMessage: "install: no " + manifestFile + " found",
				LogLine:     "installed dependencies from " + manifestFile,
			}},
		},
		{
			Name:          domain.NewInternedString(TaskUpdate),
			Description:   "upgrade dependencies from " + manifestFile,
			Prerequisites: domain.NewInternedStrings([]string{TaskVenv}),
			Steps: []domain.Step{{
				Title:       "upgrade dependencies",
				Command:     []string{pip, "install", "--upgrade", "-r", manifestFile},
				Condition:   &domain.Precondition{Kind: domain.KindFile, Path: manifestFile},
				SkipMessage: "update: no " + manifestFile + " found",
				LogLine:     "upgraded dependencies from " + manifestFile,
			}},
		},
		{
			Name:          domain.NewInternedString(TaskBuild),
			Description:   "build distribution artifacts",
			Prerequisites: domain.NewInternedStrings([]string{TaskVenv}),
			Steps: []domain.Step{{
				Title:       "build distribution",
				Command:     []string{python, "-m", "build"},
				Condition:   &domain.Precondition{Kind: domain.KindFile, Path: "pyproject.toml"},
				SkipMessage: "build: no pyproject.toml found",
				LogLine:     "built distribution artifacts",
			}},
		},
		{
			Name:          domain.NewInternedString(TaskTest),
			Description:   "run the test suite",
			Prerequisites: domain.NewInternedStrings([]string{TaskVenv}),
			Steps: []domain.Step{{
				Title:       "run tests",
				Command:     []string{python, "-m", "pytest", "tests"},
				Condition:   &domain.Precondition{Kind: domain.KindDir, Path: "tests"},
				SkipMessage: "test: no tests directory found",
			}},
		},
		{
			Name:          domain.NewInternedString(TaskRun),
			Description:   "run the application entry point",
			Prerequisites: domain.NewInternedStrings([]string{TaskVenv}),
			Steps: []domain.Step{{
				Title:       "run entry point",
				Command:     []string{python, "src/main.py"},
				Condition:   &domain.Precondition{Kind: domain.KindFile, Path: "src/main.py"},
				SkipMessage: "run: no src/main.py found",
			}},
		},
		{
			Name:        domain.NewInternedString(TaskClean),
			Description: "remove build artifacts and the virtual environment",
			Steps: []domain.Step{
				{
					Title:   "remove build artifacts",
					Command: []string{"rm", "-rf", "build", "dist", s.VenvDir},
				},
				{
					Title:   "remove bytecode caches",
					Command: []string{"find", ".", "-type", "d", "-name", "__pycache__", "-prune", "-exec", "rm", "-rf", "{}", "+"},
				},
				{
					Title:   "remove compiled files",
					Command: []string{"find", ".", "-type", "f", "-name", "*.pyc", "-delete"},
					LogLine: "removed build artifacts and virtual environment",
				},
			},
		},
		{
			Name:        domain.NewInternedString(TaskDockerBuild),
			Description: "build the container image",
			Steps: []domain.Step{{
				Title:   "build container image",
				Command: []string{"docker", "build", "-t", s.ImageTag, "."},
				LogLine: "built container image " + s.ImageTag,
			}},
		},
		{
			Name:        domain.NewInternedString(TaskDockerRun),
			Description: "run the container image interactively",
			Steps: []domain.Step{{
				Title:   "run container image",
				Command: []string{"docker", "run", "--rm", "-it", s.ImageTag},
			}},
		},
		{
			// The deploy task is deliberately a placeholder: it records
			// the attempt and performs no real action.
			Name:        domain.NewInternedString(TaskDeploy),
			Description: "placeholder, performs no action",
			Steps: []domain.Step{{
				Title:   "deploy placeholder",
				Message: "deploy is not implemented; no action taken",
				LogLine: "deploy requested (no action taken)",
			}},
		},
		{
			Name:        domain.NewInternedString(TaskHelp),
			Description: "print the task summary table",
		},
	}

	g := domain.NewGraph()
	for i := range tasks {
		// Builtin names are distinct by construction.
		_ = g.AddTask(&tasks[i])
	}
	return g
}

func venvBin(s domain.Settings, tool string) string {
	return filepath.Join(s.VenvDir, "bin", tool)
}
