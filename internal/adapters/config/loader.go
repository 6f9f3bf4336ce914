// Package config loads pymk.yaml and builds the task graph.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/pymk-dev/pymk/internal/core/domain"
	"github.com/pymk-dev/pymk/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working
// directory.
const DefaultFilename = "pymk.yaml"

// Loader implements ports.ConfigLoader. An absent configuration file is
// not an error: the builtin task catalog with default settings covers the
// common case of an unconfigured project.
type Loader struct {
	// Filename is the config file name relative to the working directory.
	Filename string

	logger ports.Logger
}

// NewLoader creates a Loader reading DefaultFilename.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Filename: DefaultFilename,
		logger:   logger,
	}
}

// Load reads the configuration from cwd and returns the resolved settings
// together with the validated task graph (builtin catalog plus any
// user-defined tasks).
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	settings := domain.DefaultSettings()
	var file Pymkfile

	// An absolute --config path must not be re-anchored under cwd.
	path := l.Filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.logger.Info("no " + l.Filename + " found, using defaults")
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
		}
		applySettings(&settings, &file)
	}

	if settings.ProjectName == "" {
		abs, err := filepath.Abs(cwd)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to resolve working directory")
		}
		settings.ProjectName = filepath.Base(abs)
	}
	if settings.ImageTag == "" {
		settings.ImageTag = settings.ProjectName + ":latest"
	}

	g := BuiltinGraph(settings)
	if err := mergeUserTasks(g, file.Tasks); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, zerr.Wrap(err, "invalid task graph")
	}

	return &domain.Project{Settings: settings, Graph: g}, nil
}

func applySettings(s *domain.Settings, file *Pymkfile) {
	if file.ProjectName != "" {
		s.ProjectName = file.ProjectName
	}
	if file.Python != "" {
		s.Python = file.Python
	}
	if file.VenvDir != "" {
		s.VenvDir = file.VenvDir
	}
	if file.ImageTag != "" {
		s.ImageTag = file.ImageTag
	}
	if file.ChangelogPath != "" {
		s.ChangelogPath = file.ChangelogPath
	}
}

// mergeUserTasks adds the user-defined tasks to the builtin graph. Names
// are processed in lexical order so collision errors are deterministic.
func mergeUserTasks(g *domain.Graph, tasks map[string]TaskDTO) error {
	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		dto := tasks[name]
		task := &domain.Task{
			Name:          domain.NewInternedString(name),
			Description:   dto.Description,
			Prerequisites: domain.NewInternedStrings(dto.DependsOn),
		}
		if len(dto.Cmd) > 0 {
			task.Steps = []domain.Step{{Title: name, Command: dto.Cmd}}
		}
		if err := g.AddTask(task); err != nil {
			return err
		}
	}
	return nil
}
