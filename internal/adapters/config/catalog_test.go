package config_test

import (
	"path/filepath"
	"testing"

	"github.com/pymk-dev/pymk/internal/adapters/config"
	"github.com/pymk-dev/pymk/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinGraph_Validates(t *testing.T) {
	g := config.BuiltinGraph(domain.DefaultSettings())
	require.NoError(t, g.Validate())
	assert.Equal(t, 13, g.TaskCount())
}

func TestBuiltinGraph_AllPrerequisites(t *testing.T) {
	g := config.BuiltinGraph(domain.DefaultSettings())

	all, ok := g.Task(domain.NewInternedString(config.TaskAll))
	require.True(t, ok)

	got := make([]string, len(all.Prerequisites))
	for i, p := range all.Prerequisites {
		got[i] = p.String()
	}
	assert.Equal(t, []string{"setup", "venv", "install", "build", "test"}, got)
}

func TestBuiltinGraph_VenvGatedOnAbsence(t *testing.T) {
	s := domain.DefaultSettings()
	s.VenvDir = "env"
	g := config.BuiltinGraph(s)

	venv, ok := g.Task(domain.NewInternedString(config.TaskVenv))
	require.True(t, ok)
	require.Len(t, venv.Steps, 1)

	step := venv.Steps[0]
	assert.Equal(t, []string{"python3", "-m", "venv", "env"}, step.Command)
	require.NotNil(t, step.Condition)
	assert.Equal(t, domain.KindDir, step.Condition.Kind)
	assert.Equal(t, "env", step.Condition.Path)
	assert.True(t, step.Condition.Negated)
}

func TestBuiltinGraph_ToolPathsUseVenv(t *testing.T) {
	s := domain.DefaultSettings()
	s.VenvDir = "env"
	g := config.BuiltinGraph(s)

	install, ok := g.Task(domain.NewInternedString(config.TaskInstall))
	require.True(t, ok)
	assert.Equal(t, filepath.Join("env", "bin", "pip"), install.Steps[0].Command[0])

	test, ok := g.Task(domain.NewInternedString(config.TaskTest))
	require.True(t, ok)
	assert.Equal(t, filepath.Join("env", "bin", "python"), test.Steps[0].Command[0])
}

func TestBuiltinGraph_InstallGatedOnManifest(t *testing.T) {
	g := config.BuiltinGraph(domain.DefaultSettings())

	for _, name := range []string{config.TaskInstall, config.TaskUpdate} {
		task, ok := g.Task(domain.NewInternedString(name))
		require.True(t, ok, name)
		require.Len(t, task.Steps, 1, name)
		cond := task.Steps[0].Condition
		require.NotNil(t, cond, name)
		assert.Equal(t, domain.KindFile, cond.Kind, name)
		assert.Equal(t, "requirements.txt", cond.Path, name)
		assert.False(t, cond.Negated, name)
	}
}

func TestBuiltinGraph_DeployIsLogOnly(t *testing.T) {
	g := config.BuiltinGraph(domain.DefaultSettings())

	deploy, ok := g.Task(domain.NewInternedString(config.TaskDeploy))
	require.True(t, ok)
	require.Len(t, deploy.Steps, 1)

	step := deploy.Steps[0]
	assert.Empty(t, step.Command)
	assert.NotEmpty(t, step.Message)
	assert.NotEmpty(t, step.LogLine)
}

func TestBuiltinGraph_CleanRemovesVenvDir(t *testing.T) {
	s := domain.DefaultSettings()
	s.VenvDir = "env"
	g := config.BuiltinGraph(s)

	clean, ok := g.Task(domain.NewInternedString(config.TaskClean))
	require.True(t, ok)
	require.NotEmpty(t, clean.Steps)
	assert.Contains(t, clean.Steps[0].Command, "env")
}

func TestBuiltinGraph_DockerTasksUseImageTag(t *testing.T) {
	s := domain.DefaultSettings()
	s.ImageTag = "acme:dev"
	g := config.BuiltinGraph(s)

	build, ok := g.Task(domain.NewInternedString(config.TaskDockerBuild))
	require.True(t, ok)
	assert.Contains(t, build.Steps[0].Command, "acme:dev")

	run, ok := g.Task(domain.NewInternedString(config.TaskDockerRun))
	require.True(t, ok)
	assert.Contains(t, run.Steps[0].Command, "acme:dev")
}

func TestBuiltinGraph_HelpHasNoSteps(t *testing.T) {
	g := config.BuiltinGraph(domain.DefaultSettings())

	help, ok := g.Task(domain.NewInternedString(config.TaskHelp))
	require.True(t, ok)
	assert.Empty(t, help.Steps)
}
