package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pymk-dev/pymk/internal/adapters/telemetry"
	"github.com/pymk-dev/pymk/internal/app"
	"github.com/pymk-dev/pymk/internal/core/domain"
	"github.com/pymk-dev/pymk/internal/core/ports/mocks"
	"github.com/pymk-dev/pymk/internal/engine/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
	app      *app.App
	out      *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	prober := mocks.NewMockProber(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	run := runner.NewRunner(executor, prober, telemetry.NewNoop(), logger)

	var out bytes.Buffer
	return &harness{
		loader:   loader,
		executor: executor,
		app:      app.New(loader, run, logger).WithOutput(&out),
		out:      &out,
	}
}

func testProject(t *testing.T, changelogPath string) *domain.Project {
	t.Helper()
	g := domain.NewGraph()
	require.NoError(t, g.AddTask(&domain.Task{
		Name:        domain.NewInternedString("deploy"),
		Description: "placeholder, performs no action",
		Steps: []domain.Step{{
			Title:   "deploy placeholder",
			Message: "deploy is not implemented; no action taken",
			LogLine: "deploy requested (no action taken)",
		}},
	}))
	require.NoError(t, g.AddTask(&domain.Task{
		Name:        domain.NewInternedString("help"),
		Description: "print the task summary table",
	}))
	require.NoError(t, g.Validate())

	settings := domain.DefaultSettings()
	settings.ProjectName = "demo"
	settings.ChangelogPath = changelogPath
	return &domain.Project{Settings: settings, Graph: g}
}

func TestApp_Run_NoTargets(t *testing.T) {
	h := newHarness(t)

	// The loader must not be touched when there is nothing to run.
	err := h.app.Run(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoTasksSpecified)
}

func TestApp_Run_LoaderError(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(".").Return(nil, errors.New("bad yaml"))

	err := h.app.Run(context.Background(), []string{"deploy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Run_AppendsChangelog(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "changelog.txt")
	h.loader.EXPECT().Load(".").Return(testProject(t, path), nil)

	err := h.app.Run(context.Background(), []string{"deploy"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimRight(string(data), "\n"), "deploy requested (no action taken)"))
}

func TestApp_Run_HelpPrintsTable(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "changelog.txt")
	h.loader.EXPECT().Load(".").Return(testProject(t, path), nil)

	err := h.app.Run(context.Background(), []string{"help"})
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, "TASK")
	assert.Contains(t, out, "deploy")
	assert.Contains(t, out, "placeholder, performs no action")

	// Help never runs tasks, so no changelog entry appears.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestApp_Run_UnknownTask(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "changelog.txt")
	h.loader.EXPECT().Load(".").Return(testProject(t, path), nil)

	err := h.app.Run(context.Background(), []string{"nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownTask)
}

func TestApp_List(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "changelog.txt")
	h.loader.EXPECT().Load(".").Return(testProject(t, path), nil)

	err := h.app.List(context.Background())
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, "TASK")
	assert.Contains(t, out, "help")
	assert.Contains(t, out, "deploy")
}
