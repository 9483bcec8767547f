package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/config"
	processmocks "github.com/bnema/workbench/internal/infrastructure/process/mocks"
	"github.com/bnema/workbench/internal/infrastructure/persistence/yamlstore"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("WORKBENCH_LOG_LEVEL", "error")
	t.Setenv("WORKBENCH_EDITOR_COMMAND", "code")
	return root
}

func TestNewApp_OpenRecordsAndPersists(t *testing.T) {
	for _, backend := range []config.StorageBackend{config.StorageBackendSQLite, config.StorageBackendYAML} {
		t.Run(string(backend), func(t *testing.T) {
			isolateEnv(t)
			t.Setenv("WORKBENCH_STORAGE_BACKEND", string(backend))

			starter := processmocks.NewMockStarter(t)
			starter.EXPECT().Start(mock.Anything, "code", []string{"/srv/proj"}).Return(42, nil).Once()

			app, err := NewApp(Options{Starter: starter})
			require.NoError(t, err)
			assert.Equal(t, backend, app.Config.Storage.Backend)
			if backend == config.StorageBackendYAML {
				assert.IsType(t, &yamlstore.Store{}, app.Storage)
			}

			out, err := app.OpenWindow.Execute(app.Ctx(), usecase.OpenWindowInput{
				Targets: []entity.OpenTarget{entity.FolderTarget{FolderLocation: "file:///srv/proj"}},
			})
			require.NoError(t, err)
			assert.False(t, out.OpenInNewWindow)
			require.NoError(t, app.Close())

			// A second process sees the recorded folder.
			reopened, err := NewApp(Options{Starter: starter})
			require.NoError(t, err)
			t.Cleanup(func() { _ = reopened.Close() })

			h, err := reopened.Recents.GetRecentlyOpened(reopened.Ctx())
			require.NoError(t, err)
			require.Len(t, h.Workspaces, 1)
			assert.Equal(t, entity.Location("file:///srv/proj"), h.Workspaces[0].Location())
		})
	}
}

func TestNewApp_RecordOnOpenOff(t *testing.T) {
	isolateEnv(t)
	t.Setenv("WORKBENCH_RECENTS_RECORD_ON_OPEN", "false")

	starter := processmocks.NewMockStarter(t)
	starter.EXPECT().Start(mock.Anything, "code", mock.Anything).Return(1, nil).Once()

	app, err := NewApp(Options{Starter: starter})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	_, err = app.OpenWindow.Execute(app.Ctx(), usecase.OpenWindowInput{
		Targets: []entity.OpenTarget{entity.FolderTarget{FolderLocation: "/srv/proj"}},
		Options: entity.OpenOptions{ForceNewWindow: true},
	})
	require.NoError(t, err)

	h, err := app.Recents.GetRecentlyOpened(app.Ctx())
	require.NoError(t, err)
	assert.Zero(t, h.Len())
	assert.Nil(t, app.Recorder)
}

func TestNewApp_LogsCommittedRecentChanges(t *testing.T) {
	root := isolateEnv(t)
	logDir := filepath.Join(root, "logs")
	t.Setenv("WORKBENCH_LOG_LEVEL", "debug")
	t.Setenv("WORKBENCH_LOGGING_ENABLE_FILE_LOG", "true")
	t.Setenv("WORKBENCH_LOGGING_LOG_DIR", logDir)

	app, err := NewApp(Options{})
	require.NoError(t, err)
	require.NotNil(t, app.Recorder)

	require.NoError(t, app.Recorder.Add(app.Ctx(), &entity.RecentFolder{FolderLocation: "file:///srv/proj"}))
	require.NoError(t, app.Close())

	data, err := os.ReadFile(filepath.Join(logDir, "workbench.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"recent history committed"`)
	assert.Contains(t, string(data), `"component":"recents"`)
	assert.Contains(t, string(data), `"workspaces":1`)
}

func TestNewApp_SettingFromConfigFile(t *testing.T) {
	isolateEnv(t)

	app, err := NewApp(Options{})
	require.NoError(t, err)
	require.NoError(t, app.ConfigManager.Set("window.open_folders_in_new_window", "on"))
	require.NoError(t, app.Close())

	app, err = NewApp(Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Equal(t, entity.OpenFoldersOn, app.ConfigManager.OpenFoldersInNewWindow())
	assert.True(t, usecase.ShouldOpenNewWindow(entity.OpenOptions{}, app.ConfigManager.OpenFoldersInNewWindow()))
}
