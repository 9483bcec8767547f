package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/domain/entity"
)

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	configFile := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(filepath.Dir(configFile), schemaFileName))
	assert.Equal(t, configFile, mgr.GetConfigFile())
	assert.Equal(t, DefaultConfig(), mgr.Get())
	assert.Equal(t, entity.OpenFoldersDefault, mgr.OpenFoldersInNewWindow())
}

func TestManager_LoadReadsFile(t *testing.T) {
	configFile := isolateXDG(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(configFile), dirPerm))
	require.NoError(t, os.WriteFile(configFile, []byte(`
[window]
open_folders_in_new_window = "on"

[recents]
max_files = 5

[editor]
command = "code"
args = ["--reuse-window"]
`), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, entity.OpenFoldersOn, mgr.OpenFoldersInNewWindow())
	assert.Equal(t, 5, cfg.Recents.MaxFiles)
	assert.Equal(t, 50, cfg.Recents.MaxWorkspaces, "unset keys fall back to defaults")
	assert.Equal(t, "code", cfg.Editor.Command)
	assert.Equal(t, []string{"--reuse-window"}, cfg.Editor.Args)
}

func TestManager_EnvOverridesFile(t *testing.T) {
	isolateXDG(t)
	t.Setenv("WORKBENCH_WINDOW_OPEN_FOLDERS_IN_NEW_WINDOW", "off")
	t.Setenv("WORKBENCH_LOG_LEVEL", "debug")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, entity.OpenFoldersOff, mgr.OpenFoldersInNewWindow())
	assert.Equal(t, "debug", mgr.Get().Logging.Level)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	configFile := isolateXDG(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(configFile), dirPerm))
	require.NoError(t, os.WriteFile(configFile, []byte(`
[window]
open_folders_in_new_window = "sometimes"
`), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window.open_folders_in_new_window")
}

func TestManager_SetPersistsAndValidates(t *testing.T) {
	configFile := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	require.NoError(t, mgr.Set("window.open_folders_in_new_window", "on"))
	assert.Equal(t, entity.OpenFoldersOn, mgr.OpenFoldersInNewWindow())

	require.Error(t, mgr.Set("window.open_folders_in_new_window", "maybe"))
	assert.Equal(t, entity.OpenFoldersOn, mgr.OpenFoldersInNewWindow(), "rejected value must not apply")

	require.Error(t, mgr.Set("no.such.key", "1"))

	// A fresh manager reads the persisted value.
	reloaded, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, entity.OpenFoldersOn, reloaded.OpenFoldersInNewWindow())

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "open_folders_in_new_window = 'on'")
}

func TestManager_GetReturnsCopy(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Editor.Args = append(cfg.Editor.Args, "--mutated")
	cfg.Recents.MaxFiles = 1

	assert.Empty(t, mgr.Get().Editor.Args)
	assert.Equal(t, 50, mgr.Get().Recents.MaxFiles)
}

func TestManager_Keys(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	keys := mgr.Keys()
	assert.Contains(t, keys, "window.open_folders_in_new_window")
	assert.Contains(t, keys, "storage.backend")
	assert.Contains(t, keys, "editor.new_window_args")
	assert.IsIncreasing(t, keys)

	assert.Equal(t, "sqlite", mgr.Value("storage.backend"))
	assert.Equal(t, "default", mgr.Value(" Window.Open_Folders_In_New_Window "))
	assert.Nil(t, mgr.Value("no.such.key"))
}

func TestManager_UnloadedDefaults(t *testing.T) {
	mgr := &Manager{}

	assert.Equal(t, entity.OpenFoldersDefault, mgr.OpenFoldersInNewWindow())
	assert.Equal(t, DefaultConfig(), mgr.Get())
}
