package config

import (
	"context"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/domain/entity"
)

func TestManager_WatchReloadsExternalEdits(t *testing.T) {
	configFile := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	require.NoError(t, mgr.Watch(context.Background()))
	require.NoError(t, mgr.Watch(context.Background()), "second Watch is a no-op")

	var notified atomic.Int32
	mgr.OnConfigChange(func(cfg *Config) {
		if cfg.Window.OpenFoldersInNewWindow == entity.OpenFoldersOn {
			notified.Add(1)
		}
	})

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	edited := strings.Replace(string(data), "open_folders_in_new_window = 'default'", "open_folders_in_new_window = 'on'", 1)
	require.NotEqual(t, string(data), edited)
	require.NoError(t, os.WriteFile(configFile, []byte(edited), filePerm))

	require.Eventually(t, func() bool {
		return mgr.OpenFoldersInNewWindow() == entity.OpenFoldersOn
	}, 5*time.Second, 20*time.Millisecond)
	assert.Eventually(t, func() bool { return notified.Load() > 0 }, 5*time.Second, 20*time.Millisecond)
}

func TestManager_WatchRequiresLoad(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)

	require.Error(t, mgr.Watch(context.Background()))
}
