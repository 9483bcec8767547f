package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/domain/entity"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "window on", mutate: func(c *Config) { c.Window.OpenFoldersInNewWindow = entity.OpenFoldersOn }},
		{
			name:    "unknown window setting",
			mutate:  func(c *Config) { c.Window.OpenFoldersInNewWindow = "always" },
			wantErr: "window.open_folders_in_new_window",
		},
		{name: "negative max files", mutate: func(c *Config) { c.Recents.MaxFiles = -1 }, wantErr: "recents.max_files"},
		{name: "yaml backend", mutate: func(c *Config) { c.Storage.Backend = StorageBackendYAML }},
		{name: "unknown backend", mutate: func(c *Config) { c.Storage.Backend = "redis" }, wantErr: "storage.backend"},
		{name: "blank editor", mutate: func(c *Config) { c.Editor.Command = "" }, wantErr: "editor.command"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{
			name: "file log needs size",
			mutate: func(c *Config) {
				c.Logging.EnableFileLog = true
				c.Logging.MaxSizeMB = 0
			},
			wantErr: "logging.max_size_mb",
		},
		{name: "bad accent", mutate: func(c *Config) { c.Appearance.Palette.Accent = "blue" }, wantErr: "appearance.palette.accent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
