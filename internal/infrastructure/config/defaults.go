package config

import "github.com/bnema/workbench/internal/domain/entity"

const (
	defaultMaxRecentFiles      = 50
	defaultMaxRecentWorkspaces = 50

	defaultEditorCommand = "xdg-open"

	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			OpenFoldersInNewWindow: entity.OpenFoldersDefault,
		},
		Recents: RecentsConfig{
			MaxFiles:      defaultMaxRecentFiles,
			MaxWorkspaces: defaultMaxRecentWorkspaces,
			RecordOnOpen:  true,
		},
		Storage: StorageConfig{
			Backend: StorageBackendSQLite,
		},
		Editor: EditorConfig{
			Command:         defaultEditorCommand,
			Args:            []string{},
			NewWindowArgs:   []string{},
			ReuseWindowArgs: []string{},
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultPalette(),
		},
	}
}

// DefaultPalette returns the dark palette used when none is configured.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#60a5fa",
		Border:         "#333333",
	}
}
