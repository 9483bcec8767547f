package config

import (
	"slices"

	"github.com/bnema/workbench/internal/domain/entity"
)

// Config represents the complete configuration for workbench.
type Config struct {
	// Window controls how open requests pick a window.
	Window WindowConfig `mapstructure:"window" yaml:"window" toml:"window" json:"window"`
	// Recents controls the recently opened history.
	Recents RecentsConfig `mapstructure:"recents" yaml:"recents" toml:"recents" json:"recents"`
	// Storage selects where state (including the recent history) is persisted.
	Storage StorageConfig `mapstructure:"storage" yaml:"storage" toml:"storage" json:"storage"`
	// Editor configures the command used to open files.
	Editor  EditorConfig  `mapstructure:"editor" yaml:"editor" toml:"editor" json:"editor"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Appearance holds the CLI color palette.
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
}

// WindowConfig holds window routing settings.
type WindowConfig struct {
	// OpenFoldersInNewWindow decides where folders and workspaces open when no flag is given:
	// "on" opens a new window, "off" and "default" reuse the current one.
	OpenFoldersInNewWindow entity.OpenFoldersInNewWindow `mapstructure:"open_folders_in_new_window" yaml:"open_folders_in_new_window" toml:"open_folders_in_new_window" json:"open_folders_in_new_window" jsonschema:"enum=default,enum=on,enum=off"`
}

// RecentsConfig caps the recent lists. Zero disables the cap.
type RecentsConfig struct {
	MaxFiles      int `mapstructure:"max_files" yaml:"max_files" toml:"max_files" json:"max_files" jsonschema:"minimum=0"`
	MaxWorkspaces int `mapstructure:"max_workspaces" yaml:"max_workspaces" toml:"max_workspaces" json:"max_workspaces" jsonschema:"minimum=0"`
	// RecordOnOpen records folders and workspaces opened through `workbench open`.
	RecordOnOpen bool `mapstructure:"record_on_open" yaml:"record_on_open" toml:"record_on_open" json:"record_on_open"`
}

// StorageBackend selects the state storage implementation.
type StorageBackend string

const (
	StorageBackendSQLite StorageBackend = "sqlite"
	StorageBackendYAML   StorageBackend = "yaml"
)

// StorageConfig configures state persistence.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" yaml:"backend" toml:"backend" json:"backend" jsonschema:"enum=sqlite,enum=yaml"`
	// Path overrides the state file location. Empty uses the XDG data directory.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path,omitempty"`
}

// EditorConfig configures how files are opened.
type EditorConfig struct {
	// Command is the executable; file paths are appended after Args.
	Command string   `mapstructure:"command" yaml:"command" toml:"command" json:"command"`
	Args    []string `mapstructure:"args" yaml:"args" toml:"args" json:"args,omitempty"`

	// NewWindowArgs precede a folder or workspace path shown in a new window.
	NewWindowArgs []string `mapstructure:"new_window_args" yaml:"new_window_args" toml:"new_window_args" json:"new_window_args,omitempty"`
	// ReuseWindowArgs precede a folder or workspace path shown in the current window.
	ReuseWindowArgs []string `mapstructure:"reuse_window_args" yaml:"reuse_window_args" toml:"reuse_window_args" json:"reuse_window_args,omitempty"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir,omitempty"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// AppearanceConfig holds CLI styling.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" yaml:"palette" toml:"palette" json:"palette"`
}

// ColorPalette holds the colors used by the terminal UI.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}

// clone returns a deep copy.
func (c *Config) clone() *Config {
	out := *c
	out.Editor.Args = slices.Clone(c.Editor.Args)
	out.Editor.NewWindowArgs = slices.Clone(c.Editor.NewWindowArgs)
	out.Editor.ReuseWindowArgs = slices.Clone(c.Editor.ReuseWindowArgs)
	return &out
}
