package config

import (
	"fmt"
	"strings"

	domainvalidation "github.com/bnema/workbench/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateRecents(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateEditor(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateWindow(config *Config) []string {
	if !config.Window.OpenFoldersInNewWindow.IsValid() {
		return []string{fmt.Sprintf(
			"window.open_folders_in_new_window must be one of: default, on, off (got: %s)",
			config.Window.OpenFoldersInNewWindow,
		)}
	}
	return nil
}

func validateRecents(config *Config) []string {
	var validationErrors []string
	if config.Recents.MaxFiles < 0 {
		validationErrors = append(validationErrors, "recents.max_files must be non-negative")
	}
	if config.Recents.MaxWorkspaces < 0 {
		validationErrors = append(validationErrors, "recents.max_workspaces must be non-negative")
	}
	return validationErrors
}

func validateStorage(config *Config) []string {
	switch config.Storage.Backend {
	case StorageBackendSQLite, StorageBackendYAML:
		return nil
	default:
		return []string{fmt.Sprintf("storage.backend must be one of: sqlite, yaml (got: %s)", config.Storage.Backend)}
	}
}

func validateEditor(config *Config) []string {
	return domainvalidation.ValidateCommand("editor.command", config.Editor.Command)
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.EnableFileLog && config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1 when file logging is enabled")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	return domainvalidation.ValidatePaletteHex("appearance.palette", map[string]string{
		"background":      p.Background,
		"surface":         p.Surface,
		"surface_variant": p.SurfaceVariant,
		"text":            p.Text,
		"muted":           p.Muted,
		"accent":          p.Accent,
		"border":          p.Border,
	})
}
