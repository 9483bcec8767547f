package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

var _ port.WindowSettingsProvider = (*Manager)(nil)

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// WORKBENCH_WINDOW_OPEN_FOLDERS_IN_NEW_WINDOW, WORKBENCH_STORAGE_BACKEND, ...
	v.SetEnvPrefix("WORKBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "WORKBENCH_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind WORKBENCH_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "WORKBENCH_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind WORKBENCH_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig(m.viper)
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig(v *viper.Viper) (*Config, error) {
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	window := strings.ToLower(strings.TrimSpace(string(config.Window.OpenFoldersInNewWindow)))
	if window == "" {
		window = string(entity.OpenFoldersDefault)
	}
	config.Window.OpenFoldersInNewWindow = entity.OpenFoldersInNewWindow(window)

	backend := strings.ToLower(strings.TrimSpace(string(config.Storage.Backend)))
	if backend == "" {
		backend = string(StorageBackendSQLite)
	}
	config.Storage.Backend = StorageBackend(backend)
	config.Storage.Path = strings.TrimSpace(config.Storage.Path)

	config.Editor.Command = strings.TrimSpace(config.Editor.Command)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(config.Logging.Format) {
	case "", "text":
		config.Logging.Format = defaultLogFormat
	default:
		config.Logging.Format = strings.ToLower(config.Logging.Format)
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.clone()
}

// OpenFoldersInNewWindow returns the live window.open_folders_in_new_window value.
func (m *Manager) OpenFoldersInNewWindow() entity.OpenFoldersInNewWindow {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return entity.OpenFoldersDefault
	}
	return m.config.Window.OpenFoldersInNewWindow
}

// Keys returns every known configuration key in dotted form, sorted.
func (m *Manager) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := m.viper.AllKeys()
	slices.Sort(keys)
	return keys
}

// Value returns the effective value of a dotted key, or nil if unknown.
func (m *Manager) Value(key string) any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.viper.Get(strings.ToLower(strings.TrimSpace(key)))
}

// Set updates one key, validates the result and writes the config file.
// The in-memory configuration is untouched when validation or the write fails.
func (m *Manager) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key = strings.ToLower(strings.TrimSpace(key))
	if !slices.Contains(m.viper.AllKeys(), key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	// Work on a scratch viper so a rejected value never sticks as an override.
	scratch := viper.New()
	if err := scratch.MergeConfigMap(m.viper.AllSettings()); err != nil {
		return fmt.Errorf("failed to copy settings: %w", err)
	}
	scratch.Set(key, value)

	config, err := m.unmarshalConfig(scratch)
	if err != nil {
		return err
	}
	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return m.saveLocked(config)
}

func (m *Manager) saveLocked(cfg *Config) error {
	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return err
		}
	}

	if err := WriteConfigOrdered(cfg, configFile); err != nil {
		return err
	}

	m.config = cfg
	if m.watching {
		// The watcher would otherwise re-read what we just wrote.
		m.skipNextReload = true
		return nil
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to re-read config: %w", err)
	}
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the default configuration and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	_, err = GenerateSchemaFile(filepath.Dir(configFile))
	return err
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setWindowDefaults(defaults)
	m.setRecentsDefaults(defaults)
	m.setStorageDefaults(defaults)
	m.setEditorDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
}

func (m *Manager) setWindowDefaults(defaults *Config) {
	m.viper.SetDefault("window.open_folders_in_new_window", string(defaults.Window.OpenFoldersInNewWindow))
}

func (m *Manager) setRecentsDefaults(defaults *Config) {
	m.viper.SetDefault("recents.max_files", defaults.Recents.MaxFiles)
	m.viper.SetDefault("recents.max_workspaces", defaults.Recents.MaxWorkspaces)
	m.viper.SetDefault("recents.record_on_open", defaults.Recents.RecordOnOpen)
}

func (m *Manager) setStorageDefaults(defaults *Config) {
	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.path", defaults.Storage.Path)
}

func (m *Manager) setEditorDefaults(defaults *Config) {
	m.viper.SetDefault("editor.command", defaults.Editor.Command)
	m.viper.SetDefault("editor.args", defaults.Editor.Args)
	m.viper.SetDefault("editor.new_window_args", defaults.Editor.NewWindowArgs)
	m.viper.SetDefault("editor.reuse_window_args", defaults.Editor.ReuseWindowArgs)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	p := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.surface_variant", p.SurfaceVariant)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)
}
