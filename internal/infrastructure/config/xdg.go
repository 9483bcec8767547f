package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "workbench"
	sqliteFileName = "state.sqlite"
	yamlFileName   = "state.yaml"

	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for workbench:
// $XDG_CONFIG_HOME/workbench, $XDG_DATA_HOME/workbench and $XDG_STATE_HOME/workbench.
// With ENV=dev everything lives under ./.dev/workbench.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: devDir, DataHome: devDir, StateHome: devDir}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(xdgBase("XDG_CONFIG_HOME", homeDir, ".config"), appName),
		DataHome:   filepath.Join(xdgBase("XDG_DATA_HOME", homeDir, ".local", "share"), appName),
		StateHome:  filepath.Join(xdgBase("XDG_STATE_HOME", homeDir, ".local", "state"), appName),
	}, nil
}

func xdgBase(env, home string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// GetConfigDir returns the XDG config directory for workbench.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetDataDir returns the XDG data directory for workbench.
func GetDataDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

// GetLogDir returns the log directory under XDG_STATE_HOME.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, "logs"), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// ResolvedPath returns the state file for the configured backend, falling back to the
// XDG data directory when Path is empty.
func (s StorageConfig) ResolvedPath() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	if s.Backend == StorageBackendYAML {
		return filepath.Join(dataDir, yamlFileName), nil
	}
	return filepath.Join(dataDir, sqliteFileName), nil
}

// ResolvedLogDir returns LogDir or the XDG default.
func (l LoggingConfig) ResolvedLogDir() (string, error) {
	if l.LogDir != "" {
		return l.LogDir, nil
	}
	return GetLogDir()
}

// EnsureDirectories creates the XDG directories if they don't exist.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}

	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
