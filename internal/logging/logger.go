package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls the optional rotating log file.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	MaxSizeMB     int
	MaxBackups    int
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return newWithWriter(cfg, os.Stderr)
}

func newWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	var output = w
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
			NoColor:    w != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile creates a logger that also writes to a rotating file in fileCfg.LogDir.
// The returned cleanup closes the file and must be called on shutdown.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}
	if !fileCfg.Enabled || fileCfg.LogDir == "" {
		if !fileCfg.WriteToStderr {
			return zerolog.Nop(), noop, nil
		}
		return New(cfg), noop, nil
	}

	rotator, err := NewLogRotator(fileCfg.LogDir, fileCfg.MaxSizeMB, fileCfg.MaxBackups)
	if err != nil {
		return New(cfg), noop, err
	}

	// File output is always JSON so it stays greppable.
	fileLogger := newWithWriter(Config{Level: cfg.Level, Format: "json", TimeFormat: cfg.TimeFormat}, rotator)
	if !fileCfg.WriteToStderr {
		return fileLogger, func() { _ = rotator.Close() }, nil
	}

	var stderr io.Writer = os.Stderr
	if cfg.Format == "console" {
		stderr = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
	}
	logger := zerolog.New(zerolog.MultiLevelWriter(stderr, rotator)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	return logger, func() { _ = rotator.Close() }, nil
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues builds a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}
