package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	logFileName       = "workbench.log"
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	logDirPerm        = 0o750
	logFilePerm       = 0o600
)

// LogRotator is an io.Writer that rolls workbench.log over once it grows past maxSize.
type LogRotator struct {
	mu          sync.Mutex
	baseDir     string
	maxSize     int64
	maxBackups  int
	currentFile *os.File
	currentSize int64
}

// NewLogRotator opens (or creates) the log file in baseDir.
func NewLogRotator(baseDir string, maxSizeMB, maxBackups int) (*LogRotator, error) {
	if maxSizeMB <= 0 {
		maxSizeMB = defaultMaxSizeMB
	}
	if maxBackups <= 0 {
		maxBackups = defaultMaxBackups
	}
	if err := os.MkdirAll(baseDir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	r := &LogRotator{
		baseDir:    baseDir,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
	}
	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) currentPath() string {
	return filepath.Join(r.baseDir, logFileName)
}

func (r *LogRotator) openCurrentFile() error {
	if info, err := os.Stat(r.currentPath()); err == nil {
		r.currentSize = info.Size()
	} else {
		r.currentSize = 0
	}

	file, err := os.OpenFile(r.currentPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.currentFile = file
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	if r.currentSize+int64(len(p)) > r.maxSize && r.currentSize > 0 {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	r.currentFile = nil

	backup := fmt.Sprintf("%s.%s", r.currentPath(), time.Now().Format("20060102-150405.000"))
	if err := os.Rename(r.currentPath(), backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	r.pruneBackups()
	return r.openCurrentFile()
}

// pruneBackups keeps the newest maxBackups rotated files.
func (r *LogRotator) pruneBackups() {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return
	}

	var backups []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), logFileName+".") {
			continue
		}
		backups = append(backups, entry.Name())
	}
	if len(backups) <= r.maxBackups {
		return
	}

	// Timestamp suffixes sort chronologically.
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-r.maxBackups] {
		if err := os.Remove(filepath.Join(r.baseDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
		}
	}
}

// Close closes the current log file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
