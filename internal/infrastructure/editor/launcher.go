// Package editor opens files with the configured external editor.
package editor

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	domainurl "github.com/bnema/workbench/internal/domain/url"
	"github.com/bnema/workbench/internal/infrastructure/process"
	"github.com/bnema/workbench/internal/logging"
)

// Launcher implements port.EditorOpener by running `<command> <args...> <files...>`.
// file:// locations are passed as filesystem paths; other schemes are passed as-is.
type Launcher struct {
	command string
	args    []string
	starter process.Starter
}

var _ port.EditorOpener = (*Launcher)(nil)

// NewLauncher creates a launcher for command. A nil starter uses process.Detached.
func NewLauncher(command string, args []string, starter process.Starter) *Launcher {
	if starter == nil {
		starter = process.Detached{}
	}
	return &Launcher{
		command: command,
		args:    slices.Clone(args),
		starter: starter,
	}
}

// OpenEditors opens every file in one editor invocation.
func (l *Launcher) OpenEditors(ctx context.Context, files []entity.Location) error {
	if len(files) == 0 {
		return nil
	}

	argv := slices.Clone(l.args)
	for _, f := range files {
		argv = append(argv, domainurl.ToPath(string(f.Normalize())))
	}

	pid, err := l.starter.Start(ctx, l.command, argv...)
	if err != nil {
		return fmt.Errorf("open %d file(s) with %s: %w", len(files), l.command, err)
	}

	logging.FromContext(ctx).Info().
		Str("editor", l.command).
		Int("files", len(files)).
		Int("pid", pid).
		Msg("opened files")
	return nil
}
