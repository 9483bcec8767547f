// Package process starts external programs detached from the calling process.
package process

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/bnema/workbench/internal/logging"
)

// Starter launches a program and returns its pid without waiting for it.
type Starter interface {
	Start(ctx context.Context, name string, args ...string) (int, error)
}

// Detached starts programs in their own session with no stdio, then releases them so
// they keep running after workbench exits.
type Detached struct{}

var _ Starter = Detached{}

// Start resolves name on PATH and starts it detached.
func (Detached) Start(ctx context.Context, name string, args ...string) (int, error) {
	log := logging.FromContext(ctx)

	path, err := exec.LookPath(name)
	if err != nil {
		return 0, fmt.Errorf("find %s: %w", name, err)
	}

	// Not CommandContext: the child must outlive ctx.
	cmd := exec.Command(path, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = detachAttr()

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", name, err)
	}
	pid := cmd.Process.Pid

	if err := cmd.Process.Release(); err != nil {
		log.Warn().Err(err).Msg("failed to release spawned process (non-fatal)")
	}

	log.Debug().Str("command", path).Strs("args", args).Int("pid", pid).Msg("started detached process")
	return pid, nil
}
