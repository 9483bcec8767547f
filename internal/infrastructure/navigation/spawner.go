package navigation

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/workbench/internal/domain/entity"
	domainurl "github.com/bnema/workbench/internal/domain/url"
	"github.com/bnema/workbench/internal/infrastructure/process"
	"github.com/bnema/workbench/internal/logging"
)

// SpawnerConfig selects the command used to show folders and workspaces.
type SpawnerConfig struct {
	Command string
	// NewWindowArgs precede the location when a new window is requested.
	NewWindowArgs []string
	// ReuseWindowArgs precede the location when the current window is replaced.
	ReuseWindowArgs []string
}

// Spawner is a Handler that starts the configured command detached, e.g.
// `code --new-window /proj` or `code --reuse-window /proj`.
type Spawner struct {
	cfg     SpawnerConfig
	starter process.Starter
}

var _ Handler = (*Spawner)(nil)

// NewSpawner creates a spawner. A nil starter uses process.Detached.
func NewSpawner(cfg SpawnerConfig, starter process.Starter) *Spawner {
	if starter == nil {
		starter = process.Detached{}
	}
	cfg.NewWindowArgs = slices.Clone(cfg.NewWindowArgs)
	cfg.ReuseWindowArgs = slices.Clone(cfg.ReuseWindowArgs)
	return &Spawner{cfg: cfg, starter: starter}
}

// Handle starts the command for req.
func (s *Spawner) Handle(ctx context.Context, req entity.NavigationRequest) error {
	var argv []string
	if req.NewWindow {
		argv = slices.Clone(s.cfg.NewWindowArgs)
	} else {
		argv = slices.Clone(s.cfg.ReuseWindowArgs)
	}
	argv = append(argv, domainurl.ToPath(string(req.Location.Normalize())))

	pid, err := s.starter.Start(ctx, s.cfg.Command, argv...)
	if err != nil {
		return fmt.Errorf("show %s %s: %w", req.Kind, req.Location, err)
	}

	logging.FromContext(ctx).Info().
		Str("address", req.Address()).
		Bool("new_window", req.NewWindow).
		Int("pid", pid).
		Msg("navigated")
	return nil
}
