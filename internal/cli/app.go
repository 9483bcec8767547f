// Package cli wires the workbench services for the command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/domain/build"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/domain/repository"
	"github.com/bnema/workbench/internal/infrastructure/config"
	"github.com/bnema/workbench/internal/infrastructure/editor"
	"github.com/bnema/workbench/internal/infrastructure/navigation"
	"github.com/bnema/workbench/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/workbench/internal/infrastructure/persistence/yamlstore"
	"github.com/bnema/workbench/internal/infrastructure/process"
	"github.com/bnema/workbench/internal/logging"
)

// navigationBuffer is the number of navigation requests queued before callers block.
const navigationBuffer = 16

// Options tune how the App is built.
type Options struct {
	// WatchConfig reloads the config file while the App runs.
	WatchConfig bool
	// Starter runs external commands. Nil uses process.Detached.
	Starter process.Starter
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	Storage    repository.StorageRepository
	Recents    *usecase.RecentlyOpenedUseCase
	OpenWindow *usecase.OpenWindowUseCase
	// Recorder receives opened and active folders and workspaces. It is nil
	// when recents.record_on_open is off.
	Recorder port.RecentsRecorder

	navigator  *navigation.Bus
	lazyDB     *sqlite.LazyDB
	ctx        context.Context
	cancel     context.CancelFunc
	logCleanup func()
}

// NewApp creates the CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, logCleanup, logErr := newLogger(cfg.Logging)
	ctx, cancel := context.WithCancel(logging.WithContext(context.Background(), logger))
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}

	if opts.WatchConfig {
		if err := mgr.Watch(ctx); err != nil {
			logger.Warn().Err(err).Msg("config watch unavailable")
		}
		mgr.OnConfigChange(func(c *config.Config) {
			logger.Info().
				Str("open_folders_in_new_window", string(c.Window.OpenFoldersInNewWindow)).
				Msg("configuration reloaded")
		})
	}

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(cfg),
		ctx:           ctx,
		cancel:        cancel,
		logCleanup:    logCleanup,
	}

	storage, err := app.openStorage(cfg.Storage)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.Storage = storage

	app.Recents = usecase.NewRecentlyOpenedUseCase(storage, usecase.RecentsLimits{
		MaxFiles:      cfg.Recents.MaxFiles,
		MaxWorkspaces: cfg.Recents.MaxWorkspaces,
	})
	recentsLog := logging.FromContext(logging.WithComponent(ctx, "recents"))
	app.Recents.OnDidChange(func(h *entity.RecentHistory) {
		recentsLog.Debug().
			Int("files", len(h.Files)).
			Int("workspaces", len(h.Workspaces)).
			Msg("recent history committed")
	})

	app.navigator = navigation.NewBus(navigation.NewSpawner(navigation.SpawnerConfig{
		Command:         cfg.Editor.Command,
		NewWindowArgs:   cfg.Editor.NewWindowArgs,
		ReuseWindowArgs: cfg.Editor.ReuseWindowArgs,
	}, opts.Starter), navigationBuffer)
	app.navigator.Start(logging.WithComponent(ctx, "navigation"))

	if cfg.Recents.RecordOnOpen {
		app.Recorder = app.Recents
	}
	app.OpenWindow = usecase.NewOpenWindowUseCase(
		app.navigator,
		editor.NewLauncher(cfg.Editor.Command, cfg.Editor.Args, opts.Starter),
		mgr,
		app.Recorder,
	)

	return app, nil
}

func newLogger(cfg config.LoggingConfig) (logger zerolog.Logger, cleanup func(), err error) {
	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Level),
		Format:     cfg.Format,
		TimeFormat: "15:04:05",
	}

	fileCfg := logging.FileConfig{
		Enabled:       cfg.EnableFileLog,
		MaxSizeMB:     cfg.MaxSizeMB,
		MaxBackups:    cfg.MaxBackups,
		WriteToStderr: true,
	}
	if cfg.EnableFileLog {
		if fileCfg.LogDir, err = cfg.ResolvedLogDir(); err != nil {
			return logging.New(logCfg), func() {}, err
		}
	}
	return logging.NewWithFile(logCfg, fileCfg)
}

func (a *App) openStorage(cfg config.StorageConfig) (repository.StorageRepository, error) {
	path, err := cfg.ResolvedPath()
	if err != nil {
		return nil, fmt.Errorf("resolve storage path: %w", err)
	}

	log := logging.FromContext(a.ctx)
	log.Debug().Str("backend", string(cfg.Backend)).Str("path", path).Msg("opening state storage")

	switch cfg.Backend {
	case config.StorageBackendYAML:
		return yamlstore.New(path), nil
	case config.StorageBackendSQLite, "":
		a.lazyDB = sqlite.NewLazyDB(path)
		return sqlite.NewStorageRepository(a.lazyDB), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Close releases all resources.
func (a *App) Close() error {
	if a.navigator != nil {
		a.navigator.Close()
	}
	if a.cancel != nil {
		a.cancel()
	}

	var err error
	if a.lazyDB != nil {
		err = a.lazyDB.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// StoragePath returns the resolved state file path.
func (a *App) StoragePath() string {
	path, err := a.Config.Storage.ResolvedPath()
	if err != nil {
		return ""
	}
	return path
}

// ErrNotInitialized is returned by commands run before the App was built.
var ErrNotInitialized = errors.New("app not initialized")
