package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// ShouldOpenNewWindow decides whether folders and workspaces of a request open in a new
// window. Explicit flags always beat the setting, and ForceNewWindow beats
// ForceReuseWindow when both are set:
//
//	forceNew (even with forceReuse) -> true
//	forceReuse                      -> false
//	no flags, setting "on"          -> true
//	no flags, setting "off"         -> false
//	no flags, setting "default"     -> false
func ShouldOpenNewWindow(opts entity.OpenOptions, setting entity.OpenFoldersInNewWindow) bool {
	if opts.ForceNewWindow {
		// Both flags set is malformed; new window takes precedence.
		return true
	}
	if opts.ForceReuseWindow {
		return false
	}

	switch setting {
	case entity.OpenFoldersOn:
		return true
	case entity.OpenFoldersOff:
		return false
	default:
		return false
	}
}

// OpenWindowInput is an open request: targets plus window flags.
type OpenWindowInput struct {
	Targets []entity.OpenTarget
	Options entity.OpenOptions
}

// TargetFailure reports a target that could not be dispatched.
type TargetFailure struct {
	Target entity.OpenTarget
	Err    error
}

func (f TargetFailure) Error() string {
	return fmt.Sprintf("open %s %s: %v", f.Target.TargetKind(), f.Target.TargetLocation(), f.Err)
}

func (f TargetFailure) Unwrap() error {
	return f.Err
}

// OpenWindowOutput describes what was dispatched.
type OpenWindowOutput struct {
	OpenInNewWindow bool
	Navigations     []entity.NavigationRequest
	OpenedFiles     []entity.Location
	Failures        []TargetFailure
}

// OpenWindowUseCase routes open requests: folders and workspaces become navigation
// requests (new or current window), files are opened as editors in the current session.
type OpenWindowUseCase struct {
	navigator port.Navigator
	editors   port.EditorOpener
	settings  port.WindowSettingsProvider
	recents   port.RecentsRecorder
}

// NewOpenWindowUseCase creates a new window routing use case.
// recents may be nil, in which case navigated targets are not recorded.
func NewOpenWindowUseCase(
	navigator port.Navigator,
	editors port.EditorOpener,
	settings port.WindowSettingsProvider,
	recents port.RecentsRecorder,
) *OpenWindowUseCase {
	return &OpenWindowUseCase{
		navigator: navigator,
		editors:   editors,
		settings:  settings,
		recents:   recents,
	}
}

// Execute dispatches every target of the request. Folders and workspaces are
// navigated sequentially in request order. Dispatch is best-effort: a failing
// target never stops the others. The returned error joins all target failures and is
// nil when every target was dispatched.
func (uc *OpenWindowUseCase) Execute(ctx context.Context, input OpenWindowInput) (*OpenWindowOutput, error) {
	log := logging.FromContext(ctx)

	setting := entity.OpenFoldersDefault
	if uc.settings != nil {
		setting = uc.settings.OpenFoldersInNewWindow()
	}
	newWindow := ShouldOpenNewWindow(input.Options, setting)

	log.Debug().
		Int("targets", len(input.Targets)).
		Bool("force_new_window", input.Options.ForceNewWindow).
		Bool("force_reuse_window", input.Options.ForceReuseWindow).
		Str("setting", string(setting)).
		Bool("new_window", newWindow).
		Msg("routing open request")

	output := &OpenWindowOutput{OpenInNewWindow: newWindow}

	var (
		navTargets []entity.OpenTarget
		navReqs    []entity.NavigationRequest
		fileTarget []entity.OpenTarget
	)
	for _, target := range input.Targets {
		if target == nil {
			continue
		}
		switch t := target.(type) {
		case entity.FolderTarget:
			navTargets = append(navTargets, t)
			navReqs = append(navReqs, entity.NavigationRequest{
				Kind:      entity.OpenTargetFolder,
				Location:  t.FolderLocation,
				NewWindow: newWindow,
			})
		case entity.WorkspaceTarget:
			navTargets = append(navTargets, t)
			navReqs = append(navReqs, entity.NavigationRequest{
				Kind:      entity.OpenTargetWorkspace,
				Location:  t.WorkspaceLocation,
				NewWindow: newWindow,
			})
		case entity.FileTarget:
			if err := t.FileLocation.Validate(); err != nil {
				output.Failures = append(output.Failures, TargetFailure{Target: t, Err: err})
				continue
			}
			fileTarget = append(fileTarget, t)
		default:
			output.Failures = append(output.Failures, TargetFailure{Target: target, Err: entity.ErrUnknownEntryKind})
		}
	}

	// Navigations must reach the host in request order; only the file
	// opener runs beside them.
	var fileErr error
	var g errgroup.Group
	if len(fileTarget) > 0 {
		g.Go(func() error {
			fileErr = uc.openFiles(ctx, fileTarget)
			return nil
		})
	}

	navErrs := make([]error, len(navReqs))
	for i, req := range navReqs {
		navErrs[i] = uc.navigate(ctx, req)
	}
	_ = g.Wait()

	var navigated []entity.RecentEntry
	for i, req := range navReqs {
		if navErrs[i] != nil {
			output.Failures = append(output.Failures, TargetFailure{Target: navTargets[i], Err: navErrs[i]})
			continue
		}
		output.Navigations = append(output.Navigations, req)
		navigated = append(navigated, req.RecentEntry())
	}

	if fileErr != nil {
		for _, t := range fileTarget {
			output.Failures = append(output.Failures, TargetFailure{Target: t, Err: fileErr})
		}
	} else {
		for _, t := range fileTarget {
			output.OpenedFiles = append(output.OpenedFiles, t.TargetLocation())
		}
	}

	uc.record(ctx, navigated)

	if len(output.Failures) == 0 {
		return output, nil
	}

	errs := make([]error, 0, len(output.Failures))
	for _, f := range output.Failures {
		log.Warn().Err(f.Err).
			Str("kind", string(f.Target.TargetKind())).
			Str("location", string(f.Target.TargetLocation())).
			Msg("failed to open target")
		errs = append(errs, f)
	}
	return output, errors.Join(errs...)
}

// RecordActiveWorkspace records the folder or workspace the current session was
// started with, without navigating.
func (uc *OpenWindowUseCase) RecordActiveWorkspace(ctx context.Context, target entity.OpenTarget) error {
	var req entity.NavigationRequest
	switch t := target.(type) {
	case entity.FolderTarget:
		req = entity.NavigationRequest{Kind: entity.OpenTargetFolder, Location: t.FolderLocation}
	case entity.WorkspaceTarget:
		req = entity.NavigationRequest{Kind: entity.OpenTargetWorkspace, Location: t.WorkspaceLocation}
	default:
		return fmt.Errorf("record active workspace: %w", entity.ErrUnknownEntryKind)
	}

	if err := req.Location.Validate(); err != nil {
		return err
	}
	if uc.recents == nil {
		return nil
	}
	return uc.recents.Add(ctx, req.RecentEntry())
}

func (uc *OpenWindowUseCase) navigate(ctx context.Context, req entity.NavigationRequest) error {
	if err := req.Location.Validate(); err != nil {
		return err
	}
	if uc.navigator == nil {
		return errors.New("no navigator configured")
	}

	ctx = logging.WithLocation(ctx, string(req.Location))
	logging.FromContext(ctx).Debug().
		Str("kind", string(req.Kind)).
		Str("address", req.Address()).
		Bool("new_window", req.NewWindow).
		Msg("navigating")
	return uc.navigator.Navigate(ctx, req)
}

func (uc *OpenWindowUseCase) openFiles(ctx context.Context, targets []entity.OpenTarget) error {
	files := make([]entity.Location, 0, len(targets))
	for _, t := range targets {
		files = append(files, t.TargetLocation())
	}
	if uc.editors == nil {
		return errors.New("no editor opener configured")
	}
	return uc.editors.OpenEditors(ctx, files)
}

func (uc *OpenWindowUseCase) record(ctx context.Context, entries []entity.RecentEntry) {
	if uc.recents == nil || len(entries) == 0 {
		return
	}
	if err := uc.recents.Add(ctx, entries...); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Int("count", len(entries)).Msg("failed to record opened locations")
	}
}
