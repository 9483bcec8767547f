package port

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
)

// Navigator delivers navigation requests to the host: open a folder or workspace in a
// new session/window, or replace the current one.
type Navigator interface {
	Navigate(ctx context.Context, req entity.NavigationRequest) error
}

// EditorOpener opens files as editors in the current session.
// Implemented by the host's editor subsystem.
type EditorOpener interface {
	OpenEditors(ctx context.Context, files []entity.Location) error
}

// WindowSettingsProvider exposes the live window.open_folders_in_new_window setting.
type WindowSettingsProvider interface {
	OpenFoldersInNewWindow() entity.OpenFoldersInNewWindow
}

// RecentsRecorder records opened folders and workspaces into the recent history.
type RecentsRecorder interface {
	Add(ctx context.Context, entries ...entity.RecentEntry) error
}
