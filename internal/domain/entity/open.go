package entity

import (
	"net/url"
)

// OpenTargetKind distinguishes folder, workspace and file targets.
type OpenTargetKind string

const (
	OpenTargetFolder    OpenTargetKind = "folder"
	OpenTargetWorkspace OpenTargetKind = "workspace"
	OpenTargetFile      OpenTargetKind = "file"
)

// OpenTarget is one location of an open request.
// The set of implementations is closed: FolderTarget, WorkspaceTarget and FileTarget.
type OpenTarget interface {
	TargetKind() OpenTargetKind
	TargetLocation() Location
	isOpenTarget()
}

// FolderTarget requests a folder to be opened.
type FolderTarget struct {
	FolderLocation Location
}

// WorkspaceTarget requests a multi-root workspace to be opened.
type WorkspaceTarget struct {
	WorkspaceLocation Location
}

// FileTarget requests a file to be opened as an editor.
type FileTarget struct {
	FileLocation Location
}

func (FolderTarget) TargetKind() OpenTargetKind    { return OpenTargetFolder }
func (WorkspaceTarget) TargetKind() OpenTargetKind { return OpenTargetWorkspace }
func (FileTarget) TargetKind() OpenTargetKind      { return OpenTargetFile }

func (t FolderTarget) TargetLocation() Location    { return t.FolderLocation }
func (t WorkspaceTarget) TargetLocation() Location { return t.WorkspaceLocation }
func (t FileTarget) TargetLocation() Location      { return t.FileLocation }

func (FolderTarget) isOpenTarget()    {}
func (WorkspaceTarget) isOpenTarget() {}
func (FileTarget) isOpenTarget()      {}

// OpenOptions carries the explicit window flags of an open request.
// If both flags are set, ForceNewWindow wins.
type OpenOptions struct {
	ForceNewWindow   bool `json:"force_new_window"`
	ForceReuseWindow bool `json:"force_reuse_window"`
}

// OpenFoldersInNewWindow is the window.open_folders_in_new_window setting.
type OpenFoldersInNewWindow string

const (
	OpenFoldersDefault OpenFoldersInNewWindow = "default"
	OpenFoldersOn      OpenFoldersInNewWindow = "on"
	OpenFoldersOff     OpenFoldersInNewWindow = "off"
)

// IsValid reports whether the value is one of the known settings.
func (o OpenFoldersInNewWindow) IsValid() bool {
	switch o {
	case OpenFoldersDefault, OpenFoldersOn, OpenFoldersOff:
		return true
	}
	return false
}

// NavigationRequest asks the host to show a folder or workspace, either in a new
// session/window or by replacing the current one.
type NavigationRequest struct {
	Kind      OpenTargetKind
	Location  Location
	NewWindow bool
}

// Address is the session address for the request: ?folder=<uri> or ?workspace=<uri>.
func (r NavigationRequest) Address() string {
	q := url.Values{}
	q.Set(string(r.Kind), string(r.Location.Normalize()))
	return "?" + q.Encode()
}

// RecentEntry returns the recent entry recorded for a navigated target.
func (r NavigationRequest) RecentEntry() RecentEntry {
	return NewRecentEntry(r.Kind, r.Location)
}

// NewRecentEntry builds the recent entry remembered for a target of kind at loc.
// Workspaces get an ID derived from their normalized config location.
func NewRecentEntry(kind OpenTargetKind, loc Location) RecentEntry {
	loc = loc.Normalize()
	switch kind {
	case OpenTargetWorkspace:
		return &RecentWorkspace{WorkspaceID: WorkspaceIDFor(loc), ConfigLocation: loc}
	case OpenTargetFolder:
		return &RecentFolder{FolderLocation: loc}
	default:
		return &RecentFile{FileLocation: loc}
	}
}
