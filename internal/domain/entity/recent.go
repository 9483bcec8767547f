package entity

import "errors"

// ErrUnknownEntryKind is returned for a RecentEntry that is not one of the known variants.
var ErrUnknownEntryKind = errors.New("unknown recent entry kind")

// RecentKind distinguishes the three recent entry variants.
type RecentKind string

const (
	RecentKindFile      RecentKind = "file"
	RecentKindFolder    RecentKind = "folder"
	RecentKindWorkspace RecentKind = "workspace"
)

// RecentEntry is a remembered file, folder or multi-root workspace.
// The set of implementations is closed: *RecentFile, *RecentFolder and *RecentWorkspace.
type RecentEntry interface {
	Kind() RecentKind
	// Location is the location that identifies the entry for de-duplication.
	Location() Location
	isRecentEntry()
}

// RecentFile is a recently opened file.
type RecentFile struct {
	FileLocation Location
}

// RecentFolder is a recently opened single folder.
type RecentFolder struct {
	FolderLocation Location
	Label          string
}

// RecentWorkspace is a recently opened multi-root workspace.
type RecentWorkspace struct {
	WorkspaceID    string
	ConfigLocation Location
	Label          string
}

func (*RecentFile) Kind() RecentKind      { return RecentKindFile }
func (*RecentFolder) Kind() RecentKind    { return RecentKindFolder }
func (*RecentWorkspace) Kind() RecentKind { return RecentKindWorkspace }

func (f *RecentFile) Location() Location      { return f.FileLocation }
func (f *RecentFolder) Location() Location    { return f.FolderLocation }
func (w *RecentWorkspace) Location() Location { return w.ConfigLocation }

func (*RecentFile) isRecentEntry()      {}
func (*RecentFolder) isRecentEntry()    {}
func (*RecentWorkspace) isRecentEntry() {}

// RecentHistory holds recently opened entries, most recent first.
// Folders and workspaces share the Workspaces list.
type RecentHistory struct {
	Files      []*RecentFile
	Workspaces []RecentEntry
}

// NewRecentHistory returns an empty history.
func NewRecentHistory() *RecentHistory {
	return &RecentHistory{
		Files:      []*RecentFile{},
		Workspaces: []RecentEntry{},
	}
}

// Clone returns a copy whose slices and entries can be mutated independently.
func (h *RecentHistory) Clone() *RecentHistory {
	out := NewRecentHistory()
	if h == nil {
		return out
	}
	for _, f := range h.Files {
		c := *f
		out.Files = append(out.Files, &c)
	}
	for _, e := range h.Workspaces {
		out.Workspaces = append(out.Workspaces, cloneEntry(e))
	}
	return out
}

func cloneEntry(e RecentEntry) RecentEntry {
	switch v := e.(type) {
	case *RecentFile:
		c := *v
		return &c
	case *RecentFolder:
		c := *v
		return &c
	case *RecentWorkspace:
		c := *v
		return &c
	default:
		return e
	}
}

// Add applies entries in order: each one first evicts any entry with the same
// normalized location, then a copy carrying the normalized location is inserted
// at the front of its list. The last entry
// therefore ends up frontmost.
func (h *RecentHistory) Add(entries ...RecentEntry) error {
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if err := entry.Location().Validate(); err != nil {
			return err
		}

		normalized := entry.Location().Normalize()
		h.removeLocation(normalized)

		switch v := normalizedCopy(entry, normalized).(type) {
		case *RecentFile:
			h.Files = append([]*RecentFile{v}, h.Files...)
		case *RecentFolder, *RecentWorkspace:
			h.Workspaces = append([]RecentEntry{v}, h.Workspaces...)
		default:
			return ErrUnknownEntryKind
		}
	}
	return nil
}

// normalizedCopy returns a copy of e carrying loc, so the history never
// aliases a caller's entry.
func normalizedCopy(e RecentEntry, loc Location) RecentEntry {
	c := cloneEntry(e)
	switch v := c.(type) {
	case *RecentFile:
		v.FileLocation = loc
	case *RecentFolder:
		v.FolderLocation = loc
	case *RecentWorkspace:
		v.ConfigLocation = loc
	}
	return c
}

// Remove drops every entry whose normalized location matches one of locations.
// It returns the number of entries removed.
func (h *RecentHistory) Remove(locations ...Location) int {
	removed := 0
	for _, loc := range locations {
		removed += h.removeLocation(loc.Normalize())
	}
	return removed
}

func (h *RecentHistory) removeLocation(normalized Location) int {
	if normalized == "" {
		return 0
	}
	before := len(h.Files) + len(h.Workspaces)

	files := h.Files[:0]
	for _, f := range h.Files {
		if f.FileLocation.Normalize() != normalized {
			files = append(files, f)
		}
	}
	h.Files = files

	workspaces := h.Workspaces[:0]
	for _, w := range h.Workspaces {
		if w.Location().Normalize() != normalized {
			workspaces = append(workspaces, w)
		}
	}
	h.Workspaces = workspaces

	return before - len(h.Files) - len(h.Workspaces)
}

// Truncate caps both lists, dropping the oldest entries. A limit <= 0 means unlimited.
func (h *RecentHistory) Truncate(maxFiles, maxWorkspaces int) {
	if maxFiles > 0 && len(h.Files) > maxFiles {
		h.Files = h.Files[:maxFiles]
	}
	if maxWorkspaces > 0 && len(h.Workspaces) > maxWorkspaces {
		h.Workspaces = h.Workspaces[:maxWorkspaces]
	}
}

// Len returns the total number of entries.
func (h *RecentHistory) Len() int {
	if h == nil {
		return 0
	}
	return len(h.Files) + len(h.Workspaces)
}
