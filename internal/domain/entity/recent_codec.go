package entity

// RecentlyOpenedStorageKey is the global storage key holding the serialized history.
const RecentlyOpenedStorageKey = "recently.opened"

// SerializedRecentHistory is the persisted projection of RecentHistory.
// This is serialized to JSON under RecentlyOpenedStorageKey.
type SerializedRecentHistory struct {
	Files      []SerializedRecentFile      `json:"files"`
	Workspaces []SerializedRecentWorkspace `json:"workspaces"`
}

// SerializedRecentFile is a persisted RecentFile.
type SerializedRecentFile struct {
	FileURI string `json:"fileUri"`
}

// SerializedRecentWorkspace is a persisted folder or workspace entry.
// Exactly one of FolderURI and Workspace is set.
type SerializedRecentWorkspace struct {
	FolderURI string                  `json:"folderUri,omitempty"`
	Workspace *SerializedWorkspaceRef `json:"workspace,omitempty"`
	Label     string                  `json:"label,omitempty"`
}

// SerializedWorkspaceRef identifies a multi-root workspace.
type SerializedWorkspaceRef struct {
	ID         string `json:"id"`
	ConfigPath string `json:"configPath"`
}

// ToSerialized projects the history into its persisted form.
func (h *RecentHistory) ToSerialized() *SerializedRecentHistory {
	out := &SerializedRecentHistory{
		Files:      []SerializedRecentFile{},
		Workspaces: []SerializedRecentWorkspace{},
	}
	if h == nil {
		return out
	}

	for _, f := range h.Files {
		out.Files = append(out.Files, SerializedRecentFile{FileURI: string(f.FileLocation)})
	}

	for _, entry := range h.Workspaces {
		switch v := entry.(type) {
		case *RecentFolder:
			out.Workspaces = append(out.Workspaces, SerializedRecentWorkspace{
				FolderURI: string(v.FolderLocation),
				Label:     v.Label,
			})
		case *RecentWorkspace:
			out.Workspaces = append(out.Workspaces, SerializedRecentWorkspace{
				Workspace: &SerializedWorkspaceRef{
					ID:         v.WorkspaceID,
					ConfigPath: string(v.ConfigLocation),
				},
				Label: v.Label,
			})
		}
	}

	return out
}

// RecentHistoryFromSerialized reconstructs a history from its persisted form.
// This is the inverse of ToSerialized. Items with no recognizable shape are skipped
// and counted in the second return value.
func RecentHistoryFromSerialized(s *SerializedRecentHistory) (*RecentHistory, int) {
	h := NewRecentHistory()
	if s == nil {
		return h, 0
	}

	skipped := 0
	for _, f := range s.Files {
		if f.FileURI == "" {
			skipped++
			continue
		}
		h.Files = append(h.Files, &RecentFile{FileLocation: Location(f.FileURI)})
	}

	for _, w := range s.Workspaces {
		switch {
		case w.Workspace != nil && w.Workspace.ConfigPath != "":
			h.Workspaces = append(h.Workspaces, &RecentWorkspace{
				WorkspaceID:    w.Workspace.ID,
				ConfigLocation: Location(w.Workspace.ConfigPath),
				Label:          w.Label,
			})
		case w.FolderURI != "":
			h.Workspaces = append(h.Workspaces, &RecentFolder{
				FolderLocation: Location(w.FolderURI),
				Label:          w.Label,
			})
		default:
			skipped++
		}
	}

	return h, skipped
}
