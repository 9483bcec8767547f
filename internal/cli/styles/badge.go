package styles

import (
	"github.com/bnema/workbench/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// KindBadge renders the kind of a recent entry.
func (t *Theme) KindBadge(kind entity.RecentKind) string {
	if kind == entity.RecentKindWorkspace {
		return t.AccentBadge(string(kind))
	}
	return t.MutedBadge(string(kind))
}

// KindIcon returns the icon for a recent entry kind.
func KindIcon(kind entity.RecentKind) string {
	switch kind {
	case entity.RecentKindFolder:
		return IconFolder
	case entity.RecentKindWorkspace:
		return IconWorkspace
	default:
		return IconFile
	}
}
