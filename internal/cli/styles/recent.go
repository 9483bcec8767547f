package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/workbench/internal/domain/entity"
	domainurl "github.com/bnema/workbench/internal/domain/url"
)

// RecentItem is a recent entry shown in a list.
type RecentItem struct {
	Entry entity.RecentEntry
}

// NewRecentItems flattens a history into list items, workspaces first.
func NewRecentItems(h *entity.RecentHistory) []RecentItem {
	if h == nil {
		return nil
	}
	items := make([]RecentItem, 0, h.Len())
	for _, e := range h.Workspaces {
		items = append(items, RecentItem{Entry: e})
	}
	for _, f := range h.Files {
		items = append(items, RecentItem{Entry: f})
	}
	return items
}

// Label returns the entry's display label, defaulting to the location basename.
func (i RecentItem) Label() string {
	switch e := i.Entry.(type) {
	case *entity.RecentFolder:
		if e.Label != "" {
			return e.Label
		}
	case *entity.RecentWorkspace:
		if e.Label != "" {
			return e.Label
		}
	}
	return i.Entry.Location().Label()
}

// Path returns the filesystem path for file:// entries, the location otherwise.
func (i RecentItem) Path() string {
	return domainurl.ToPath(string(i.Entry.Location()))
}

// FilterValue implements list.Item.
func (i RecentItem) FilterValue() string {
	return i.Label() + " " + i.Path()
}

// RecentDelegate renders recent entries with theme styling.
type RecentDelegate struct {
	Theme *Theme
}

// Height returns the height of each item.
func (d RecentDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (d RecentDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (d RecentDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d RecentDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(RecentItem)
	if !ok {
		return
	}

	t := d.Theme
	const maxPathLength = 70

	cursor, titleStyle, pathStyle := cursorEmpty, t.Entry, t.EntryPath
	if index == m.Index() {
		cursor, titleStyle, pathStyle = cursorSelected, t.EntrySelected, t.EntryPathSelected
	}

	line1 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		titleStyle.Render(KindIcon(ri.Entry.Kind())+" "+ri.Label()),
		" ",
		t.KindBadge(ri.Entry.Kind()),
	)
	line2 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		strings.Repeat(" ", len(cursorEmpty)+1),
		pathStyle.Render(truncate(ri.Path(), maxPathLength)),
	)

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewRecentList creates a themed list for recent entries.
func NewRecentList(theme *Theme, items []RecentItem, width, height int) list.Model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, RecentDelegate{Theme: theme}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)

	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)

	return l
}

func truncate(s string, max int) string {
	const ellipsis = "..."
	if len(s) <= max {
		return s
	}
	return s[:max-len(ellipsis)] + ellipsis
}
