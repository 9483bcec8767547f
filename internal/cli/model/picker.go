// Package model holds the Bubble Tea models of the interactive commands.
package model

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/domain/entity"
)

// RecentsSource reads and prunes the recently opened history.
type RecentsSource interface {
	GetRecentlyOpened(ctx context.Context) (*entity.RecentHistory, error)
	Remove(ctx context.Context, locations ...entity.Location) error
}

// PickerResult is the entry chosen in the picker.
type PickerResult struct {
	Entry     entity.RecentEntry
	NewWindow bool
}

// PickerModel is the Bubble Tea model for picking a recently opened entry.
type PickerModel struct {
	list   list.Model
	search textinput.Model
	help   help.Model
	keys   styles.PickerKeyMap

	allItems []styles.RecentItem
	query    string
	result   *PickerResult
	width    int
	height   int
	err      error

	ctx     context.Context
	recents RecentsSource
	theme   *styles.Theme
}

// NewPickerModel creates a new picker model.
func NewPickerModel(ctx context.Context, theme *styles.Theme, recents RecentsSource) PickerModel {
	search := styles.NewSearchInput(theme)

	m := PickerModel{
		search:  search,
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultPickerKeyMap(),
		ctx:     ctx,
		recents: recents,
		theme:   theme,
		width:   80,
		height:  24,
	}
	m.updateList()
	return m
}

type pickerLoadedMsg struct {
	items []styles.RecentItem
	err   error
}

type pickerRemovedMsg struct {
	err error
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadEntries)
}

func (m PickerModel) loadEntries() tea.Msg {
	h, err := m.recents.GetRecentlyOpened(m.ctx)
	if err != nil {
		return pickerLoadedMsg{err: err}
	}
	return pickerLoadedMsg{items: styles.NewRecentItems(h)}
}

func (m PickerModel) removeEntry(loc entity.Location) tea.Cmd {
	return func() tea.Msg {
		return pickerRemovedMsg{err: m.recents.Remove(m.ctx, loc)}
	}
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateList()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.NewWindow):
			if item, ok := m.list.SelectedItem().(styles.RecentItem); ok {
				m.result = &PickerResult{
					Entry:     item.Entry,
					NewWindow: key.Matches(msg, m.keys.NewWindow),
				}
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Remove):
			if item, ok := m.list.SelectedItem().(styles.RecentItem); ok {
				cmds = append(cmds, m.removeEntry(item.Entry.Location()))
			}

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			cmds = append(cmds, cmd)

		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			cmds = append(cmds, cmd)

			if m.search.Value() != m.query {
				m.query = m.search.Value()
				m.updateList()
			}
		}

	case pickerLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.allItems = msg.items
			m.updateList()
		}

	case pickerRemovedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			cmds = append(cmds, m.loadEntries)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *PickerModel) updateList() {
	items := filterItems(m.allItems, m.query)

	// Search bar and help take six rows.
	listHeight := max(m.height-6, 5)

	selected := 0
	if m.list.Items() != nil {
		selected = m.list.Index()
	}
	m.list = styles.NewRecentList(m.theme, items, m.width, listHeight)
	if selected < len(items) {
		m.list.Select(selected)
	}
}

// filterItems keeps items whose label or path contains every query word, ignoring case.
func filterItems(items []styles.RecentItem, query string) []styles.RecentItem {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return items
	}

	filtered := make([]styles.RecentItem, 0, len(items))
	for _, item := range items {
		haystack := strings.ToLower(item.FilterValue())
		matched := true
		for _, w := range words {
			if !strings.Contains(haystack, w) {
				matched = false
				break
			}
		}
		if matched {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// View implements tea.Model.
func (m PickerModel) View() string {
	t := m.theme

	listView := m.list.View()
	switch {
	case m.err != nil:
		listView = t.ErrorStyle.Render("Error: " + m.err.Error())
	case len(m.allItems) == 0:
		listView = t.Subtle.Render("  No recently opened entries")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		t.FilterBox.Render(m.search.View()),
		"",
		listView,
		"",
		m.help.View(m.keys),
	)
}

// Result returns the picked entry, or nil when the picker was cancelled.
func (m PickerModel) Result() *PickerResult {
	return m.result
}

// Err returns the last load or remove error.
func (m PickerModel) Err() error {
	return m.err
}

var _ tea.Model = (*PickerModel)(nil)
