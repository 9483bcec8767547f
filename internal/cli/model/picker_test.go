package model

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/config"
)

type fakeRecents struct {
	history *entity.RecentHistory
	removed []entity.Location
	loadErr error
}

func (f *fakeRecents) GetRecentlyOpened(context.Context) (*entity.RecentHistory, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.history.Clone(), nil
}

func (f *fakeRecents) Remove(_ context.Context, locations ...entity.Location) error {
	f.removed = append(f.removed, locations...)
	f.history.Remove(locations...)
	return nil
}

func newFakeRecents(t *testing.T) *fakeRecents {
	t.Helper()
	h := entity.NewRecentHistory()
	require.NoError(t, h.Add(
		&entity.RecentFile{FileLocation: "file:///notes/todo.md"},
		&entity.RecentFolder{FolderLocation: "file:///src/beta"},
		&entity.RecentFolder{FolderLocation: "file:///src/alpha"},
	))
	return &fakeRecents{history: h}
}

// run executes cmd and feeds every resulting message back into the model.
func run(t *testing.T, m PickerModel, cmd tea.Cmd) PickerModel {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = run(t, m, c)
		}
		return m
	}
	next, nextCmd := m.Update(msg)
	return run(t, next.(PickerModel), nextCmd)
}

func loadedPicker(t *testing.T, recents RecentsSource) PickerModel {
	t.Helper()
	m := NewPickerModel(context.Background(), styles.NewTheme(config.DefaultConfig()), recents)
	next, _ := m.Update(m.loadEntries())
	return next.(PickerModel)
}

func press(t *testing.T, m PickerModel, msg tea.KeyMsg) (PickerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(PickerModel), cmd
}

func TestPicker_ListsWorkspacesBeforeFiles(t *testing.T) {
	m := loadedPicker(t, newFakeRecents(t))

	require.Len(t, m.allItems, 3)
	assert.Equal(t, entity.Location("file:///src/alpha"), m.allItems[0].Entry.Location())
	assert.Equal(t, entity.Location("file:///notes/todo.md"), m.allItems[2].Entry.Location())
	assert.Contains(t, m.View(), "alpha")
}

func TestPicker_EnterPicksSelection(t *testing.T) {
	m := loadedPicker(t, newFakeRecents(t))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	require.NotNil(t, m.Result())
	assert.Equal(t, entity.Location("file:///src/beta"), m.Result().Entry.Location())
	assert.False(t, m.Result().NewWindow)
}

func TestPicker_FilterThenNewWindow(t *testing.T) {
	m := loadedPicker(t, newFakeRecents(t))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("todo")})
	require.Len(t, m.list.Items(), 1)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	require.NotNil(t, m.Result())
	assert.Equal(t, entity.Location("file:///notes/todo.md"), m.Result().Entry.Location())
	assert.True(t, m.Result().NewWindow)
}

func TestPicker_CancelPicksNothing(t *testing.T) {
	m := loadedPicker(t, newFakeRecents(t))

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Nil(t, m.Result())
}

func TestPicker_RemoveReloads(t *testing.T) {
	recents := newFakeRecents(t)
	m := loadedPicker(t, recents)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	m = run(t, m, cmd)

	assert.Equal(t, []entity.Location{"file:///src/alpha"}, recents.removed)
	require.Len(t, m.allItems, 2)
	assert.Equal(t, entity.Location("file:///src/beta"), m.allItems[0].Entry.Location())
}

func TestPicker_LoadErrorIsShown(t *testing.T) {
	m := loadedPicker(t, &fakeRecents{loadErr: errors.New("locked")})

	require.Error(t, m.Err())
	assert.Contains(t, m.View(), "locked")
}

func TestFilterItems_MatchesEveryWord(t *testing.T) {
	items := styles.NewRecentItems(newFakeRecents(t).history)

	assert.Len(t, filterItems(items, ""), 3)
	assert.Len(t, filterItems(items, "SRC"), 2)
	assert.Len(t, filterItems(items, "src beta"), 1)
	assert.Empty(t, filterItems(items, "src todo"))
}
