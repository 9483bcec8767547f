package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewSearchInput returns the picker's filter field, focused and empty.
func NewSearchInput(theme *Theme) textinput.Model {
	in := textinput.New()
	in.Placeholder = "filter recent entries"
	in.Prompt = IconInfo + " "
	in.CharLimit = 256
	in.PromptStyle = theme.Highlight
	in.TextStyle = theme.Normal
	in.PlaceholderStyle = theme.Subtle
	in.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	in.Focus()
	return in
}
