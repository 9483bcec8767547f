package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/workbench/internal/domain/entity"
	domainurl "github.com/bnema/workbench/internal/domain/url"
)

// Renderer renders non-interactive command output.
type Renderer struct {
	theme *Theme
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(theme *Theme) *Renderer {
	return &Renderer{theme: theme}
}

// RenderHistory renders the recent history as two sections.
func (r *Renderer) RenderHistory(h *entity.RecentHistory) string {
	t := r.theme
	if h == nil || h.Len() == 0 {
		return "\n  " + t.Subtle.Render("No recently opened entries") + "\n"
	}

	var sb strings.Builder
	if len(h.Workspaces) > 0 {
		sb.WriteString("\n  " + t.Title.Render("Folders & Workspaces") + "\n")
		for i, e := range h.Workspaces {
			sb.WriteString(r.renderEntry(i+1, RecentItem{Entry: e}))
		}
	}
	if len(h.Files) > 0 {
		sb.WriteString("\n  " + t.Title.Render("Files") + "\n")
		for i, f := range h.Files {
			sb.WriteString(r.renderEntry(i+1, RecentItem{Entry: f}))
		}
	}
	return sb.String()
}

func (r *Renderer) renderEntry(n int, item RecentItem) string {
	t := r.theme
	return fmt.Sprintf("  %s %s %s\n      %s\n",
		t.Subtle.Render(fmt.Sprintf("%2d.", n)),
		t.Highlight.Render(KindIcon(item.Entry.Kind())),
		t.Normal.Render(item.Label()),
		t.Subtle.Render(item.Path()),
	)
}

// RenderNavigation renders a dispatched folder or workspace.
func (r *Renderer) RenderNavigation(req entity.NavigationRequest) string {
	t := r.theme
	where := "current window"
	if req.NewWindow {
		where = "new window"
	}
	return fmt.Sprintf("  %s %s %s %s",
		t.SuccessStyle.Render(IconCheck),
		t.Normal.Render(domainurl.ToPath(string(req.Location))),
		t.Subtle.Render("in"),
		t.MutedBadge(where),
	)
}

// RenderOpenedFile renders a file opened in the current session.
func (r *Renderer) RenderOpenedFile(loc entity.Location) string {
	t := r.theme
	return fmt.Sprintf("  %s %s", t.SuccessStyle.Render(IconCheck), t.Normal.Render(domainurl.ToPath(string(loc))))
}

// RenderFailure renders a target that could not be opened.
func (r *Renderer) RenderFailure(location entity.Location, err error) string {
	t := r.theme
	return fmt.Sprintf("  %s %s %s",
		t.ErrorStyle.Render(IconX),
		t.Normal.Render(domainurl.ToPath(string(location))),
		t.ErrorStyle.Render(err.Error()),
	)
}

// RenderSuccess renders a success message.
func (r *Renderer) RenderSuccess(msg string) string {
	return fmt.Sprintf("\n  %s %s\n", r.theme.SuccessStyle.Render(IconCheck), msg)
}

// RenderError renders an error message.
func (r *Renderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

// RenderPath renders a labelled path.
func (r *Renderer) RenderPath(label, path string) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconConfig)
	return fmt.Sprintf("  %s %s %s", icon, r.theme.Title.Render(label), r.theme.Subtle.Render(path))
}

// RenderKeys renders config keys with their current values.
func (r *Renderer) RenderKeys(keys []string, values map[string]any) string {
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %s = %s\n",
			r.theme.Highlight.Render(k),
			r.theme.Normal.Render(fmt.Sprintf("%v", values[k])),
		))
	}
	return sb.String()
}
