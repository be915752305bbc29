// Package sidebar renders the notebook navigation list.
package sidebar

import (
	"strings"

	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/viewtree"
)

const (
	defaultWidth = 24
	minWidth     = 16
)

// View renders the sidebar of a view tree.
type View struct {
	styles  *styles.Styles
	width   int
	height  int
	focused bool
}

// NewView creates a new sidebar view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  defaultWidth,
		height: 20,
	}
}

// Neighbour returns the id of the notebook delta places from the active
// one, clamped to the list bounds. ok is false when nothing would change.
func (v *View) Neighbour(tree viewtree.Tree, delta int) (string, bool) {
	if len(tree.Nav) == 0 {
		return "", false
	}
	i := tree.NavIndex(tree.ActiveID)
	if i < 0 {
		return tree.Nav[0].ID, true
	}
	j := i + delta
	if j < 0 {
		j = 0
	}
	if j >= len(tree.Nav) {
		j = len(tree.Nav) - 1
	}
	if j == i {
		return "", false
	}
	return tree.Nav[j].ID, true
}

// View renders the notebook list.
func (v *View) View(tree viewtree.Tree) string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Notebooks"))
	b.WriteString("\n\n")

	if len(tree.Nav) == 0 {
		b.WriteString(v.styles.Placeholder.Render("No notebooks yet.\nPress n to create one."))
	}

	inner := v.width - 4
	for _, node := range tree.Nav {
		name := truncate(node.Name, inner-2)
		if node.Active {
			b.WriteString(v.styles.NavActive.Render("▸ " + name))
		} else {
			b.WriteString(v.styles.NavItem.Render("  " + name))
		}
		b.WriteString("\n")
	}

	return v.styles.Pane(v.styles.Sidebar, v.focused).
		Width(v.width - 2).
		Height(v.height).
		Render(strings.TrimRight(b.String(), "\n"))
}

// SetFocused marks the sidebar as the pane with focus.
func (v *View) SetFocused(focused bool) {
	v.focused = focused
}

// Focused returns whether the sidebar has focus.
func (v *View) Focused() bool {
	return v.focused
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	if width < minWidth {
		width = minWidth
	}
	v.width = width
	v.height = height
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

func truncate(s string, limit int) string {
	if limit < 4 {
		limit = 4
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
