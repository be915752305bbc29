// Package notes renders the note panel of the active notebook.
package notes

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/viewtree"
)

// PlaceholderText is shown when the active notebook has no notes.
const PlaceholderText = "No notes"

// View renders the note panel and tracks the selected card.
type View struct {
	styles  *styles.Styles
	cursor  *list.Cursor
	now     func() time.Time
	width   int
	height  int
	focused bool
}

// NewView creates a new note panel view. A nil clock uses time.Now.
func NewView(s *styles.Styles, now func() time.Time) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if now == nil {
		now = time.Now
	}
	return &View{
		styles: s,
		cursor: list.NewCursor(0),
		now:    now,
		width:  56,
		height: 20,
	}
}

// Sync resizes the cursor to the tree's cards.
func (v *View) Sync(tree viewtree.Tree) {
	v.cursor.SetCount(len(tree.Panel.Cards))
}

// ResetCursor moves the selection to the first card.
func (v *View) ResetCursor() {
	v.cursor.Reset()
}

// Update handles navigation keys.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			v.cursor.MoveUp()
		case "down", "j":
			v.cursor.MoveDown()
		}
	}
	return v, nil
}

// Selected returns the card under the cursor.
func (v *View) Selected(tree viewtree.Tree) (viewtree.Card, bool) {
	i := v.cursor.Index()
	if i < 0 || i >= len(tree.Panel.Cards) {
		return viewtree.Card{}, false
	}
	return tree.Panel.Cards[i], true
}

// SelectedIndex returns the cursor position, or -1 with no cards.
func (v *View) SelectedIndex() int {
	return v.cursor.Index()
}

// View renders the panel title and cards.
func (v *View) View(tree viewtree.Tree) string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(tree.PanelTitle))
	b.WriteString("\n\n")

	switch {
	case tree.Panel.Empty:
		b.WriteString(v.styles.Placeholder.Render(PlaceholderText))
	case len(tree.Panel.Cards) > 0:
		now := v.now()
		inner := v.width - 8
		for i, card := range tree.Panel.Cards {
			b.WriteString(v.renderCard(card, i == v.cursor.Index(), now, inner))
			b.WriteString("\n")
		}
	}

	return v.styles.Pane(v.styles.Panel, v.focused).
		Width(v.width - 2).
		Height(v.height).
		Render(strings.TrimRight(b.String(), "\n"))
}

func (v *View) renderCard(card viewtree.Card, selected bool, now time.Time, width int) string {
	title := card.Title
	if title == "" {
		title = "(Untitled)"
	}

	lines := []string{
		v.styles.CardTitle.Render(truncate(title, width)),
	}
	if text := firstLine(card.Text); text != "" {
		lines = append(lines, v.styles.Normal.Render(truncate(text, width)))
	}
	lines = append(lines, v.styles.Muted.Render(card.Label(now)))

	style := v.styles.Card
	if selected && v.focused {
		style = v.styles.CardSelected
	}
	return style.Render(strings.Join(lines, "\n"))
}

// SetFocused marks the panel as the pane with focus.
func (v *View) SetFocused(focused bool) {
	v.focused = focused
}

// Focused returns whether the panel has focus.
func (v *View) Focused() bool {
	return v.focused
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, limit int) string {
	if limit < 10 {
		limit = 10
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
