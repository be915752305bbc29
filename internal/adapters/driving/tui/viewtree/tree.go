package viewtree

import (
	"time"

	"github.com/custodia-labs/notekeeper/internal/core/domain"
)

// NavNode is a sidebar entry for one notebook.
type NavNode struct {
	ID     string
	Name   string
	Active bool
}

// NewNavNode builds the sidebar entry for a notebook.
func NewNavNode(nb domain.Notebook) NavNode {
	return NavNode{ID: nb.ID, Name: nb.Name}
}

// Card is the panel entry for one note.
type Card struct {
	ID         string
	NotebookID string
	Title      string
	Text       string
	PostedOn   int64
}

// NewCard builds the panel entry for a note.
func NewCard(n domain.Note) Card {
	return Card{
		ID:         n.ID,
		NotebookID: n.NotebookID,
		Title:      n.Title,
		Text:       n.Text,
		PostedOn:   n.PostedOn,
	}
}

// Label returns the card's age relative to now, e.g. "5 mins ago".
func (c Card) Label(now time.Time) string {
	return domain.RelativeTime(c.PostedOn, now.UnixMilli())
}

// Panel is the note area. Empty is set when the placeholder is shown
// instead of cards.
type Panel struct {
	Cards []Card
	Empty bool
}

// Tree is the full rendered state.
type Tree struct {
	Nav           []NavNode
	ActiveID      string
	PanelTitle    string
	Panel         Panel
	CreateEnabled bool
}

// Active returns the active sidebar entry.
func (t Tree) Active() (NavNode, bool) {
	if i := t.NavIndex(t.ActiveID); i >= 0 {
		return t.Nav[i], true
	}
	return NavNode{}, false
}

// NavIndex returns the position of the notebook's sidebar entry, or -1.
func (t Tree) NavIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range t.Nav {
		if t.Nav[i].ID == id {
			return i
		}
	}
	return -1
}

// CardIndex returns the position of the note's card, or -1.
func (t Tree) CardIndex(id string) int {
	for i := range t.Panel.Cards {
		if t.Panel.Cards[i].ID == id {
			return i
		}
	}
	return -1
}

// clone copies the slices so edits never reach the caller's tree.
func (t Tree) clone() Tree {
	out := t
	if t.Nav != nil {
		out.Nav = make([]NavNode, len(t.Nav))
		copy(out.Nav, t.Nav)
	}
	if t.Panel.Cards != nil {
		out.Panel.Cards = make([]Card, len(t.Panel.Cards))
		copy(out.Panel.Cards, t.Panel.Cards)
	}
	return out
}

// activate marks the node at i active and clears the others.
func (t *Tree) activate(i int) {
	for j := range t.Nav {
		t.Nav[j].Active = j == i
	}
	t.ActiveID = t.Nav[i].ID
	t.PanelTitle = t.Nav[i].Name
	t.CreateEnabled = true
}

// clearSelection empties the title and panel and disables note creation.
func (t *Tree) clearSelection() {
	for j := range t.Nav {
		t.Nav[j].Active = false
	}
	t.ActiveID = ""
	t.PanelTitle = ""
	t.Panel = Panel{}
	t.CreateEnabled = false
}

func placeholder() Panel {
	return Panel{Empty: true}
}
