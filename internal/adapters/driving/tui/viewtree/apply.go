package viewtree

// Intent is follow-up work Apply asks of the caller.
type Intent struct {
	// LoadNotes names a notebook that just became active; the caller
	// should list its notes and apply NotesReset.
	LoadNotes string
}

// IsZero reports whether no follow-up is needed.
func (i Intent) IsZero() bool {
	return i.LoadNotes == ""
}

// Apply patches t to reflect ev. The input tree is never modified.
// Events naming unknown notebooks or notes return the tree unchanged.
func Apply(t Tree, ev Event) (Tree, Intent) {
	out := t.clone()

	switch e := ev.(type) {
	case NotebookInserted:
		out.Nav = append(out.Nav, NewNavNode(e.Notebook))
		out.activate(len(out.Nav) - 1)
		out.Panel = placeholder()

	case NotebooksReset:
		out.Nav = make([]NavNode, 0, len(e.Notebooks))
		for _, nb := range e.Notebooks {
			out.Nav = append(out.Nav, NewNavNode(nb))
		}
		if len(out.Nav) == 0 {
			out.clearSelection()
			return out, Intent{}
		}
		out.activate(0)
		out.Panel = Panel{}
		return out, Intent{LoadNotes: out.ActiveID}

	case NotebookReplaced:
		i := out.NavIndex(e.Notebook.ID)
		if i < 0 {
			return t, Intent{}
		}
		out.Nav[i] = NewNavNode(e.Notebook)
		if out.ActiveID == "" || out.ActiveID == e.Notebook.ID {
			out.activate(i)
		} else {
			// Keep the current selection; only the label changes
			out.Nav[i].Active = false
		}

	case NotebookRemoved:
		return removeNotebook(out, t, e.NotebookID)

	case NoteInserted:
		if e.Note.NotebookID != out.ActiveID {
			return t, Intent{}
		}
		if out.Panel.Empty {
			out.Panel = Panel{}
		}
		out.Panel.Cards = append([]Card{NewCard(e.Note)}, out.Panel.Cards...)

	case NotesReset:
		if e.NotebookID != "" && e.NotebookID != out.ActiveID {
			// Stale load for a notebook that is no longer active
			return t, Intent{}
		}
		if len(e.Notes) == 0 {
			out.Panel = placeholder()
			break
		}
		cards := make([]Card, 0, len(e.Notes))
		for _, n := range e.Notes {
			cards = append(cards, NewCard(n))
		}
		out.Panel = Panel{Cards: cards}

	case NoteReplaced:
		i := out.CardIndex(e.Note.ID)
		if i < 0 {
			return t, Intent{}
		}
		out.Panel.Cards[i] = NewCard(e.Note)

	case NoteRemoved:
		i := out.CardIndex(e.NoteID)
		if i < 0 {
			return t, Intent{}
		}
		out.Panel.Cards = append(out.Panel.Cards[:i], out.Panel.Cards[i+1:]...)
		if !e.NotesRemain {
			out.Panel = placeholder()
		}

	default:
		return t, Intent{}
	}

	return out, Intent{}
}

// Select activates the notebook id, deactivating the previous one, and asks
// the caller to load its notes. Unknown ids leave the tree unchanged.
func Select(t Tree, id string) (Tree, Intent) {
	i := t.NavIndex(id)
	if i < 0 {
		return t, Intent{}
	}
	out := t.clone()
	out.activate(i)
	out.Panel = Panel{}
	return out, Intent{LoadNotes: id}
}

// removeNotebook drops the sidebar entry. When the removed notebook was
// active, the next entry is selected, else the previous one; with nothing
// left the title and panel are cleared and note creation is disabled.
func removeNotebook(out, orig Tree, id string) (Tree, Intent) {
	i := out.NavIndex(id)
	if i < 0 {
		return orig, Intent{}
	}
	wasActive := out.ActiveID == id || out.ActiveID == ""

	var sibling string
	switch {
	case i+1 < len(out.Nav):
		sibling = out.Nav[i+1].ID
	case i > 0:
		sibling = out.Nav[i-1].ID
	}

	out.Nav = append(out.Nav[:i], out.Nav[i+1:]...)

	if !wasActive {
		return out, Intent{}
	}
	if sibling == "" {
		out.clearSelection()
		return out, Intent{}
	}
	return Select(out, sibling)
}
