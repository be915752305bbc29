package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/views/notes"
	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/views/sidebar"
	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/viewtree"
	"github.com/custodia-labs/notekeeper/internal/core/domain"
	"github.com/custodia-labs/notekeeper/internal/core/ports/driven"
)

// pendingDelete is a delete waiting for y/n confirmation.
type pendingDelete struct {
	notebookID string
	noteID     string // empty for a notebook delete
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// App never mutates its view tree directly: every service result becomes a
// viewtree event and the tree is replaced by the result of viewtree.Apply.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx bounds the watcher goroutine and pending commands; cancel
	// ends it when the program exits.
	ctx    context.Context
	cancel context.CancelFunc

	// now is the clock used for the greeting and relative times.
	now func() time.Time

	styles *styles.Styles
	keymap *keymap.KeyMap

	// tree is the current rendered state of notebooks and notes.
	tree viewtree.Tree

	// focus selects the pane that receives navigation keys.
	focus messages.Focus

	sidebarView *sidebar.View
	notesView   *notes.View
	form        *input.Form
	statusBar   *status.Bar

	// pending holds a delete awaiting confirmation.
	pending *pendingDelete

	// watcher reports external writes to the document. Optional.
	watcher driven.Watcher
	changes chan struct{}

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		ports:       ports,
		ctx:         ctx,
		cancel:      cancel,
		now:         time.Now,
		styles:      s,
		keymap:      km,
		focus:       messages.FocusSidebar,
		sidebarView: sidebar.NewView(s),
		form:        input.NewForm(s),
		statusBar:   status.NewBar(s, km),
		changes:     make(chan struct{}, 1),
	}
	a.notesView = notes.NewView(s, a.clock)
	a.sidebarView.SetFocused(true)

	return a, nil
}

// WithContext derives the app context from ctx.
func (a *App) WithContext(ctx context.Context) *App {
	a.cancel()
	a.ctx, a.cancel = context.WithCancel(ensureContext(ctx))
	return a
}

// Stop cancels the app context, ending the watcher and any command
// waiting on it. Run calls it on exit.
func (a *App) Stop() {
	a.cancel()
}

// WithClock sets the time source used for rendering.
func (a *App) WithClock(now func() time.Time) *App {
	if now != nil {
		a.now = now
	}
	return a
}

// WithWatcher reloads the notebooks whenever the watcher reports a change
// written by another process.
func (a *App) WithWatcher(w driven.Watcher) *App {
	a.watcher = w
	return a
}

func (a *App) clock() time.Time {
	return a.now()
}

// Init implements tea.Model.
// It loads the notebooks and starts watching for external changes.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("notekeeper"),
		a.loadNotebooks(),
	}
	if a.watcher != nil {
		cmds = append(cmds, a.startWatch(a.watcher))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.FormSubmitted:
		return a, a.submitForm(msg)

	case messages.FormCancelled:
		a.clearStatus()
		return a, nil

	case messages.NotebooksLoaded:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		previous := a.tree.ActiveID
		cmd := a.apply(viewtree.NotebooksReset{Notebooks: msg.Notebooks})
		if previous != "" && previous != a.tree.ActiveID && a.tree.NavIndex(previous) >= 0 {
			// Reloaded after an external change: keep the user's place
			cmd = a.selectNotebook(previous)
		}
		a.clearStatus()
		return a, cmd

	case messages.NotesLoaded:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		cmd := a.apply(viewtree.NotesReset{NotebookID: msg.NotebookID, Notes: msg.Notes})
		return a, cmd

	case messages.NotebookCreated:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		cmd := a.apply(viewtree.NotebookInserted{Notebook: msg.Notebook})
		a.notesView.ResetCursor()
		a.setMessage(fmt.Sprintf("Created notebook %q", msg.Notebook.Name))
		return a, cmd

	case messages.NotebookRenamed:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		cmd := a.apply(viewtree.NotebookReplaced{Notebook: msg.Notebook})
		a.setMessage(fmt.Sprintf("Renamed notebook to %q", msg.Notebook.Name))
		return a, cmd

	case messages.NotebookDeleted:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		cmd := a.apply(viewtree.NotebookRemoved{NotebookID: msg.NotebookID})
		a.notesView.ResetCursor()
		a.setMessage("Notebook deleted")
		return a, cmd

	case messages.NoteCreated:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		cmd := a.apply(viewtree.NoteInserted{Note: msg.Note})
		a.notesView.ResetCursor()
		a.setMessage("Note added")
		return a, cmd

	case messages.NoteLoaded:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.statusBar.SetState(status.StateEditing)
		return a, a.form.Open(messages.FormEditNote, msg.Note.ID, msg.Note.Title, msg.Note.Text)

	case messages.NoteUpdated:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		cmd := a.apply(viewtree.NoteReplaced{Note: msg.Note})
		a.setMessage("Note saved")
		return a, cmd

	case messages.NoteDeleted:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		cmd := a.apply(viewtree.NewNoteRemoved(msg.NoteID, msg.Remaining))
		a.setMessage("Note deleted")
		return a, cmd

	case messages.DocumentChanged:
		return a, tea.Batch(a.loadNotebooks(), a.waitForChange())

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	if a.form.Active() {
		// Cursor blink and other input housekeeping
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return a, cmd
	}

	return a, nil
}

// handleKey routes a key press to the form, the confirmation prompt or the
// focused pane, in that order.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if keyStr == "ctrl+c" {
		return a, tea.Quit
	}

	if a.form.Active() {
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return a, cmd
	}

	if a.pending != nil {
		return a, a.resolveConfirm(keyStr)
	}

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(keyStr, a.keymap.SwitchPane):
		a.setFocus(a.focus.Toggle())
		return a, nil

	case keymap.Matches(keyStr, a.keymap.NewNotebook):
		return a, a.openForm(messages.FormNewNotebook, "")

	case keymap.Matches(keyStr, a.keymap.RenameNotebook):
		active, ok := a.tree.Active()
		if !ok {
			return a, nil
		}
		return a, a.openForm(messages.FormRenameNotebook, active.ID, active.Name)

	case keymap.Matches(keyStr, a.keymap.DeleteNotebook):
		active, ok := a.tree.Active()
		if !ok {
			return a, nil
		}
		a.confirm(&pendingDelete{notebookID: active.ID},
			fmt.Sprintf("Delete notebook %q and all its notes? (y/n)", active.Name))
		return a, nil

	case keymap.Matches(keyStr, a.keymap.AddNote):
		if !a.tree.CreateEnabled {
			a.setError(ErrNoNotebook)
			return a, nil
		}
		return a, a.openForm(messages.FormNewNote, a.tree.ActiveID)
	}

	if a.focus == messages.FocusSidebar {
		return a, a.handleSidebarKey(keyStr)
	}
	return a, a.handlePanelKey(msg)
}

func (a *App) handleSidebarKey(keyStr string) tea.Cmd {
	delta := 0
	switch {
	case keymap.Matches(keyStr, a.keymap.Up):
		delta = -1
	case keymap.Matches(keyStr, a.keymap.Down):
		delta = 1
	default:
		return nil
	}

	id, ok := a.sidebarView.Neighbour(a.tree, delta)
	if !ok {
		return nil
	}
	return a.selectNotebook(id)
}

func (a *App) handlePanelKey(msg tea.KeyMsg) tea.Cmd {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, a.keymap.Up), keymap.Matches(keyStr, a.keymap.Down):
		a.notesView, _ = a.notesView.Update(msg)
		return nil

	case keymap.Matches(keyStr, a.keymap.EditNote):
		card, ok := a.notesView.Selected(a.tree)
		if !ok {
			return nil
		}
		return a.loadNoteForEdit(card.ID)

	case keymap.Matches(keyStr, a.keymap.DeleteNote):
		card, ok := a.notesView.Selected(a.tree)
		if !ok {
			return nil
		}
		title := card.Title
		if title == "" {
			title = "untitled note"
		}
		a.confirm(&pendingDelete{notebookID: card.NotebookID, noteID: card.ID},
			fmt.Sprintf("Delete %q? (y/n)", title))
	}
	return nil
}

// resolveConfirm runs or drops the pending delete.
func (a *App) resolveConfirm(keyStr string) tea.Cmd {
	p := a.pending
	switch {
	case keymap.Matches(keyStr, a.keymap.Confirm):
		a.pending = nil
		a.statusBar.SetState(status.StateBusy)
		if p.noteID != "" {
			return a.deleteNote(p.notebookID, p.noteID)
		}
		return a.deleteNotebook(p.notebookID)

	case keymap.Matches(keyStr, a.keymap.Deny):
		a.pending = nil
		a.clearStatus()
	}
	return nil
}

func (a *App) submitForm(msg messages.FormSubmitted) tea.Cmd {
	a.statusBar.SetState(status.StateBusy)

	var first string
	if len(msg.Values) > 0 {
		first = strings.TrimSpace(msg.Values[0])
	}

	switch msg.Kind {
	case messages.FormNewNotebook:
		return a.createNotebook(first)
	case messages.FormRenameNotebook:
		return a.renameNotebook(msg.TargetID, first)
	case messages.FormNewNote:
		return a.createNote(msg.TargetID, noteFields(msg.Values))
	case messages.FormEditNote:
		return a.updateNote(msg.TargetID, noteFields(msg.Values))
	}

	a.clearStatus()
	return nil
}

// apply feeds an event through the synchronizer and issues any note load it
// asks for.
func (a *App) apply(ev viewtree.Event) tea.Cmd {
	var intent viewtree.Intent
	a.tree, intent = viewtree.Apply(a.tree, ev)
	a.syncPanel()
	if intent.IsZero() {
		return nil
	}
	return a.loadNotes(intent.LoadNotes)
}

func (a *App) selectNotebook(id string) tea.Cmd {
	var intent viewtree.Intent
	a.tree, intent = viewtree.Select(a.tree, id)
	a.notesView.ResetCursor()
	a.syncPanel()
	if intent.IsZero() {
		return nil
	}
	return a.loadNotes(intent.LoadNotes)
}

func (a *App) syncPanel() {
	a.notesView.Sync(a.tree)
	a.statusBar.SetNoteCount(len(a.tree.Panel.Cards))
}

func (a *App) openForm(kind messages.FormKind, target string, values ...string) tea.Cmd {
	a.statusBar.SetState(status.StateEditing)
	return a.form.Open(kind, target, values...)
}

func (a *App) confirm(p *pendingDelete, prompt string) {
	a.pending = p
	a.statusBar.SetState(status.StateConfirm)
	a.statusBar.SetMessage(prompt)
}

func (a *App) setFocus(focus messages.Focus) {
	a.focus = focus
	a.sidebarView.SetFocused(focus == messages.FocusSidebar)
	a.notesView.SetFocused(focus == messages.FocusPanel)
	a.statusBar.SetFocus(focus)
}

func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetState(status.StateError)
	a.statusBar.SetMessage(err.Error())
}

func (a *App) setMessage(message string) {
	a.err = nil
	a.statusBar.SetState(status.StateDone)
	a.statusBar.SetMessage(message)
}

func (a *App) clearStatus() {
	a.err = nil
	a.statusBar.Clear()
}

// View implements tea.Model.
// It renders the header, both panes, the open form and the status bar.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		a.styles.Title.Render("notekeeper"),
		"  ",
		a.styles.Greeting.Render(domain.Greeting(a.now().Hour())),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		a.sidebarView.View(a.tree),
		a.notesView.View(a.tree),
	)

	parts := []string{header, body}
	if a.form.Active() {
		parts = append(parts, a.form.View())
	}
	parts = append(parts, a.statusBar.View())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run starts the TUI application.
func (a *App) Run() error {
	defer a.Stop()

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Tree returns the current view tree.
func (a *App) Tree() viewtree.Tree {
	return a.tree
}

// Focus returns the focused pane.
func (a *App) Focus() messages.Focus {
	return a.focus
}

// FormActive reports whether a form is open.
func (a *App) FormActive() bool {
	return a.form.Active()
}

// Confirming reports whether a delete is awaiting confirmation.
func (a *App) Confirming() bool {
	return a.pending != nil
}

// SelectedNote returns the id of the note under the panel cursor.
func (a *App) SelectedNote() string {
	card, ok := a.notesView.Selected(a.tree)
	if !ok {
		return ""
	}
	return card.ID
}

// Status returns the status bar state.
func (a *App) Status() status.State {
	return a.statusBar.State()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	// Header, status bar and pane borders
	paneHeight := height - 6
	if a.form.Active() {
		paneHeight -= 6
	}
	a.sidebarView.SetDimensions(a.sidebarView.Width(), paneHeight)
	a.notesView.SetDimensions(width-a.sidebarView.Width(), paneHeight)
	a.form.SetWidth(width)
	a.statusBar.SetWidth(width)
}
