// Package status renders the one-line bar at the bottom of the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/styles"
)

// State selects what the left side of the bar shows.
type State string

const (
	StateReady   State = "ready"
	StateBusy    State = "busy"
	StateDone    State = "done"
	StateError   State = "error"
	StateEditing State = "editing"
	StateConfirm State = "confirm"
)

// Bar shows the outcome of the last action on the left and the key hints
// for the focused pane on the right. It holds no tea state of its own;
// the app drives it through the setters.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	focus     messages.Focus
	message   string
	noteCount int
	width     int
}

// NewBar creates a status bar. Nil styles or keymap select the defaults.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		focus:  messages.FocusSidebar,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateBusy:
		return s.styles.Muted.Render("Saving...")
	case StateDone:
		return s.styles.Success.Render(s.message)
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateConfirm:
		return s.styles.Warning.Render(s.message)
	case StateEditing:
		return s.styles.Normal.Render("Editing")
	case StateReady:
		if s.message != "" {
			return s.styles.Normal.Render(s.message)
		}
		if s.noteCount > 0 {
			return s.styles.Normal.Render(fmt.Sprintf("%d note%s", s.noteCount, plural(s.noteCount)))
		}
	}
	return s.styles.Muted.Render("Ready")
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding

	switch {
	case s.state == StateConfirm:
		bindings = s.keymap.ConfirmHelp()
	case s.state == StateEditing:
		bindings = s.keymap.FormHelp()
	case s.focus == messages.FocusPanel:
		bindings = s.keymap.PanelHelp()
	default:
		bindings = s.keymap.SidebarHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetFocus selects which pane's hints are shown.
func (s *Bar) SetFocus(focus messages.Focus) {
	s.focus = focus
}

// SetMessage sets the text shown for the done, confirm and error states.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetNoteCount sets the number of notes in the active notebook.
func (s *Bar) SetNoteCount(count int) {
	s.noteCount = count
}

// NoteCount returns the current note count.
func (s *Bar) NoteCount() int {
	return s.noteCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear returns to the ready state. The note count is kept.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
