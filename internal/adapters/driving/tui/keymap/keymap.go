// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Up moves to the previous notebook or note.
	Up key.Binding

	// Down moves to the next notebook or note.
	Down key.Binding

	// SwitchPane moves focus between the sidebar and the note panel.
	SwitchPane key.Binding

	// NewNotebook opens the new notebook form.
	NewNotebook key.Binding

	// RenameNotebook opens the rename form for the active notebook.
	RenameNotebook key.Binding

	// DeleteNotebook asks to delete the active notebook.
	DeleteNotebook key.Binding

	// AddNote opens the new note form.
	AddNote key.Binding

	// EditNote opens the edit form for the selected note.
	EditNote key.Binding

	// DeleteNote asks to delete the selected note.
	DeleteNote key.Binding

	// Confirm accepts a confirmation prompt.
	Confirm key.Binding

	// Deny rejects a confirmation prompt.
	Deny key.Binding

	// Cancel closes the open form.
	Cancel key.Binding

	// Submit advances through a form and saves it on the last field.
	Submit key.Binding

	// NextField moves to the next form field.
	NextField key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		NewNotebook: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new notebook"),
		),
		RenameNotebook: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		DeleteNotebook: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete notebook"),
		),
		AddNote: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add note"),
		),
		EditNote: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		DeleteNote: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete note"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "no"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next/save"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next field"),
		),
	}
}

// SidebarHelp returns keybindings shown while the sidebar has focus.
func (k *KeyMap) SidebarHelp() []key.Binding {
	return []key.Binding{k.NewNotebook, k.RenameNotebook, k.DeleteNotebook, k.AddNote, k.SwitchPane, k.Quit}
}

// PanelHelp returns keybindings shown while the note panel has focus.
func (k *KeyMap) PanelHelp() []key.Binding {
	return []key.Binding{k.AddNote, k.EditNote, k.DeleteNote, k.SwitchPane, k.Quit}
}

// FormHelp returns keybindings shown while a form is open.
func (k *KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextField, k.Cancel}
}

// ConfirmHelp returns keybindings shown while a confirmation is pending.
func (k *KeyMap) ConfirmHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Deny}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.SwitchPane},
		{k.NewNotebook, k.RenameNotebook, k.DeleteNotebook},
		{k.AddNote, k.EditNote, k.DeleteNote},
		{k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
