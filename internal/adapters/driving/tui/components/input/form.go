// Package input provides text input components for the TUI.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/styles"
)

// Field limits.
const (
	nameCharLimit = 128
	textCharLimit = 4096
	defaultWidth  = 50
)

// Form is a small modal of labelled text inputs used for notebook and note
// editing. Enter advances to the next field and submits on the last one.
type Form struct {
	styles *styles.Styles
	kind   messages.FormKind
	target string
	labels []string
	fields []textinput.Model
	focus  int
	active bool
	width  int
}

// NewForm creates a closed form.
func NewForm(s *styles.Styles) *Form {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Form{
		styles: s,
		width:  defaultWidth,
	}
}

// Open shows the form for kind, pre-filled with values in field order.
// target is the id of the notebook or note being edited, if any.
func (f *Form) Open(kind messages.FormKind, target string, values ...string) tea.Cmd {
	f.kind = kind
	f.target = target
	f.labels = kind.Fields()
	f.fields = make([]textinput.Model, len(f.labels))
	f.focus = 0
	f.active = true

	for i, label := range f.labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = nameCharLimit
		if label == "Text" {
			ti.CharLimit = textCharLimit
		}
		ti.Width = f.inputWidth()
		if i < len(values) {
			ti.SetValue(values[i])
		}
		f.fields[i] = ti
	}

	if len(f.fields) == 0 {
		f.active = false
		return nil
	}
	return f.fields[0].Focus()
}

// Close hides the form and discards its inputs.
func (f *Form) Close() {
	f.active = false
	f.fields = nil
	f.labels = nil
	f.focus = 0
}

// Active returns whether the form is open.
func (f *Form) Active() bool {
	return f.active
}

// Kind returns what the open form edits.
func (f *Form) Kind() messages.FormKind {
	return f.kind
}

// Target returns the id of the record being edited.
func (f *Form) Target() string {
	return f.target
}

// FocusIndex returns the index of the focused field.
func (f *Form) FocusIndex() int {
	return f.focus
}

// Values returns the current input values in field order.
func (f *Form) Values() []string {
	values := make([]string, len(f.fields))
	for i := range f.fields {
		values[i] = f.fields[i].Value()
	}
	return values
}

// Update handles key input while the form is open.
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if !f.active {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			kind := f.kind
			f.Close()
			return f, func() tea.Msg {
				return messages.FormCancelled{Kind: kind}
			}

		case "tab", "down":
			return f, f.setFocus(f.focus + 1)

		case "shift+tab", "up":
			return f, f.setFocus(f.focus - 1)

		case "enter":
			if f.focus < len(f.fields)-1 {
				return f, f.setFocus(f.focus + 1)
			}
			submitted := messages.FormSubmitted{
				Kind:     f.kind,
				TargetID: f.target,
				Values:   f.Values(),
			}
			f.Close()
			return f, func() tea.Msg {
				return submitted
			}
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus], cmd = f.fields[f.focus].Update(msg)
	return f, cmd
}

// View renders the form.
func (f *Form) View() string {
	if !f.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(f.styles.Title.Render(f.kind.Title()))
	b.WriteString("\n")

	for i, label := range f.labels {
		style := f.styles.Muted
		if i == f.focus {
			style = f.styles.Normal
		}
		line := lipgloss.JoinHorizontal(lipgloss.Center,
			style.Width(7).Render(label+":"),
			f.styles.InputField.Render(f.fields[i].View()),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// SetWidth sets the width of the form.
func (f *Form) SetWidth(width int) {
	f.width = width
	for i := range f.fields {
		f.fields[i].Width = f.inputWidth()
	}
}

// Width returns the current width.
func (f *Form) Width() int {
	return f.width
}

// setFocus moves focus to field i, wrapping around.
func (f *Form) setFocus(i int) tea.Cmd {
	n := len(f.fields)
	if n == 0 {
		return nil
	}
	f.fields[f.focus].Blur()
	f.focus = ((i % n) + n) % n
	return f.fields[f.focus].Focus()
}

func (f *Form) inputWidth() int {
	// Account for label and border
	w := f.width - 14
	if w < 20 {
		w = 20
	}
	return w
}
