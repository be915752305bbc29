// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Surface is the background of cards and the status bar.
	Surface lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#E8B339"), // Amber
		Secondary:  lipgloss.Color("#7DA7D9"), // Soft blue
		Foreground: lipgloss.Color("#E6E1D6"), // Paper
		Muted:      lipgloss.Color("#8A857B"), // Pencil gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#4A463F"), // Border gray
		Surface:    lipgloss.Color("#23211E"), // Dark desk
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the panel heading.
	Title lipgloss.Style

	// Greeting style for the header line.
	Greeting lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Warning style for confirmation prompts.
	Warning lipgloss.Style

	// Success style for completed actions.
	Success lipgloss.Style

	// Sidebar wraps the notebook list.
	Sidebar lipgloss.Style

	// NavItem is an inactive notebook entry.
	NavItem lipgloss.Style

	// NavActive is the active notebook entry.
	NavActive lipgloss.Style

	// Panel wraps the note list.
	Panel lipgloss.Style

	// Card is an unselected note card.
	Card lipgloss.Style

	// CardSelected is the note card under the cursor.
	CardSelected lipgloss.Style

	// CardTitle is the title line of a card.
	CardTitle lipgloss.Style

	// Placeholder is the empty-state text.
	Placeholder lipgloss.Style

	// InputField style for form inputs.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Greeting: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Warning),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		NavItem: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		NavActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Surface).
			Background(theme.Primary),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(theme.Border).
			PaddingLeft(1),

		CardSelected: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(theme.Primary).
			PaddingLeft(1),

		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Placeholder: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Muted),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Surface).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Pane returns the border style for a pane, highlighted when focused.
func (s *Styles) Pane(base lipgloss.Style, focused bool) lipgloss.Style {
	if focused {
		return base.BorderForeground(s.theme.Primary)
	}
	return base
}
