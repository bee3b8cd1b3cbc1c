// Package styles holds the lipgloss styles shared by the TUI views.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the chrome palette. Note colours are not part of it:
// each note carries its own swatch.
type Theme struct {
	Primary    lipgloss.Color // headings, focused borders
	Secondary  lipgloss.Color // form labels
	Foreground lipgloss.Color
	Ink        lipgloss.Color // text drawn on note swatches
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
}

// DefaultTheme returns a dark theme with an amber accent.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    "#E5A50A",
		Secondary:  "#62A0EA",
		Foreground: "#DEDDDA",
		Ink:        "#241F31",
		Muted:      "#77767B",
		Success:    "#8FF0A4",
		Error:      "#F66151",
		Border:     "#5E5C64",
	}
}

// Styles are the rendered styles for a Theme.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Help     lipgloss.Style

	// InputField and FocusedField frame text inputs.
	InputField   lipgloss.Style
	FocusedField lipgloss.Style

	Button    lipgloss.Style
	StatusBar lipgloss.Style
	Border    lipgloss.Style
}

// NewStyles renders theme, falling back to DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	text := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	framed := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c)
	}

	return &Styles{
		theme: theme,

		Title:    text(theme.Primary).Bold(true),
		Subtitle: text(theme.Secondary).Bold(true),
		Normal:   text(theme.Foreground),
		Muted:    text(theme.Muted),
		Selected: text(theme.Ink).Background(theme.Primary).Bold(true),
		Error:    text(theme.Error),
		Success:  text(theme.Success),
		Help:     text(theme.Muted),

		InputField:   framed(theme.Border).Padding(0, 1),
		FocusedField: framed(theme.Primary).Padding(0, 1),

		Button:    text(theme.Foreground).Padding(0, 2),
		StatusBar: text(theme.Muted).Background(lipgloss.Color("#1D1D20")).Padding(0, 1),
		Border:    framed(theme.Border),
	}
}

// DefaultStyles returns styles for DefaultTheme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme the styles were rendered from.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Swatch paints text in ink on a note colour. hex is used as given;
// lipgloss ignores tokens it cannot parse.
func (s *Styles) Swatch(hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.theme.Ink).
		Background(lipgloss.Color(hex)).
		Padding(0, 1)
}
