// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/styles"
)

// Field wraps a bubbles textinput with a label and focus styling.
type Field struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewField creates a single-line input. The field starts blurred.
func NewField(s *styles.Styles, label, placeholder string) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 50

	return &Field{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     50,
	}
}

// NewSearchInput creates the focused title search input.
func NewSearchInput(s *styles.Styles) *Field {
	f := NewField(s, "Search: ", "Search titles...")
	f.textinput.Focus()
	return f
}

// Init initialises the field.
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the field.
func (f *Field) View() string {
	box := f.styles.InputField
	if f.textinput.Focused() {
		box = f.styles.FocusedField
	}
	input := box.Render(f.textinput.View())
	if f.label == "" {
		return input
	}
	label := f.styles.Title.Render(f.label)
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value and moves the cursor to its end.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
	f.textinput.CursorEnd()
}

// Focus sets focus on the input.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the width of the field.
func (f *Field) SetWidth(width int) {
	f.width = width
	// Account for label and padding
	inputWidth := width - lipgloss.Width(f.label) - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	f.textinput.Width = inputWidth
}

// Width returns the current width.
func (f *Field) Width() int {
	return f.width
}

// Reset clears the input.
func (f *Field) Reset() {
	f.textinput.Reset()
}

// Area wraps a bubbles textarea for multi-line text.
type Area struct {
	textarea textarea.Model
	styles   *styles.Styles
}

// NewArea creates a multi-line input. The area starts blurred.
func NewArea(s *styles.Styles, placeholder string) *Area {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(50)
	ta.SetHeight(6)
	ta.Blur()

	return &Area{textarea: ta, styles: s}
}

// Update handles input messages.
func (a *Area) Update(msg tea.Msg) (*Area, tea.Cmd) {
	var cmd tea.Cmd
	a.textarea, cmd = a.textarea.Update(msg)
	return a, cmd
}

// View renders the area.
func (a *Area) View() string {
	box := a.styles.InputField
	if a.textarea.Focused() {
		box = a.styles.FocusedField
	}
	return box.Render(a.textarea.View())
}

// Value returns the current text.
func (a *Area) Value() string {
	return a.textarea.Value()
}

// SetValue replaces the text.
func (a *Area) SetValue(value string) {
	a.textarea.SetValue(value)
}

// Focus sets focus on the area.
func (a *Area) Focus() tea.Cmd {
	return a.textarea.Focus()
}

// Blur removes focus from the area.
func (a *Area) Blur() {
	a.textarea.Blur()
}

// Focused returns whether the area is focused.
func (a *Area) Focused() bool {
	return a.textarea.Focused()
}

// SetSize sets the area dimensions.
func (a *Area) SetSize(width, height int) {
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}
	a.textarea.SetWidth(width)
	a.textarea.SetHeight(height)
}

// Reset clears the area.
func (a *Area) Reset() {
	a.textarea.Reset()
}
