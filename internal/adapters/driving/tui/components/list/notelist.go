// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/jotter/internal/core/domain"
)

// NoteList displays notes in a navigable list, each on its colour.
type NoteList struct {
	notes    []domain.Note
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewNoteList creates a new note list component.
func NewNoteList(s *styles.Styles) *NoteList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &NoteList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the note list.
func (l *NoteList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *NoteList) Update(msg tea.Msg) (*NoteList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the note list.
func (l *NoteList) View() string {
	if len(l.notes) == 0 {
		return l.styles.Muted.Render("No notes available")
	}

	// Each note takes two lines plus a spacer
	visibleCount := l.height / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.notes) {
		end = len(l.notes)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderNote(i, &l.notes[i]))
	}

	return strings.Join(lines, "\n\n")
}

// renderNote formats a single note: a title bar on the note's colour
// followed by the first line of its description.
func (l *NoteList) renderNote(index int, note *domain.Note) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	maxLen := l.width - 12
	if maxLen < 10 {
		maxLen = 10
	}

	title := truncate(note.Title, maxLen)
	swatch := l.styles.Swatch(note.Colour).Width(maxLen + 2)
	if index == l.selected {
		swatch = swatch.Bold(true)
	}
	titleLine := l.styles.Normal.Render(indicator) + swatch.Render(title) +
		l.styles.Muted.Render(fmt.Sprintf(" #%d", note.ID))

	preview := note.Description
	if i := strings.IndexByte(preview, '\n'); i >= 0 {
		preview = preview[:i]
	}
	previewLine := l.styles.Muted.Render("    " + truncate(preview, maxLen))

	return titleLine + "\n" + previewLine
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// SetNotes replaces the notes, keeping the selection in range.
func (l *NoteList) SetNotes(notes []domain.Note) {
	l.notes = notes
	if l.selected >= len(notes) {
		l.selected = len(notes) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Notes returns the current notes.
func (l *NoteList) Notes() []domain.Note {
	return l.notes
}

// Selected returns the index of the selected note.
func (l *NoteList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *NoteList) SetSelected(index int) {
	if index >= 0 && index < len(l.notes) {
		l.selected = index
	}
}

// SelectedNote returns the currently selected note, or nil if none.
func (l *NoteList) SelectedNote() *domain.Note {
	if len(l.notes) == 0 || l.selected < 0 || l.selected >= len(l.notes) {
		return nil
	}
	return &l.notes[l.selected]
}

// MoveUp moves selection up.
func (l *NoteList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *NoteList) MoveDown() {
	if l.selected < len(l.notes)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *NoteList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of notes.
func (l *NoteList) Count() int {
	return len(l.notes)
}

// IsEmpty returns whether the list is empty.
func (l *NoteList) IsEmpty() bool {
	return len(l.notes) == 0
}
