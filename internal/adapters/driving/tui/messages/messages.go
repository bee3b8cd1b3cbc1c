// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/jotter/internal/core/domain"
)

// QueryChanged is sent when the search input changes.
type QueryChanged struct {
	Query string
}

// NotesLoaded carries notes from the service.
type NotesLoaded struct {
	Query string
	Notes []domain.Note
	Err   error
}

// NotesChanged is sent when the database changes on disk,
// for example when another process adds a note.
type NotesChanged struct{}

// NoteSelected opens the form for a note. A nil Note starts a new one.
type NoteSelected struct {
	Note *domain.Note
}

// NoteSaved signals a note was created or updated.
type NoteSaved struct {
	ID      int64
	Created bool
	Err     error
}

// NoteDeleted signals a note was deleted.
type NoteDeleted struct {
	ID  int64
	Err error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewNotes is the note list with its search input.
	ViewNotes ViewType = iota
	// ViewForm is the create/edit note form.
	ViewForm
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewNotes:
		return "notes"
	case ViewForm:
		return "form"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.Settings
	Err      error
}
