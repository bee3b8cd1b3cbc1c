package driving

import (
	"context"

	"github.com/custodia-labs/jotter/internal/core/domain"
)

// NoteService manages the user's notes.
type NoteService interface {
	// Add validates and stores a new note, returning its ID.
	// An empty colour is replaced by the configured default.
	Add(ctx context.Context, input domain.NoteInput) (int64, error)

	// List returns notes whose title starts with query,
	// or every note when query is blank.
	List(ctx context.Context, query string) ([]domain.Note, error)

	// Get retrieves a note by ID.
	Get(ctx context.Context, id int64) (*domain.Note, error)

	// Edit validates and replaces the fields of an existing note.
	Edit(ctx context.Context, id int64, input domain.NoteInput) error

	// Remove deletes a note.
	Remove(ctx context.Context, id int64) error
}
