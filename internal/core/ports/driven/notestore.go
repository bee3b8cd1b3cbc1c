package driven

import (
	"context"

	"github.com/custodia-labs/jotter/internal/core/domain"
)

// NoteStore persists notes in a single local table.
// Backed by SQLite for durable storage.
//
// Every operation other than Initialise fails with domain.ErrNotInitialised
// until Initialise has completed. Engine failures are reported as
// *domain.StorageError.
type NoteStore interface {
	// Initialise opens the backing storage and ensures the schema exists.
	// Safe to call more than once.
	Initialise(ctx context.Context) error

	// Create stores a new note and returns its assigned ID.
	Create(ctx context.Context, title, description, colour string) (int64, error)

	// ReadAll returns every note in insertion order.
	ReadAll(ctx context.Context) ([]domain.Note, error)

	// Search returns notes whose title starts with query.
	Search(ctx context.Context, query string) ([]domain.Note, error)

	// Get retrieves a note by ID.
	// Returns domain.ErrNotFound if no such note exists.
	Get(ctx context.Context, id int64) (*domain.Note, error)

	// Update replaces title, description and colour of a note.
	// Updating a missing ID is a silent no-op.
	Update(ctx context.Context, id int64, title, description, colour string) error

	// Delete removes a note.
	// Deleting a missing ID is a silent no-op.
	Delete(ctx context.Context, id int64) error
}
