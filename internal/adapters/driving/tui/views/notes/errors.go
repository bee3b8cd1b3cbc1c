package notes

import "errors"

// Error definitions for the notes view.
var (
	// ErrNoNoteService indicates that no note service was provided.
	ErrNoNoteService = errors.New("note service is required")
)
