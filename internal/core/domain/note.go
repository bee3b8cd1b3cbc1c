package domain

import "strings"

// Note is a user-authored record with a title, description and
// display colour. Notes are flat and independent of each other.
type Note struct {
	// ID is assigned by the store on creation and never reused.
	ID int64 `json:"id"`

	// Title is the note heading.
	Title string `json:"title"`

	// Description is the note body.
	Description string `json:"description"`

	// Colour is an opaque display token, usually a hex string.
	// Stores never interpret it.
	Colour string `json:"color"`
}

// NoteInput holds the mutable fields of a note, as submitted by a shell
// when creating or editing.
type NoteInput struct {
	Title       string
	Description string
	Colour      string
}

// Validate checks that title and description are not blank.
// The colour is not checked; an empty colour means "use the default".
func (in NoteInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(in.Description) == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	return nil
}

// ValidationError describes a rejected note field.
// It matches ErrInvalidInput under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
