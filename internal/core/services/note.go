package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/jotter/internal/core/domain"
	"github.com/custodia-labs/jotter/internal/core/ports/driven"
	"github.com/custodia-labs/jotter/internal/core/ports/driving"
	"github.com/custodia-labs/jotter/internal/logger"
)

// Ensure NoteService implements the interface.
var _ driving.NoteService = (*NoteService)(nil)

// NoteService manages notes. It validates input before it reaches
// the store, which accepts any strings.
type NoteService struct {
	noteStore driven.NoteStore
	settings  driving.SettingsService
}

// NewNoteService creates a new note service.
// settings may be nil, in which case domain.DefaultColour is used.
func NewNoteService(noteStore driven.NoteStore, settings driving.SettingsService) *NoteService {
	return &NoteService{
		noteStore: noteStore,
		settings:  settings,
	}
}

// Add validates and stores a new note.
func (s *NoteService) Add(ctx context.Context, input domain.NoteInput) (int64, error) {
	if s.noteStore == nil {
		return 0, domain.ErrNotImplemented
	}
	if err := input.Validate(); err != nil {
		return 0, err
	}

	id, err := s.noteStore.Create(ctx, input.Title, input.Description, s.colourOrDefault(input.Colour))
	if err != nil {
		return 0, fmt.Errorf("adding note: %w", err)
	}
	return id, nil
}

// List returns every note for a blank query, otherwise the notes whose
// title starts with query.
func (s *NoteService) List(ctx context.Context, query string) ([]domain.Note, error) {
	if s.noteStore == nil {
		return nil, domain.ErrNotImplemented
	}

	if strings.TrimSpace(query) == "" {
		return s.noteStore.ReadAll(ctx)
	}

	logger.Debug("searching notes with prefix %q", query)
	return s.noteStore.Search(ctx, query)
}

// Get retrieves a note by ID.
func (s *NoteService) Get(ctx context.Context, id int64) (*domain.Note, error) {
	if s.noteStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.noteStore.Get(ctx, id)
}

// Edit validates and replaces all fields of a note.
// Editing a note that does not exist is not an error.
func (s *NoteService) Edit(ctx context.Context, id int64, input domain.NoteInput) error {
	if s.noteStore == nil {
		return domain.ErrNotImplemented
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.noteStore.Update(ctx, id, input.Title, input.Description, s.colourOrDefault(input.Colour)); err != nil {
		return fmt.Errorf("updating note %d: %w", id, err)
	}
	return nil
}

// Remove deletes a note. Removing a missing note is not an error.
func (s *NoteService) Remove(ctx context.Context, id int64) error {
	if s.noteStore == nil {
		return domain.ErrNotImplemented
	}
	if err := s.noteStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting note %d: %w", id, err)
	}
	return nil
}

// colourOrDefault returns colour, or the configured default when empty.
func (s *NoteService) colourOrDefault(colour string) string {
	if colour != "" {
		return colour
	}
	if s.settings != nil {
		if settings, err := s.settings.Get(); err == nil {
			return settings.DefaultColour.Hex
		}
	}
	return domain.DefaultColour.Hex
}
