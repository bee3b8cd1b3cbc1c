// Package memory provides in-memory implementations of driven ports.
// They are used by service and adapter tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/jotter/internal/core/domain"
	"github.com/custodia-labs/jotter/internal/core/ports/driven"
)

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

// NoteStore is an in-memory implementation of driven.NoteStore.
// Like the SQLite store it must be initialised before use, and
// IDs are never reused.
type NoteStore struct {
	mu          sync.RWMutex
	initialised bool
	lastID      int64
	notes       map[int64]domain.Note
}

// NewNoteStore creates a new, uninitialised in-memory note store.
func NewNoteStore() *NoteStore {
	return &NoteStore{
		notes: make(map[int64]domain.Note),
	}
}

// Initialise marks the store ready for use.
func (s *NoteStore) Initialise(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialised = true
	return nil
}

// Create stores a new note and returns its assigned ID.
func (s *NoteStore) Create(_ context.Context, title, description, colour string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialised {
		return 0, domain.ErrNotInitialised
	}
	s.lastID++
	s.notes[s.lastID] = domain.Note{ID: s.lastID, Title: title, Description: description, Colour: colour}
	return s.lastID, nil
}

// ReadAll returns every note ordered by ID.
func (s *NoteStore) ReadAll(_ context.Context) ([]domain.Note, error) {
	return s.filter(func(domain.Note) bool { return true })
}

// Search returns notes whose title starts with query, ignoring ASCII case
// as SQLite's LIKE does.
func (s *NoteStore) Search(_ context.Context, query string) ([]domain.Note, error) {
	prefix := strings.ToLower(query)
	return s.filter(func(n domain.Note) bool {
		return strings.HasPrefix(strings.ToLower(n.Title), prefix)
	})
}

// Get retrieves a note by ID.
func (s *NoteStore) Get(_ context.Context, id int64) (*domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialised {
		return nil, domain.ErrNotInitialised
	}
	note, ok := s.notes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &note, nil
}

// Update replaces the fields of a note. Missing IDs are ignored.
func (s *NoteStore) Update(_ context.Context, id int64, title, description, colour string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialised {
		return domain.ErrNotInitialised
	}
	if _, ok := s.notes[id]; ok {
		s.notes[id] = domain.Note{ID: id, Title: title, Description: description, Colour: colour}
	}
	return nil
}

// Delete removes a note. Missing IDs are ignored.
func (s *NoteStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialised {
		return domain.ErrNotInitialised
	}
	delete(s.notes, id)
	return nil
}

func (s *NoteStore) filter(keep func(domain.Note) bool) ([]domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialised {
		return nil, domain.ErrNotInitialised
	}
	result := make([]domain.Note, 0, len(s.notes))
	for _, note := range s.notes {
		if keep(note) {
			result = append(result, note)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
