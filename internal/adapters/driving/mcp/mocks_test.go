package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jotter/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/jotter/internal/core/domain"
	"github.com/custodia-labs/jotter/internal/core/services"
)

// mockNoteService is a mock implementation of driving.NoteService
// that fails every call with err.
type mockNoteService struct {
	err error
}

func (m *mockNoteService) Add(_ context.Context, _ domain.NoteInput) (int64, error) {
	return 0, m.err
}

func (m *mockNoteService) List(_ context.Context, _ string) ([]domain.Note, error) {
	return nil, m.err
}

func (m *mockNoteService) Get(_ context.Context, _ int64) (*domain.Note, error) {
	return nil, m.err
}

func (m *mockNoteService) Edit(_ context.Context, _ int64, _ domain.NoteInput) error {
	return m.err
}

func (m *mockNoteService) Remove(_ context.Context, _ int64) error {
	return m.err
}

// newTestServer returns a server over an in-memory note store seeded
// with the given titles.
func newTestServer(t *testing.T, titles ...string) (*Server, *services.NoteService) {
	t.Helper()
	ctx := context.Background()

	store := memory.NewNoteStore()
	require.NoError(t, store.Initialise(ctx))
	notes := services.NewNoteService(store, nil)
	for _, title := range titles {
		_, err := notes.Add(ctx, domain.NoteInput{Title: title, Description: title + " body"})
		require.NoError(t, err)
	}

	server, err := NewServer(&Ports{Notes: notes})
	require.NoError(t, err)
	return server, notes
}
