package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jotter/internal/core/domain"
)

// seedNotes adds notes with the given titles through the service.
func seedNotes(t *testing.T, s *Services, titles ...string) {
	t.Helper()
	for _, title := range titles {
		_, err := s.Notes.Add(context.Background(), domain.NoteInput{Title: title, Description: title + " body"})
		require.NoError(t, err)
	}
}

func TestNoteCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range noteCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, name := range []string{"add", "list", "search", "show", "edit", "delete"} {
		assert.True(t, names[name], "missing subcommand %q", name)
	}
	assert.Contains(t, noteDeleteCmd.Aliases, "rm")
}

func TestNoteAddCmd_HasColourFlag(t *testing.T) {
	flag := noteAddCmd.Flags().Lookup("colour")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
}

func TestNoteAdd(t *testing.T) {
	t.Run("adds note with default colour", func(t *testing.T) {
		s := setupTestServices(t)

		out, err := execute(t, "note", "add", "Groceries", "milk, eggs")

		require.NoError(t, err)
		assert.Contains(t, out, "Added note 1")

		note, err := s.Notes.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Groceries", note.Title)
		assert.Equal(t, "milk, eggs", note.Description)
		assert.Equal(t, domain.ColourYellow.Hex, note.Colour)
	})

	t.Run("uses configured default colour", func(t *testing.T) {
		s := setupTestServices(t)
		require.NoError(t, s.Settings.SetDefaultColour("red"))

		_, err := execute(t, "note", "add", "Gym", "legs")

		require.NoError(t, err)
		note, err := s.Notes.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, domain.ColourRed.Hex, note.Colour)
	})

	t.Run("colour flag", func(t *testing.T) {
		s := setupTestServices(t)

		_, err := execute(t, "note", "add", "Gym", "legs", "--colour", "blue")

		require.NoError(t, err)
		note, err := s.Notes.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, domain.ColourBlue.Hex, note.Colour)
	})

	t.Run("unknown colour is rejected", func(t *testing.T) {
		setupTestServices(t)

		_, err := execute(t, "note", "add", "Gym", "legs", "-c", "mauve")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("reads description from stdin", func(t *testing.T) {
		s := setupTestServices(t)
		rootCmd.SetIn(bytes.NewBufferString("piped text\n"))

		out, err := execute(t, "note", "add", "Piped")

		require.NoError(t, err)
		assert.Contains(t, out, "Added note 1")
		note, err := s.Notes.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "piped text", note.Description)
	})

	t.Run("empty description fails", func(t *testing.T) {
		setupTestServices(t)
		rootCmd.SetIn(new(bytes.Buffer))

		_, err := execute(t, "note", "add", "Empty")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to add note")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("requires a title", func(t *testing.T) {
		setupTestServices(t)

		_, err := execute(t, "note", "add")

		assert.Error(t, err)
	})
}

func TestNoteList(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		setupTestServices(t)

		out, err := execute(t, "note", "list")

		require.NoError(t, err)
		assert.Contains(t, out, "No notes available")
	})

	t.Run("lists notes in creation order", func(t *testing.T) {
		s := setupTestServices(t)
		seedNotes(t, s, "First", "Second")

		out, err := execute(t, "note", "list")

		require.NoError(t, err)
		assert.Contains(t, out, "[1] First (yellow)")
		assert.Contains(t, out, "[2] Second (yellow)")
		assert.Contains(t, out, "Total: 2 notes")
		assert.Less(t, bytes.Index([]byte(out), []byte("First")), bytes.Index([]byte(out), []byte("Second")))
	})

	t.Run("json output", func(t *testing.T) {
		s := setupTestServices(t)
		seedNotes(t, s, "First")

		out, err := execute(t, "note", "list", "--json")

		require.NoError(t, err)
		var notes []domain.Note
		require.NoError(t, json.Unmarshal([]byte(out), &notes))
		require.Len(t, notes, 1)
		assert.Equal(t, int64(1), notes[0].ID)
		assert.Equal(t, "First", notes[0].Title)
		assert.Contains(t, out, `"color"`)
	})
}

func TestNoteSearch(t *testing.T) {
	t.Run("matches title prefix", func(t *testing.T) {
		s := setupTestServices(t)
		seedNotes(t, s, "Groceries", "Gym", "Taxes")

		out, err := execute(t, "note", "search", "G")

		require.NoError(t, err)
		assert.Contains(t, out, "Groceries")
		assert.Contains(t, out, "Gym")
		assert.NotContains(t, out, "Taxes")
		assert.Contains(t, out, "Total: 2 notes")
	})

	t.Run("no match", func(t *testing.T) {
		s := setupTestServices(t)
		seedNotes(t, s, "Groceries")

		out, err := execute(t, "note", "search", "Z")

		require.NoError(t, err)
		assert.Contains(t, out, "No notes available")
	})

	t.Run("requires exactly one arg", func(t *testing.T) {
		setupTestServices(t)

		_, err := execute(t, "note", "search")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "accepts 1 arg(s)")
	})
}

func TestNoteShow(t *testing.T) {
	t.Run("shows note", func(t *testing.T) {
		s := setupTestServices(t)
		seedNotes(t, s, "Groceries")

		out, err := execute(t, "note", "show", "1")

		require.NoError(t, err)
		assert.Contains(t, out, "Note: 1")
		assert.Contains(t, out, "Title:   Groceries")
		assert.Contains(t, out, "Colour:  yellow (#FFFF99)")
		assert.Contains(t, out, "Groceries body")
	})

	t.Run("missing note", func(t *testing.T) {
		setupTestServices(t)

		_, err := execute(t, "note", "show", "9")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		setupTestServices(t)

		_, err := execute(t, "note", "show", "abc")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestNoteEdit(t *testing.T) {
	t.Run("changes only given fields", func(t *testing.T) {
		s := setupTestServices(t)
		seedNotes(t, s, "Gym")

		out, err := execute(t, "note", "edit", "1", "--title", "Gym day", "-c", "red")

		require.NoError(t, err)
		assert.Contains(t, out, "Updated note 1")

		note, err := s.Notes.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Gym day", note.Title)
		assert.Equal(t, "Gym body", note.Description)
		assert.Equal(t, domain.ColourRed.Hex, note.Colour)
	})

	t.Run("requires a flag", func(t *testing.T) {
		s := setupTestServices(t)
		seedNotes(t, s, "Gym")

		_, err := execute(t, "note", "edit", "1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "nothing to change")
	})

	t.Run("missing note", func(t *testing.T) {
		setupTestServices(t)

		_, err := execute(t, "note", "edit", "4", "-t", "x")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestNoteDelete(t *testing.T) {
	t.Run("deletes note", func(t *testing.T) {
		s := setupTestServices(t)
		seedNotes(t, s, "Gym")

		out, err := execute(t, "note", "delete", "1")

		require.NoError(t, err)
		assert.Contains(t, out, "Deleted note 1")
		_, err = s.Notes.Get(context.Background(), 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing note is reported, not an error", func(t *testing.T) {
		setupTestServices(t)

		out, err := execute(t, "note", "rm", "3")

		require.NoError(t, err)
		assert.Contains(t, out, "No note with id 3")
	})
}

func TestParseNoteID(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"x", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseNoteID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "one line", firstLine("one line"))
	assert.Equal(t, "first ...", firstLine("first\nsecond"))
	assert.Equal(t, "", firstLine(""))
}
