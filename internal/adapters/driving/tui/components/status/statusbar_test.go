package status

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	bar := NewBar(s, km)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.NoteCount())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_Init(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())
}

func TestStatusBar_Update(t *testing.T) {
	bar := NewBar(nil, nil)

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_ViewNoteCount(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected string
	}{
		{"none", 0, "No notes"},
		{"one", 1, "1 note"},
		{"many", 3, "3 notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			bar.SetNoteCount(tt.count)

			assert.Contains(t, bar.View(), tt.expected)
		})
	}
}

func TestStatusBar_ViewLoading(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateLoading)

	assert.Contains(t, bar.View(), "Loading...")
}

func TestStatusBar_Fail(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	bar.Fail(errors.New("database is locked"))

	assert.Equal(t, StateError, bar.State())
	assert.Contains(t, bar.View(), "Error: database is locked")
}

func TestStatusBar_ErrorWithoutMessage(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)

	assert.Contains(t, bar.View(), "Error")
}

func TestStatusBar_Info(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	bar.Info("Note saved")

	assert.Equal(t, StateInfo, bar.State())
	assert.Contains(t, bar.View(), "Note saved")
}

func TestStatusBar_Hints(t *testing.T) {
	km := keymap.DefaultKeyMap()
	bar := NewBar(nil, km)
	bar.SetWidth(160)

	assert.Contains(t, bar.View(), "q: quit")

	bar.SetHints(km.FormHelp())
	view := bar.View()
	assert.Contains(t, view, "ctrl+s: save")
	assert.NotContains(t, view, "q: quit")
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.Info("Deleted")
	bar.SetNoteCount(2)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 2, bar.NoteCount())
}

func TestStatusBar_Width(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetWidth(42)

	assert.Equal(t, 42, bar.Width())
}
