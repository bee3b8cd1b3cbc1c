package form

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/jotter/internal/core/domain"
)

// MockNoteService implements driving.NoteService for testing.
type MockNoteService struct {
	AddFunc  func(ctx context.Context, input domain.NoteInput) (int64, error)
	EditFunc func(ctx context.Context, id int64, input domain.NoteInput) error
}

func (m *MockNoteService) Add(ctx context.Context, input domain.NoteInput) (int64, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, input)
	}
	return 1, nil
}

func (m *MockNoteService) List(_ context.Context, _ string) ([]domain.Note, error) {
	return []domain.Note{}, nil
}

func (m *MockNoteService) Get(_ context.Context, _ int64) (*domain.Note, error) {
	return nil, domain.ErrNotFound
}

func (m *MockNoteService) Edit(ctx context.Context, id int64, input domain.NoteInput) error {
	if m.EditFunc != nil {
		return m.EditFunc(ctx, id, input)
	}
	return nil
}

func (m *MockNoteService) Remove(_ context.Context, _ int64) error {
	return nil
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tab() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyTab}
}

func ctrlS() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyCtrlS}
}

// fill types a title and description into a new-note form.
func fill(v *View, title, description string) *View {
	v, _ = v.Update(keyRunes(title))
	v, _ = v.Update(tab())
	v, _ = v.Update(keyRunes(description))
	return v
}

func TestNewView(t *testing.T) {
	view := NewView(nil, nil, &MockNoteService{})

	require.NotNil(t, view)
	assert.Nil(t, view.Note())
	assert.Equal(t, FieldTitle, view.Focus())
	assert.Equal(t, domain.ColourYellow, view.SelectedColour())
	assert.Equal(t, "", view.Title())
}

func TestView_Init(t *testing.T) {
	view := NewView(nil, nil, nil)

	assert.NotNil(t, view.Init())
	assert.Equal(t, FieldTitle, view.Focus())
}

func TestView_SetNoteLoadsFields(t *testing.T) {
	view := NewView(nil, nil, nil)
	note := &domain.Note{ID: 4, Title: "Gym", Description: "legs", Colour: "#99CCFF"}

	view.SetNote(note)

	assert.Equal(t, note, view.Note())
	assert.Equal(t, "Gym", view.Title())
	assert.Equal(t, "legs", view.Description())
	assert.Equal(t, domain.ColourBlue, view.SelectedColour())
	assert.Contains(t, view.View(), "Edit note")
}

func TestView_SetNoteKeepsCustomColour(t *testing.T) {
	view := NewView(nil, nil, nil)

	view.SetNote(&domain.Note{ID: 1, Title: "a", Description: "b", Colour: "#123456"})

	assert.Equal(t, "#123456", view.SelectedColour().Hex)
	assert.Len(t, view.colours, 4)

	view.SetNote(nil)
	assert.Len(t, view.colours, 3)
}

func TestView_SetNoteNilClearsForm(t *testing.T) {
	view := NewView(nil, nil, nil)
	view.SetNote(&domain.Note{ID: 4, Title: "Gym", Description: "legs", Colour: "#FF9999"})

	view.SetNote(nil)

	assert.Nil(t, view.Note())
	assert.Equal(t, "", view.Title())
	assert.Equal(t, "", view.Description())
	assert.Equal(t, domain.ColourYellow, view.SelectedColour())
	assert.Contains(t, view.View(), "New note")
}

func TestView_SetDefaultColour(t *testing.T) {
	view := NewView(nil, nil, nil)

	view.SetDefaultColour(domain.ColourRed)
	assert.Equal(t, domain.ColourRed, view.SelectedColour())

	view.SetNote(nil)
	assert.Equal(t, domain.ColourRed, view.SelectedColour())
}

func TestView_SetDefaultColourLeavesEditedNote(t *testing.T) {
	view := NewView(nil, nil, nil)
	view.SetNote(&domain.Note{ID: 4, Title: "Gym", Description: "legs", Colour: "#99CCFF"})

	view.SetDefaultColour(domain.ColourRed)

	assert.Equal(t, domain.ColourBlue, view.SelectedColour())
}

func TestView_TabCyclesFields(t *testing.T) {
	view := NewView(nil, nil, nil)

	expected := []Field{FieldDescription, FieldColour, FieldImage, FieldSave, FieldCancel, FieldTitle}
	for _, f := range expected {
		view, _ = view.Update(tab())
		assert.Equal(t, f, view.Focus())
	}

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldCancel, view.Focus())
}

func TestView_EnterOnTitleMovesToDescription(t *testing.T) {
	view := NewView(nil, nil, nil)

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, FieldDescription, view.Focus())
}

func TestView_TypingGoesToFocusedField(t *testing.T) {
	view := fill(NewView(nil, nil, nil), "Groceries", "milk")

	assert.Equal(t, "Groceries", view.Title())
	assert.Equal(t, "milk", view.Description())
}

func TestView_ColourSelection(t *testing.T) {
	view := NewView(nil, nil, nil)
	view, _ = view.Update(tab())
	view, _ = view.Update(tab())
	require.Equal(t, FieldColour, view.Focus())

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, domain.ColourBlue, view.SelectedColour())

	view, _ = view.Update(keyRunes("l"))
	assert.Equal(t, domain.ColourRed, view.SelectedColour())

	view, _ = view.Update(keyRunes("l"))
	assert.Equal(t, domain.ColourYellow, view.SelectedColour())

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, domain.ColourRed, view.SelectedColour())
	assert.Contains(t, view.View(), "Red")

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, FieldSave, view.Focus())
}

func TestView_ImagePlaceholderIsInert(t *testing.T) {
	view := NewView(nil, nil, nil)
	for view.Focus() != FieldImage {
		view, _ = view.Update(tab())
	}

	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, imageUnsupportedMessage, view.Message())
	assert.Contains(t, view.View(), "Add Image")
}

func TestView_SaveRequiresTitleAndDescription(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
	}{
		{"both empty", "", ""},
		{"missing title", "", "milk"},
		{"missing description", "Groceries", ""},
		{"whitespace only", "   ", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svc := &MockNoteService{
				AddFunc: func(_ context.Context, _ domain.NoteInput) (int64, error) {
					called = true
					return 1, nil
				},
			}
			view := fill(NewView(nil, nil, svc), tt.title, tt.description)

			view, cmd := view.Update(ctrlS())

			assert.Nil(t, cmd)
			assert.False(t, called)
			assert.Equal(t, MissingFieldsMessage, view.Message())
			assert.Contains(t, view.View(), MissingFieldsMessage)
		})
	}
}

func TestView_SaveCreatesNote(t *testing.T) {
	var got domain.NoteInput
	svc := &MockNoteService{
		AddFunc: func(_ context.Context, input domain.NoteInput) (int64, error) {
			got = input
			return 7, nil
		},
	}
	view := fill(NewView(nil, nil, svc), " Groceries ", "milk")

	view, cmd := view.Update(ctrlS())
	require.NotNil(t, cmd)
	assert.Equal(t, status.StateLoading, view.StatusBar().State())

	msg := cmd()
	assert.Equal(t, messages.NoteSaved{ID: 7, Created: true}, msg)
	assert.Equal(t, domain.NoteInput{Title: "Groceries", Description: "milk", Colour: "#FFFF99"}, got)
}

func TestView_SaveTwiceWhileSaving(t *testing.T) {
	view := fill(NewView(nil, nil, &MockNoteService{}), "a", "b")

	view, cmd := view.Update(ctrlS())
	require.NotNil(t, cmd)

	_, cmd = view.Update(ctrlS())
	assert.Nil(t, cmd)
}

func TestView_SaveButton(t *testing.T) {
	view := fill(NewView(nil, nil, &MockNoteService{}), "a", "b")
	for view.Focus() != FieldSave {
		view, _ = view.Update(tab())
	}

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	saved, ok := cmd().(messages.NoteSaved)
	require.True(t, ok)
	assert.True(t, saved.Created)
}

func TestView_SaveEditsNote(t *testing.T) {
	var gotID int64
	var got domain.NoteInput
	svc := &MockNoteService{
		EditFunc: func(_ context.Context, id int64, input domain.NoteInput) error {
			gotID = id
			got = input
			return nil
		},
	}
	view := NewView(nil, nil, svc)
	view.SetNote(&domain.Note{ID: 3, Title: "Gym", Description: "legs", Colour: "#99CCFF"})

	view, _ = view.Update(keyRunes("!"))
	_, cmd := view.Update(ctrlS())
	require.NotNil(t, cmd)

	assert.Equal(t, messages.NoteSaved{ID: 3}, cmd())
	assert.Equal(t, int64(3), gotID)
	assert.Equal(t, "Gym!", got.Title)
	assert.Equal(t, "#99CCFF", got.Colour)
}

func TestView_SaveWithoutService(t *testing.T) {
	view := fill(NewView(nil, nil, nil), "a", "b")

	_, cmd := view.Update(ctrlS())
	require.NotNil(t, cmd)

	errMsg, ok := cmd().(messages.ErrorOccurred)
	require.True(t, ok)
	assert.ErrorIs(t, errMsg.Err, ErrNoNoteService)
}

func TestView_SaveFailedShowsError(t *testing.T) {
	view := fill(NewView(nil, nil, &MockNoteService{}), "a", "b")
	view, _ = view.Update(ctrlS())

	view, _ = view.Update(messages.NoteSaved{Err: errors.New("disk full")})

	assert.Equal(t, status.StateError, view.StatusBar().State())
	assert.Contains(t, view.View(), "disk full")

	// Saving is allowed again after a failure
	_, cmd := view.Update(ctrlS())
	assert.NotNil(t, cmd)
}

func TestView_EscCancels(t *testing.T) {
	view := NewView(nil, nil, nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewNotes}, cmd())
}

func TestView_CancelButton(t *testing.T) {
	view := NewView(nil, nil, nil)
	for view.Focus() != FieldCancel {
		view, _ = view.Update(tab())
	}

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewNotes}, cmd())
}

func TestView_WindowSize(t *testing.T) {
	view := NewView(nil, nil, nil)

	view, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Nil(t, cmd)
	assert.Equal(t, 100, view.StatusBar().Width())
}
