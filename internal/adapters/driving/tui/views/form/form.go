// Package form provides the create/edit note view for the TUI.
package form

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/jotter/internal/core/domain"
	"github.com/custodia-labs/jotter/internal/core/ports/driving"
)

// ErrNoNoteService indicates that no note service was provided.
var ErrNoNoteService = errors.New("note service is required")

// MissingFieldsMessage is shown when saving without a title or description.
const MissingFieldsMessage = "Please enter a title and description."

// imageUnsupportedMessage is shown when the image placeholder is activated.
const imageUnsupportedMessage = "Image attachments are not supported yet."

// Field identifies a focusable element of the form.
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
	FieldColour
	FieldImage
	FieldSave
	FieldCancel
	fieldCount
)

// View edits a single note: title, description and colour.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	title       *input.Field
	description *input.Area
	statusbar   *status.Bar

	noteService driving.NoteService
	ctx         context.Context

	note          *domain.Note // nil while creating
	colours       []domain.Colour
	colourIdx     int
	defaultColour domain.Colour
	focus         Field
	message       string
	saving        bool

	width  int
	height int
}

// NewView creates a new form view.
func NewView(s *styles.Styles, km *keymap.KeyMap, noteService driving.NoteService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.FormHelp())

	v := &View{
		styles:        s,
		keymap:        km,
		title:         input.NewField(s, "", "Title"),
		description:   input.NewArea(s, "Description"),
		statusbar:     bar,
		noteService:   noteService,
		ctx:           context.Background(),
		colours:       domain.Palette(),
		defaultColour: domain.DefaultColour,
		width:         80,
		height:        24,
	}
	v.SetNote(nil)
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetDefaultColour sets the colour preselected for new notes.
func (v *View) SetDefaultColour(c domain.Colour) {
	v.defaultColour = c
	if v.note == nil {
		v.selectColour(c.Hex)
	}
}

// SetNote loads a note into the form. A nil note clears the form for a new one.
func (v *View) SetNote(note *domain.Note) tea.Cmd {
	v.note = note
	v.message = ""
	v.saving = false
	v.statusbar.Clear()
	v.colours = domain.Palette()

	if note == nil {
		v.title.Reset()
		v.description.Reset()
		v.selectColour(v.defaultColour.Hex)
	} else {
		v.title.SetValue(note.Title)
		v.description.SetValue(note.Description)
		v.selectColour(note.Colour)
	}

	return v.setFocus(FieldTitle)
}

// selectColour picks the swatch for hex, adding one for colours
// outside the palette so editing keeps them.
func (v *View) selectColour(hex string) {
	for i, c := range v.colours {
		if strings.EqualFold(c.Hex, hex) {
			v.colourIdx = i
			return
		}
	}
	parsed, err := domain.ParseColour(hex)
	if err != nil {
		v.colourIdx = 0
		return
	}
	v.colours = append(v.colours, parsed)
	v.colourIdx = len(v.colours) - 1
}

// setFocus moves focus to f, blurring the other inputs.
func (v *View) setFocus(f Field) tea.Cmd {
	v.focus = f
	v.title.Blur()
	v.description.Blur()

	switch f {
	case FieldTitle:
		return v.title.Focus()
	case FieldDescription:
		return v.description.Focus()
	default:
		return nil
	}
}

// Init focuses the title.
func (v *View) Init() tea.Cmd {
	return v.setFocus(FieldTitle)
}

// Update handles messages for the form view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.NoteSaved:
		v.saving = false
		if msg.Err != nil {
			v.statusbar.Fail(msg.Err)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.saving = false
		v.statusbar.Fail(msg.Err)
		return v, nil
	}

	return v.forward(msg)
}

// forward passes a message to the focused input.
func (v *View) forward(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	switch v.focus {
	case FieldTitle:
		v.title, cmd = v.title.Update(msg)
	case FieldDescription:
		v.description, cmd = v.description.Update(msg)
	case FieldColour, FieldImage, FieldSave, FieldCancel, fieldCount:
	}
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, backToNotes
	case keymap.Matches(key, v.keymap.Save):
		return v, v.save()
	case keymap.Matches(key, v.keymap.NextField):
		return v, v.setFocus((v.focus + 1) % fieldCount)
	case keymap.Matches(key, v.keymap.PrevField):
		return v, v.setFocus((v.focus + fieldCount - 1) % fieldCount)
	}

	switch v.focus {
	case FieldTitle:
		if msg.Type == tea.KeyEnter {
			return v, v.setFocus(FieldDescription)
		}
	case FieldColour:
		switch key {
		case "left", "h":
			v.colourIdx = (v.colourIdx + len(v.colours) - 1) % len(v.colours)
		case "right", "l", " ":
			v.colourIdx = (v.colourIdx + 1) % len(v.colours)
		case "enter":
			return v, v.setFocus(FieldSave)
		}
		return v, nil
	case FieldImage:
		if key == "enter" {
			v.message = imageUnsupportedMessage
		}
		return v, nil
	case FieldSave:
		if key == "enter" {
			return v, v.save()
		}
		return v, nil
	case FieldCancel:
		if key == "enter" {
			return v, backToNotes
		}
		return v, nil
	case FieldDescription, fieldCount:
	}

	return v.forward(msg)
}

func backToNotes() tea.Msg {
	return messages.ViewChanged{View: messages.ViewNotes}
}

// save validates the form and stores the note.
func (v *View) save() tea.Cmd {
	if v.saving {
		return nil
	}

	title := strings.TrimSpace(v.title.Value())
	description := strings.TrimSpace(v.description.Value())
	if title == "" || description == "" {
		v.message = MissingFieldsMessage
		return nil
	}
	v.message = ""

	input := domain.NoteInput{
		Title:       title,
		Description: description,
		Colour:      v.SelectedColour().Hex,
	}

	v.saving = true
	v.statusbar.SetState(status.StateLoading)
	note := v.note
	return func() tea.Msg {
		if v.noteService == nil {
			return messages.ErrorOccurred{Err: ErrNoNoteService}
		}
		if note == nil {
			id, err := v.noteService.Add(v.ctx, input)
			return messages.NoteSaved{ID: id, Created: true, Err: err}
		}
		err := v.noteService.Edit(v.ctx, note.ID, input)
		return messages.NoteSaved{ID: note.ID, Err: err}
	}
}

// View renders the form.
func (v *View) View() string {
	heading := "New note"
	if v.note != nil {
		heading = "Edit note"
	}

	sections := make([]string, 0, 16)
	sections = append(sections, v.styles.Title.Render(heading), "")

	sections = append(sections, v.label(FieldTitle, "Title"), v.title.View(), "")
	sections = append(sections, v.label(FieldDescription, "Description"), v.description.View(), "")
	sections = append(sections, v.label(FieldColour, "Colour"), v.renderSwatches(), "")
	sections = append(sections, v.renderButtons(), "")

	if v.message != "" {
		sections = append(sections, v.styles.Error.Render(v.message), "")
	}

	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) label(f Field, text string) string {
	if v.focus == f {
		return v.styles.Subtitle.Render(text)
	}
	return v.styles.Muted.Render(text)
}

// renderSwatches draws one block per colour, marking the chosen one.
func (v *View) renderSwatches() string {
	swatches := make([]string, 0, len(v.colours))
	for i, c := range v.colours {
		text := " "
		if i == v.colourIdx {
			text = "✓"
		}
		style := v.styles.Swatch(c.Hex).Width(5).Align(lipgloss.Center)
		swatches = append(swatches, style.Render(text))
	}

	row := strings.Join(swatches, " ")
	name := v.styles.Muted.Render("  " + v.SelectedColour().Label())
	return row + name
}

// renderButtons draws the image placeholder and the save and cancel buttons.
func (v *View) renderButtons() string {
	buttons := []struct {
		field Field
		text  string
	}{
		{FieldImage, "Add Image"},
		{FieldSave, "Save"},
		{FieldCancel, "Cancel"},
	}

	rendered := make([]string, 0, len(buttons))
	for _, b := range buttons {
		style := v.styles.Button
		if v.focus == b.field {
			style = v.styles.Selected.Padding(0, 2)
		}
		rendered = append(rendered, style.Render("["+b.text+"]"))
	}
	return strings.Join(rendered, " ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	v.title.SetWidth(width)
	v.description.SetSize(width-4, height-20)
	v.statusbar.SetWidth(width)
}

// Note returns the note being edited, or nil when creating.
func (v *View) Note() *domain.Note {
	return v.note
}

// Focus returns the focused field.
func (v *View) Focus() Field {
	return v.focus
}

// Title returns the title input value.
func (v *View) Title() string {
	return v.title.Value()
}

// Description returns the description input value.
func (v *View) Description() string {
	return v.description.Value()
}

// SelectedColour returns the chosen colour.
func (v *View) SelectedColour() domain.Colour {
	if v.colourIdx < 0 || v.colourIdx >= len(v.colours) {
		return v.defaultColour
	}
	return v.colours[v.colourIdx]
}

// Message returns the validation or info message shown, if any.
func (v *View) Message() string {
	return v.message
}

// StatusBar returns the view's status bar.
func (v *View) StatusBar() *status.Bar {
	return v.statusbar
}
