// Package notes provides the note list view for the TUI.
package notes

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/jotter/internal/core/domain"
	"github.com/custodia-labs/jotter/internal/core/ports/driving"
)

// View shows every note, filtered by a title search input.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.Field
	list      *list.NoteList
	statusbar *status.Bar

	noteService driving.NoteService
	ctx         context.Context

	width         int
	height        int
	ready         bool
	err           error
	focusInput    bool         // true = typing a search, false = navigating notes
	pendingDelete *domain.Note // awaiting y/n confirmation
}

// NewView creates a new notes view.
func NewView(s *styles.Styles, km *keymap.KeyMap, noteService driving.NoteService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	in := input.NewSearchInput(s)
	in.Blur()

	bar := status.NewBar(s, km)
	bar.SetHints(km.NotesHelp())

	return &View{
		styles:      s,
		keymap:      km,
		input:       in,
		list:        list.NewNoteList(s),
		statusbar:   bar,
		noteService: noteService,
		ctx:         context.Background(),
		width:       80,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the notes.
func (v *View) Init() tea.Cmd {
	v.statusbar.SetState(status.StateLoading)
	return v.load(v.input.Value())
}

// Refresh reloads the notes for the current query.
func (v *View) Refresh() tea.Cmd {
	return v.load(v.input.Value())
}

// Update handles messages for the notes view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.NotesLoaded:
		v.handleNotesLoaded(msg)
		return v, nil

	case messages.NoteDeleted:
		if msg.Err != nil {
			v.fail(msg.Err)
			return v, nil
		}
		v.statusbar.Info(fmt.Sprintf("Deleted note %d", msg.ID))
		return v, v.Refresh()

	case messages.ErrorOccurred:
		v.fail(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.statusbar.State() == status.StateInfo {
		v.statusbar.Clear()
	}
	if v.pendingDelete != nil {
		return v.handleConfirmKey(msg)
	}
	if v.focusInput {
		return v.handleSearchKey(msg)
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }

	case keymap.Matches(msg.String(), v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }

	case keymap.Matches(msg.String(), v.keymap.Search):
		v.focusInput = true
		return v, v.input.Focus()

	case keymap.Matches(msg.String(), v.keymap.New):
		return v, func() tea.Msg { return messages.NoteSelected{} }

	case keymap.Matches(msg.String(), v.keymap.Edit):
		note := v.list.SelectedNote()
		if note == nil {
			return v, nil
		}
		selected := *note
		return v, func() tea.Msg { return messages.NoteSelected{Note: &selected} }

	case keymap.Matches(msg.String(), v.keymap.Delete):
		if note := v.list.SelectedNote(); note != nil {
			selected := *note
			v.pendingDelete = &selected
		}
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Back):
		// Esc in list mode clears an active filter
		if v.input.Value() != "" {
			v.input.Reset()
			return v, v.Refresh()
		}
		return v, nil
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// handleSearchKey processes keys while the search input has focus.
// Each edit reloads the list so results follow the typed prefix.
func (v *View) handleSearchKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEnter, tea.KeyDown:
		v.focusInput = false
		v.input.Blur()
		return v, nil
	case tea.KeyEsc:
		v.focusInput = false
		v.input.Blur()
		if v.input.Value() == "" {
			return v, nil
		}
		v.input.Reset()
		return v, v.Refresh()
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() == before {
		return v, cmd
	}
	return v, tea.Batch(cmd, v.load(v.input.Value()))
}

// handleConfirmKey answers the delete confirmation prompt.
func (v *View) handleConfirmKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	note := v.pendingDelete
	v.pendingDelete = nil

	switch msg.String() {
	case "y", "Y":
		return v, v.remove(note.ID)
	default:
		return v, nil
	}
}

// load lists notes matching query.
func (v *View) load(query string) tea.Cmd {
	return func() tea.Msg {
		if v.noteService == nil {
			return messages.ErrorOccurred{Err: ErrNoNoteService}
		}
		notes, err := v.noteService.List(v.ctx, query)
		return messages.NotesLoaded{Query: query, Notes: notes, Err: err}
	}
}

// remove deletes a note.
func (v *View) remove(id int64) tea.Cmd {
	return func() tea.Msg {
		if v.noteService == nil {
			return messages.ErrorOccurred{Err: ErrNoNoteService}
		}
		return messages.NoteDeleted{ID: id, Err: v.noteService.Remove(v.ctx, id)}
	}
}

// handleNotesLoaded updates the list, dropping results for a stale query.
func (v *View) handleNotesLoaded(msg messages.NotesLoaded) {
	if msg.Query != v.input.Value() {
		return
	}
	if msg.Err != nil {
		v.fail(msg.Err)
		return
	}

	v.err = nil
	v.list.SetNotes(msg.Notes)
	v.statusbar.SetNoteCount(len(msg.Notes))
	if v.statusbar.State() != status.StateInfo {
		v.statusbar.Clear()
	}
}

func (v *View) fail(err error) {
	v.err = err
	v.statusbar.Fail(err)
}

// View renders the notes view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	sections = append(sections, v.styles.Title.Render("Jotter"), "")
	sections = append(sections, v.input.View(), "")

	if v.pendingDelete != nil {
		prompt := fmt.Sprintf("Delete %q? (y/n)", v.pendingDelete.Title)
		sections = append(sections, v.styles.Error.Render(prompt), "")
	}

	sections = append(sections, v.list.View())

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-9) // header, input, status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Notes returns the notes shown.
func (v *View) Notes() []domain.Note {
	return v.list.Notes()
}

// SelectedNote returns the currently selected note.
func (v *View) SelectedNote() *domain.Note {
	return v.list.SelectedNote()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the search input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// ConfirmingDelete returns whether a delete awaits confirmation.
func (v *View) ConfirmingDelete() bool {
	return v.pendingDelete != nil
}

// Info shows a transient message in the status bar.
func (v *View) Info(message string) {
	v.statusbar.Info(message)
}

// StatusBar returns the view's status bar.
func (v *View) StatusBar() *status.Bar {
	return v.statusbar
}
