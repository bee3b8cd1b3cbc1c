package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/views/notes"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// notesView lists and searches notes.
	notesView *notes.View

	// formView creates and edits a note.
	formView *form.View

	// watcher reloads the list when the database changes. May be nil.
	watcher *Watcher

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		notesView:   notes.NewView(s, km, ports.Notes),
		formView:    form.NewView(s, km, ports.Notes),
		currentView: messages.ViewNotes,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.notesView.WithContext(ctx)
	a.formView.WithContext(ctx)
	return a
}

// WithWatcher reloads notes whenever w reports a change.
func (a *App) WithWatcher(w *Watcher) *App {
	a.watcher = w
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("jotter"),
		a.notesView.Init(),
		a.loadSettings(),
	}
	if a.watcher != nil {
		cmds = append(cmds, a.watcher.Wait())
	}
	return tea.Batch(cmds...)
}

// loadSettings fetches the default colour for new notes.
func (a *App) loadSettings() tea.Cmd {
	if a.ports.Settings == nil {
		return nil
	}
	settings := a.ports.Settings
	return func() tea.Msg {
		s, err := settings.Get()
		return messages.SettingsLoaded{Settings: s, Err: err}
	}
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewNotes:
			a.notesView, cmd = a.notesView.Update(msg)
		case messages.ViewForm:
			a.formView, cmd = a.formView.Update(msg)
		case messages.ViewHelp:
			// Any key leaves help
			a.currentView = messages.ViewNotes
		}
		return a, cmd

	case messages.NoteSelected:
		a.currentView = messages.ViewForm
		return a, a.formView.SetNote(msg.Note)

	case messages.NoteSaved:
		if msg.Err != nil {
			a.err = msg.Err
			a.formView, cmd = a.formView.Update(msg)
			return a, cmd
		}
		a.err = nil
		a.formView, _ = a.formView.Update(msg)
		a.currentView = messages.ViewNotes
		if msg.Created {
			a.notesView.Info(fmt.Sprintf("Added note %d", msg.ID))
		} else {
			a.notesView.Info(fmt.Sprintf("Updated note %d", msg.ID))
		}
		return a, a.notesView.Refresh()

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewNotes {
			return a, a.notesView.Refresh()
		}
		return a, nil

	case messages.NotesChanged:
		cmds := []tea.Cmd{a.notesView.Refresh()}
		if a.watcher != nil {
			cmds = append(cmds, a.watcher.Wait())
		}
		return a, tea.Batch(cmds...)

	case messages.NotesLoaded, messages.NoteDeleted:
		a.notesView, cmd = a.notesView.Update(msg)
		a.err = a.notesView.Err()
		return a, cmd

	case messages.SettingsLoaded:
		if msg.Err == nil && msg.Settings != nil {
			a.formView.SetDefaultColour(msg.Settings.DefaultColour)
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewNotes:
			a.notesView, cmd = a.notesView.Update(msg)
		case messages.ViewForm:
			a.formView, cmd = a.formView.Update(msg)
		case messages.ViewHelp:
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blinks) to the active view
	switch a.currentView {
	case messages.ViewNotes:
		a.notesView, cmd = a.notesView.Update(msg)
	case messages.ViewForm:
		a.formView, cmd = a.formView.Update(msg)
	case messages.ViewHelp:
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewForm:
		return a.formView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewNotes:
		return a.notesView.View()
	default:
		return a.notesView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Notes:
  j/k, ↑/↓    Navigate notes
  /           Search titles
  enter       Edit note
  n           New note
  d           Delete note (confirm with y)
  esc         Clear search
  q           Quit

Form:
  tab         Next field
  shift+tab   Previous field
  ←/→         Choose colour
  ctrl+s      Save
  esc         Cancel

Anywhere:
  ctrl+c      Quit

[any key] back to notes`
}

// Run starts the TUI on the alternate screen and blocks until it quits
// or the app's context is cancelled. opts are applied after the defaults.
func (a *App) Run(opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(a.ctx)}, opts...)
	_, err := tea.NewProgram(a, opts...).Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// NotesView returns the note list view.
func (a *App) NotesView() *notes.View {
	return a.notesView
}

// FormView returns the note form view.
func (a *App) FormView() *form.View {
	return a.formView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.notesView.SetDimensions(width, height)
	a.formView.SetDimensions(width, height)
}
