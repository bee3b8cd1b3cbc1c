package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/jotter/internal/core/domain"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
	Long:  `Add, list, search, show, edit, or delete notes.`,
}

var noteAddCmd = &cobra.Command{
	Use:   "add [title] [description]",
	Short: "Add a note",
	Long: `Adds a note. When the description is omitted it is read from stdin,
so you can pipe text into a new note:

  echo "milk, eggs" | jotter note add Groceries --colour blue`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNoteAdd,
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE:  runNoteList,
}

var noteSearchCmd = &cobra.Command{
	Use:   "search [prefix]",
	Short: "Find notes whose title starts with prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteSearch,
}

var noteShowCmd = &cobra.Command{
	Use:   "show [note-id]",
	Short: "Show a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteShow,
}

var noteEditCmd = &cobra.Command{
	Use:   "edit [note-id]",
	Short: "Edit a note",
	Long:  `Replaces the given fields of a note. Fields without a flag keep their current value.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteEdit,
}

var noteDeleteCmd = &cobra.Command{
	Use:     "delete [note-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	RunE:    runNoteDelete,
}

var (
	noteColour      string
	noteTitle       string
	noteDescription string
	noteJSON        bool
)

func init() {
	noteAddCmd.Flags().StringVarP(&noteColour, "colour", "c", "", "note colour: yellow, blue, red or #RRGGBB (default from settings)")

	noteEditCmd.Flags().StringVarP(&noteTitle, "title", "t", "", "new title")
	noteEditCmd.Flags().StringVarP(&noteDescription, "description", "d", "", "new description")
	noteEditCmd.Flags().StringVarP(&noteColour, "colour", "c", "", "new colour")

	noteListCmd.Flags().BoolVar(&noteJSON, "json", false, "output notes as JSON")
	noteSearchCmd.Flags().BoolVar(&noteJSON, "json", false, "output notes as JSON")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteSearchCmd)
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	rootCmd.AddCommand(noteCmd)
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	notes, err := noteService(cmd)
	if err != nil {
		return err
	}

	input := domain.NoteInput{Title: args[0]}
	if len(args) == 2 {
		input.Description = args[1]
	} else {
		input.Description, err = readPipedInput(cmd)
		if err != nil {
			return err
		}
	}

	if noteColour != "" {
		colour, err := domain.ParseColour(noteColour)
		if err != nil {
			return err
		}
		input.Colour = colour.Hex
	}

	id, err := notes.Add(commandContext(cmd), input)
	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}

	cmd.Printf("Added note %d\n", id)
	return nil
}

func runNoteList(cmd *cobra.Command, _ []string) error {
	return listNotes(cmd, "")
}

func runNoteSearch(cmd *cobra.Command, args []string) error {
	return listNotes(cmd, args[0])
}

func listNotes(cmd *cobra.Command, query string) error {
	notes, err := noteService(cmd)
	if err != nil {
		return err
	}

	results, err := notes.List(commandContext(cmd), query)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if noteJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal notes: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		cmd.Println("No notes available")
		return nil
	}

	cmd.Println("Notes:")
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s (%s)\n", results[i].ID, results[i].Title, domain.ColourName(results[i].Colour))
		cmd.Printf("      %s\n", firstLine(results[i].Description))
		cmd.Println()
	}
	cmd.Printf("Total: %d notes\n", len(results))
	return nil
}

func runNoteShow(cmd *cobra.Command, args []string) error {
	notes, err := noteService(cmd)
	if err != nil {
		return err
	}

	id, err := parseNoteID(args[0])
	if err != nil {
		return err
	}

	note, err := notes.Get(commandContext(cmd), id)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}

	cmd.Printf("Note: %d\n\n", note.ID)
	cmd.Printf("  Title:   %s\n", note.Title)
	cmd.Printf("  Colour:  %s (%s)\n", domain.ColourName(note.Colour), note.Colour)
	cmd.Println()
	cmd.Println(note.Description)
	return nil
}

func runNoteEdit(cmd *cobra.Command, args []string) error {
	notes, err := noteService(cmd)
	if err != nil {
		return err
	}

	id, err := parseNoteID(args[0])
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("title") && !flags.Changed("description") && !flags.Changed("colour") {
		return errors.New("nothing to change: pass --title, --description or --colour")
	}

	ctx := commandContext(cmd)
	note, err := notes.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}

	input := domain.NoteInput{Title: note.Title, Description: note.Description, Colour: note.Colour}
	if flags.Changed("title") {
		input.Title = noteTitle
	}
	if flags.Changed("description") {
		input.Description = noteDescription
	}
	if flags.Changed("colour") {
		colour, err := domain.ParseColour(noteColour)
		if err != nil {
			return err
		}
		input.Colour = colour.Hex
	}

	if err := notes.Edit(ctx, id, input); err != nil {
		return fmt.Errorf("failed to edit note: %w", err)
	}

	cmd.Printf("Updated note %d\n", id)
	return nil
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	notes, err := noteService(cmd)
	if err != nil {
		return err
	}

	id, err := parseNoteID(args[0])
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	if _, err := notes.Get(ctx, id); errors.Is(err, domain.ErrNotFound) {
		cmd.Printf("No note with id %d\n", id)
		return nil
	}

	if err := notes.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	cmd.Printf("Deleted note %d\n", id)
	return nil
}

// parseNoteID parses a positive note ID argument.
func parseNoteID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid note id %q", domain.ErrInvalidInput, arg)
	}
	return id, nil
}

// readPipedInput reads stdin when it is not an interactive terminal.
// Returns "" for a terminal so validation reports the missing description.
func readPipedInput(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// firstLine returns the first line of s, marking truncation.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
