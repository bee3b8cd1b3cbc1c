package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/jotter/internal/core/domain"
)

// ListNotesInput is the input schema for the list_notes tool.
type ListNotesInput struct {
	Query string `json:"query,omitempty" jsonschema:"only return notes whose title starts with this text"`
}

// ListNotesOutput is the output schema for the list_notes tool.
type ListNotesOutput struct {
	Notes []NoteOutput `json:"notes"`
	Count int          `json:"count"`
}

// NoteOutput represents a single note.
type NoteOutput struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Colour      string `json:"color"`
}

// CreateNoteInput is the input schema for the create_note tool.
type CreateNoteInput struct {
	Title       string `json:"title" jsonschema:"the note title"`
	Description string `json:"description" jsonschema:"the note body"`
	Colour      string `json:"color,omitempty" jsonschema:"yellow, blue, red or a #RRGGBB hex value (default from settings)"`
}

// UpdateNoteInput is the input schema for the update_note tool.
// Empty fields keep their current value.
type UpdateNoteInput struct {
	ID          int64  `json:"id" jsonschema:"the ID of the note to update"`
	Title       string `json:"title,omitempty" jsonschema:"the new title"`
	Description string `json:"description,omitempty" jsonschema:"the new body"`
	Colour      string `json:"color,omitempty" jsonschema:"the new colour"`
}

// DeleteNoteInput is the input schema for the delete_note tool.
type DeleteNoteInput struct {
	ID int64 `json:"id" jsonschema:"the ID of the note to delete"`
}

// DeleteNoteOutput is the output schema for the delete_note tool.
type DeleteNoteOutput struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_notes",
		Description: "List notes, optionally filtered by title prefix",
	}, s.handleListNotes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_note",
		Description: "Create a note and return it with its ID",
	}, s.handleCreateNote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_note",
		Description: "Change the title, description or colour of a note",
	}, s.handleUpdateNote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note by ID",
	}, s.handleDeleteNote)
}

// handleListNotes handles the list_notes tool invocation.
func (s *Server) handleListNotes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListNotesInput,
) (*mcp.CallToolResult, ListNotesOutput, error) {
	notes, err := s.ports.Notes.List(ctx, input.Query)
	if err != nil {
		return nil, ListNotesOutput{}, err
	}

	output := ListNotesOutput{
		Notes: make([]NoteOutput, len(notes)),
		Count: len(notes),
	}
	for i := range notes {
		output.Notes[i] = toOutput(&notes[i])
	}

	return nil, output, nil
}

// handleCreateNote handles the create_note tool invocation.
func (s *Server) handleCreateNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateNoteInput,
) (*mcp.CallToolResult, NoteOutput, error) {
	colour, err := resolveColour(input.Colour)
	if err != nil {
		return nil, NoteOutput{}, err
	}

	id, err := s.ports.Notes.Add(ctx, domain.NoteInput{
		Title:       input.Title,
		Description: input.Description,
		Colour:      colour,
	})
	if err != nil {
		return nil, NoteOutput{}, err
	}

	note, err := s.ports.Notes.Get(ctx, id)
	if err != nil {
		return nil, NoteOutput{}, fmt.Errorf("reading created note: %w", err)
	}

	return nil, toOutput(note), nil
}

// handleUpdateNote handles the update_note tool invocation.
func (s *Server) handleUpdateNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateNoteInput,
) (*mcp.CallToolResult, NoteOutput, error) {
	note, err := s.ports.Notes.Get(ctx, input.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, NoteOutput{}, fmt.Errorf("no note with id %d", input.ID)
	}
	if err != nil {
		return nil, NoteOutput{}, err
	}

	update := domain.NoteInput{Title: note.Title, Description: note.Description, Colour: note.Colour}
	if input.Title != "" {
		update.Title = input.Title
	}
	if input.Description != "" {
		update.Description = input.Description
	}
	if input.Colour != "" {
		if update.Colour, err = resolveColour(input.Colour); err != nil {
			return nil, NoteOutput{}, err
		}
	}

	if err := s.ports.Notes.Edit(ctx, input.ID, update); err != nil {
		return nil, NoteOutput{}, err
	}

	return nil, NoteOutput{
		ID:          input.ID,
		Title:       update.Title,
		Description: update.Description,
		Colour:      update.Colour,
	}, nil
}

// handleDeleteNote handles the delete_note tool invocation.
// Deleting a missing note succeeds with Deleted false.
func (s *Server) handleDeleteNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteNoteInput,
) (*mcp.CallToolResult, DeleteNoteOutput, error) {
	_, err := s.ports.Notes.Get(ctx, input.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, DeleteNoteOutput{ID: input.ID}, nil
	}
	if err != nil {
		return nil, DeleteNoteOutput{}, err
	}

	if err := s.ports.Notes.Remove(ctx, input.ID); err != nil {
		return nil, DeleteNoteOutput{}, err
	}

	return nil, DeleteNoteOutput{ID: input.ID, Deleted: true}, nil
}

// resolveColour turns a palette name or hex into the stored hex token.
// An empty colour stays empty so the service applies the default.
func resolveColour(colour string) (string, error) {
	if colour == "" {
		return "", nil
	}
	c, err := domain.ParseColour(colour)
	if err != nil {
		return "", err
	}
	return c.Hex, nil
}

func toOutput(note *domain.Note) NoteOutput {
	return NoteOutput{
		ID:          note.ID,
		Title:       note.Title,
		Description: note.Description,
		Colour:      note.Colour,
	}
}
