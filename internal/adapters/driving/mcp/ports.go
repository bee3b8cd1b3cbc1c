package mcp

import (
	"github.com/custodia-labs/jotter/internal/core/ports/driving"
)

// Ports holds the services the MCP server calls into.
type Ports struct {
	Notes driving.NoteService
}

// Validate reports ErrMissingNoteService when Notes is unset.
func (p *Ports) Validate() error {
	if p == nil || p.Notes == nil {
		return ErrMissingNoteService
	}
	return nil
}
