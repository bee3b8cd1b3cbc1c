// Package mcp provides an MCP (Model Context Protocol) server adapter for Jotter.
// It lets AI assistants read and manage notes through tools and resources.
package mcp

import "errors"

// ErrMissingNoteService is returned when the note service is not provided.
var ErrMissingNoteService = errors.New("mcp: note service is required")
