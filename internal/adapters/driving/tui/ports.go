// Package tui provides an interactive terminal user interface for Jotter.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/jotter/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Notes manages notes. Required.
	Notes driving.NoteService

	// Settings supplies the default colour for new notes. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(notes driving.NoteService, settings driving.SettingsService) *Ports {
	return &Ports{
		Notes:    notes,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Notes == nil {
		return ErrMissingNoteService
	}
	return nil
}
