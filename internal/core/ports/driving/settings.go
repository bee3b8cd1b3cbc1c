package driving

import "github.com/custodia-labs/jotter/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// SetDefaultColour updates the colour applied to new notes.
	// Accepts a palette name or a hex token.
	SetDefaultColour(colour string) error

	// SetDataDir updates the directory holding the notes database.
	SetDataDir(dir string) error
}
