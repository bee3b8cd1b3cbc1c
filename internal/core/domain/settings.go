package domain

// Settings holds user-configurable application settings.
type Settings struct {
	// DataDir is the directory holding the notes database.
	// Empty means the default location (~/.jotter/data).
	DataDir string

	// DefaultColour is applied to notes created without a colour.
	DefaultColour Colour
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		DefaultColour: DefaultColour,
	}
}
