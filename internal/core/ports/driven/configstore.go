package driven

// ConfigStore persists settings as string values under dotted keys,
// e.g. "notes.default_colour".
type ConfigStore interface {
	// GetString returns the value for key, or "" when it is unset
	// or not a string.
	GetString(key string) string

	// SetString stores value under key. Implementations persist
	// before returning.
	SetString(key, value string) error

	// Path returns where the configuration lives, or "" when it is
	// not backed by a file.
	Path() string
}
