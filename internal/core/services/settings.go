package services

import (
	"fmt"

	"github.com/custodia-labs/jotter/internal/core/domain"
	"github.com/custodia-labs/jotter/internal/core/ports/driven"
	"github.com/custodia-labs/jotter/internal/core/ports/driving"
	"github.com/custodia-labs/jotter/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDataDir       = "storage.data_dir"
	keyDefaultColour = "notes.default_colour"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// An unparseable stored colour falls back to the default.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return &settings, nil
	}

	settings.DataDir = s.configStore.GetString(keyDataDir)

	if stored := s.configStore.GetString(keyDefaultColour); stored != "" {
		colour, err := domain.ParseColour(stored)
		if err != nil {
			logger.Warn("ignoring %s: %v", keyDefaultColour, err)
		} else {
			settings.DefaultColour = colour
		}
	}

	return &settings, nil
}

// SetDefaultColour validates and stores the default note colour.
func (s *SettingsService) SetDefaultColour(colour string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	parsed, err := domain.ParseColour(colour)
	if err != nil {
		return err
	}

	value := parsed.Hex
	if parsed.Name != "" {
		value = parsed.Name
	}
	if err := s.configStore.SetString(keyDefaultColour, value); err != nil {
		return fmt.Errorf("save default colour: %w", err)
	}
	return nil
}

// SetDataDir stores the notes data directory.
func (s *SettingsService) SetDataDir(dir string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := s.configStore.SetString(keyDataDir, dir); err != nil {
		return fmt.Errorf("save data dir: %w", err)
	}
	return nil
}
