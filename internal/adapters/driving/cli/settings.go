package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/jotter/internal/core/domain"
	"github.com/custodia-labs/jotter/internal/core/ports/driving"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure Jotter settings.

Settings are stored in ~/.jotter/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsColourCmd = &cobra.Command{
	Use:   "colour [name-or-hex]",
	Short: "Set the default note colour",
	Long: `Set the colour given to new notes when none is chosen.

Available colours:
  yellow  #FFFF99 (default)
  blue    #99CCFF
  red     #FF9999

Any #RGB or #RRGGBB hex value is also accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsColour,
}

var settingsDataDirCmd = &cobra.Command{
	Use:   "data-dir [path]",
	Short: "Set the directory holding the notes database",
	Long: `Set the directory holding the notes database.
The change takes effect the next time Jotter starts.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsDataDir,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsColourCmd)
	settingsCmd.AddCommand(settingsDataDirCmd)
	rootCmd.AddCommand(settingsCmd)
}

// settingsService returns the settings service or an error if unavailable.
func settingsService(cmd *cobra.Command) (driving.SettingsService, error) {
	s, err := loadServices(cmd)
	if err != nil {
		return nil, err
	}
	if s.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	return s.Settings, nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService(cmd)
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	dataDir := settings.DataDir
	if services != nil && services.DataDir != "" {
		dataDir = services.DataDir
	}
	if dataDir == "" {
		dataDir = "(default)"
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Notes]")
	cmd.Printf("  Default colour: %s\n", settings.DefaultColour.Label())
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Data directory: %s\n", dataDir)

	return nil
}

func runSettingsColour(cmd *cobra.Command, args []string) error {
	svc, err := settingsService(cmd)
	if err != nil {
		return err
	}

	colour, err := domain.ParseColour(args[0])
	if err != nil {
		return err
	}

	if err := svc.SetDefaultColour(args[0]); err != nil {
		return fmt.Errorf("failed to set default colour: %w", err)
	}

	cmd.Printf("Default colour set to: %s\n", colour.Label())
	return nil
}

func runSettingsDataDir(cmd *cobra.Command, args []string) error {
	svc, err := settingsService(cmd)
	if err != nil {
		return err
	}

	if err := svc.SetDataDir(args[0]); err != nil {
		return fmt.Errorf("failed to set data directory: %w", err)
	}

	cmd.Printf("Data directory set to: %s\n", args[0])
	cmd.Println("Restart Jotter for the change to take effect.")
	return nil
}
