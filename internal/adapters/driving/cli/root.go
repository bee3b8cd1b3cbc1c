// Package cli provides the cobra command tree for Jotter.
// It is a driving adapter: commands call into core services through
// the driving ports and never touch storage directly.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/jotter/internal/core/ports/driving"
	"github.com/custodia-labs/jotter/internal/logger"
)

// Services groups the driving ports used by the commands.
type Services struct {
	// Notes manages notes.
	Notes driving.NoteService

	// Settings manages application settings.
	Settings driving.SettingsService

	// DataDir is the resolved directory holding the notes database.
	// The TUI watches it for changes made by other processes.
	DataDir string

	// WatchFile is the database file name within DataDir. Changes to
	// files with this prefix (including SQLite's -wal and -shm) make the
	// TUI reload. Empty disables watching.
	WatchFile string

	// Close releases resources held by the services. May be nil.
	Close func() error
}

// Bootstrap builds services once flags have been parsed.
// dataDir is the --data-dir flag value ("" if unset).
type Bootstrap func(ctx context.Context, dataDir string) (*Services, error)

var (
	version = "dev"

	verbose     bool
	dataDirFlag string

	bootstrap Bootstrap
	services  *Services
)

// errNotConfigured is returned when no services or bootstrap are set.
var errNotConfigured = errors.New("note service not configured")

var rootCmd = &cobra.Command{
	Use:   "jotter",
	Short: "Coloured notes in your terminal",
	Long: `Jotter keeps short, colour-tagged notes in a local SQLite database.

Use the note commands for scripting, or launch the interactive
terminal UI with "jotter tui".`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "directory holding the notes database")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap sets the function that builds services on first use.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices injects ready-made services, bypassing Bootstrap.
func SetServices(s *Services) {
	services = s
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// Close releases services created during Execute.
func Close() error {
	if services == nil || services.Close == nil {
		return nil
	}
	err := services.Close()
	services = nil
	return err
}

// loadServices returns the injected services, building them on first use.
func loadServices(cmd *cobra.Command) (*Services, error) {
	if services != nil {
		return services, nil
	}
	if bootstrap == nil {
		return nil, errNotConfigured
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := bootstrap(ctx, dataDirFlag)
	if err != nil {
		return nil, fmt.Errorf("starting jotter: %w", err)
	}
	services = s
	return s, nil
}

// noteService returns the note service or an error if unavailable.
func noteService(cmd *cobra.Command) (driving.NoteService, error) {
	s, err := loadServices(cmd)
	if err != nil {
		return nil, err
	}
	if s.Notes == nil {
		return nil, errNotConfigured
	}
	return s.Notes, nil
}

// commandContext returns the command's context, or Background in tests
// that call RunE directly.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
