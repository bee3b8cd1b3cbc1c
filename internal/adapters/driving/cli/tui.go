package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/jotter/internal/adapters/driving/tui"
	"github.com/custodia-labs/jotter/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Jotter.

The TUI lists your notes as coloured cards. Notes added from another
terminal appear automatically.

Controls:
  ↑/k, ↓/j - Navigate notes
  /        - Search titles
  n        - New note
  Enter    - Edit note
  d        - Delete note
  Tab      - Next field (in the form)
  Ctrl+S   - Save (in the form)
  Esc      - Back / Cancel
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("jotter tui needs an interactive terminal")
	}

	s, err := loadServices(cmd)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(s.Notes, s.Settings))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(commandContext(cmd))

	if watcher := newWatcher(s); watcher != nil {
		defer watcher.Close()
		app.WithWatcher(watcher)
	}

	// Log lines would corrupt the alternate screen
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(os.Stderr)

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// newWatcher watches the database so notes written by another process
// appear. Returns nil when watching is not configured or fails.
func newWatcher(s *Services) *tui.Watcher {
	if s.DataDir == "" || s.WatchFile == "" {
		return nil
	}
	watcher, err := tui.NewWatcher(s.DataDir, s.WatchFile)
	if err != nil {
		logger.Warn("not watching %s for changes: %v", s.DataDir, err)
		return nil
	}
	return watcher
}
