// Command jotter keeps colour-tagged notes in a local SQLite database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/jotter/internal/adapters/driven/config/file"
	"github.com/custodia-labs/jotter/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/jotter/internal/adapters/driving/cli"
	"github.com/custodia-labs/jotter/internal/core/services"
	"github.com/custodia-labs/jotter/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(func(ctx context.Context, dataDir string) (*cli.Services, error) {
		return bootstrap(ctx, "", dataDir)
	})

	err := cli.Execute(ctx)
	if closeErr := cli.Close(); closeErr != nil {
		logger.Error("closing store: %v", closeErr)
	}
	if err != nil {
		// cobra has already printed the error
		return 1
	}
	return 0
}

// bootstrap wires the stores and services. configDir "" means ~/.jotter.
// The data directory comes from the flag, then the config file, then
// the default location.
func bootstrap(ctx context.Context, configDir, dataDir string) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settings := services.NewSettingsService(configStore)

	if dataDir == "" {
		current, err := settings.Get()
		if err != nil {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
		dataDir = current.DataDir
	}
	if dataDir == "" {
		if dataDir, err = sqlite.DefaultDataDir(); err != nil {
			return nil, err
		}
	}

	store, err := sqlite.Open(ctx, dataDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("using config %s", configStore.Path())

	return &cli.Services{
		Notes:     services.NewNoteService(store, settings),
		Settings:  settings,
		DataDir:   dataDir,
		WatchFile: sqlite.DatabaseFile,
		Close:     store.Close,
	}, nil
}
