// Command notekeeper keeps notes in notebooks from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/custodia-labs/notekeeper/internal/adapters/driven/config/file"
	filestore "github.com/custodia-labs/notekeeper/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/notekeeper/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/notekeeper/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/notekeeper/internal/adapters/driving/cli"
	"github.com/custodia-labs/notekeeper/internal/core/domain"
	"github.com/custodia-labs/notekeeper/internal/core/ports/driven"
	"github.com/custodia-labs/notekeeper/internal/core/services"
	"github.com/custodia-labs/notekeeper/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetInitializer(setup)

	if err := cli.Execute(ctx); err != nil {
		logger.Error("%v", err)
		stop()
		os.Exit(1)
	}
}

// setup reads the settings in configDir and wires the services the
// commands use.
func setup(configDir string) (func(), error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	logger.Debug("settings loaded from %s: backend=%s", configStore.Path(), settings.Storage.Backend)

	dataDir, err := expandHome(settings.Storage.DataDir)
	if err != nil {
		return nil, err
	}

	kv, watcher, closeStore, err := openStore(settings.Storage.Backend, dataDir)
	if err != nil {
		return nil, err
	}
	if !settings.UI.Watch {
		watcher = nil
	}

	ids, err := services.NewIDGenerator(settings.IDs.Strategy)
	if err != nil {
		closeStore()
		return nil, err
	}

	notebooks := services.NewNotebookService(kv,
		services.WithKey(settings.Storage.Key),
		services.WithIDGenerator(ids),
	)

	cli.SetServices(notebooks, settingsService)
	cli.SetWatcher(watcher)
	return closeStore, nil
}

// openStore opens the medium for backend. Only the file backend can be
// watched for writes made by other processes.
func openStore(backend domain.StorageBackend, dataDir string) (driven.KeyValueStore, driven.Watcher, func(), error) {
	noop := func() {}

	switch backend {
	case domain.StorageFile:
		store, err := filestore.NewKeyValueStore(dataDir)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open file store: %w", err)
		}
		logger.Debug("using file store at %s", store.Path())
		return store, store, noop, nil

	case domain.StorageMemory:
		logger.Debug("using in-memory store, nothing will be persisted")
		return memory.NewKeyValueStore(), nil, noop, nil

	default:
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.Debug("using sqlite store at %s", store.Path())
		return store, nil, func() {
			if err := store.Close(); err != nil {
				logger.Warn("closing sqlite store: %v", err)
			}
		}, nil
	}
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
