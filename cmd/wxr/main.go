// Command wxr parses WordPress eXtended RSS exports.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/wxr-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wxr-cli/internal/adapters/driven/ingest"
	"github.com/custodia-labs/wxr-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/wxr-cli/internal/core/services"
	"github.com/custodia-labs/wxr-cli/internal/logger"
	"github.com/custodia-labs/wxr-cli/internal/wxr"
)

func main() {
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
// An empty configDir selects ~/.wxr.
func bootstrap(configDir string) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	// The parser captures the logger, so verbosity must be final first.
	if settings.Log.Verbose {
		logger.SetVerbose(true)
	}

	parseService := services.NewParseService(
		ingest.NewFileIngestor(os.Stdin),
		wxr.NewParser(wxr.WithLogger(logger.L())),
		memory.NewResultStore(settings.Cache.TTL),
	)

	return &cli.Services{
		Parse:    parseService,
		Settings: settingsService,
	}, nil
}
