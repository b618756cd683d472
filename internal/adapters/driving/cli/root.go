// Package cli provides the wxr command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/wxr-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wxr-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services are the core services the commands call into.
type Services struct {
	Parse    driving.ParseService
	Settings driving.SettingsService
}

// Bootstrap builds the services once global flags are known.
type Bootstrap func(configDir string) (*Services, error)

var (
	parseService    driving.ParseService
	settingsService driving.SettingsService
	bootstrap       Bootstrap
)

// Global flags.
var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "wxr",
	Short: "Inspect WordPress export (WXR) files",
	Long: `wxr parses WordPress eXtended RSS exports into a cross-referenced model:
authors, taxonomy terms, posts with their comments and raw post meta, and
Advanced Custom Fields values resolved against their field definitions.

Results can be printed as JSON or YAML, browsed in a terminal UI, or served
to AI assistants over the Model Context Protocol.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.wxr)")
}

// SetParseService sets the parse service used by commands.
func SetParseService(s driving.ParseService) {
	parseService = s
}

// SetSettingsService sets the settings service used by commands.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetBootstrap registers the function that builds services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap != nil {
		services, err := bootstrap(configDir)
		if err != nil {
			return err
		}
		SetParseService(services.Parse)
		SetSettingsService(services.Settings)
	}

	if settingsService != nil && !verbose {
		if settings, err := settingsService.Get(); err == nil && settings.Log.Verbose {
			logger.SetVerbose(true)
		}
	}
	return nil
}
