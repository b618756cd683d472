package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change wxr settings.

Settings are stored in config.toml inside the configuration directory
(~/.wxr unless --config-dir is given).`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting and save it immediately.

Keys:
  output.format   json or yaml
  output.indent   true or false
  log.verbose     true or false
  cache.ttl       how long parsed exports stay cached, e.g. 10m
  watch.interval  minimum time between re-parses in watch, e.g. 500ms`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Output]")
	fmt.Fprintf(out, "  Format: %s\n", settings.Output.Format.Description())
	fmt.Fprintf(out, "  Indent: %s\n", yesNo(settings.Output.Indent))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Log]")
	fmt.Fprintf(out, "  Verbose: %s\n", yesNo(settings.Log.Verbose))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Cache]")
	fmt.Fprintf(out, "  TTL: %s\n", settings.Cache.TTL)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Watch]")
	fmt.Fprintf(out, "  Interval: %s\n", settings.Watch.Interval)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrUnsupportedType) {
			return fmt.Errorf("%w (valid keys: %v)", err, settingsService.Keys())
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", key, value)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
