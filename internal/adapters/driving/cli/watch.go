package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/wxr-cli/internal/adapters/driven/ingest"
	"github.com/custodia-labs/wxr-cli/internal/core/domain"
	"github.com/custodia-labs/wxr-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-parse an export whenever it changes",
	Long: `Watch an export file and print a summary line each time its content
changes. Saves that leave the bytes unchanged are ignored.

Re-parses are spaced by the watch.interval setting. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var watchInterval time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Minimum time between re-parses (default from settings)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if parseService == nil {
		return errors.New("parse service not configured")
	}
	if args[0] == ingest.StdinSource {
		return fmt.Errorf("%w: cannot watch stdin", domain.ErrInvalidInput)
	}

	interval := watchInterval
	if interval <= 0 {
		interval = domain.DefaultSettings().Watch.Interval
		if settingsService != nil {
			if settings, err := settingsService.Get(); err == nil {
				interval = settings.Watch.Interval
			}
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchFile(ctx, cmd.OutOrStdout(), args[0], interval)
}

// watchFile reports the export at path once, then again after every change
// to its content, until ctx is cancelled.
func watchFile(ctx context.Context, w io.Writer, path string, interval time.Duration) error {
	abs, err := filepath.Abs(ingest.ResolvePath(path))
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file on save, so watch its directory.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	limiter := rate.NewLimiter(rate.Every(interval), 1)
	var lastChecksum string

	report := func() {
		result, err := parseService.Parse(ctx, abs)
		if err != nil {
			if ctx.Err() == nil {
				fmt.Fprintf(w, "%s error: %v\n", time.Now().Format(time.TimeOnly), err)
			}
			lastChecksum = ""
			return
		}
		if result.Source.Checksum == lastChecksum {
			return
		}
		lastChecksum = result.Source.Checksum
		fmt.Fprintf(w, "%s %s posts=%d fields=%d diagnostics=%d\n",
			time.Now().Format(time.TimeOnly),
			result.Source.Checksum,
			result.Posts.Len(),
			result.CustomFields.Len(),
			len(result.Diagnostics),
		)
	}

	report()
	logger.Debug("watching %s (interval %s)", abs, interval)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			report()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch %s: %v", abs, err)
		}
	}
}
