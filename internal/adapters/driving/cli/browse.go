package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/wxr-cli/internal/adapters/driven/ingest"
	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui"
)

// browseCmd represents the browse command.
var browseCmd = &cobra.Command{
	Use:   "browse <file>",
	Short: "Browse an export in the terminal UI",
	Long: `Open an interactive terminal browser for a WordPress export.

The post list shows every item of the export. Open a post to see its
fields, terms, resolved custom fields, raw post meta and comment threads.

Controls:
  ↑/k, ↓/j - Navigate posts / scroll
  Enter    - Open post
  t        - Cycle post type filter
  Esc      - Back to the list
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) (err error) {
	if parseService == nil {
		return errors.New("parse service not configured")
	}
	// The UI reads keys from stdin, so the export cannot come from there too.
	if args[0] == ingest.StdinSource {
		return errors.New("browse cannot read the export from stdin")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("browse requires an interactive terminal")
	}

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(parseService), args[0])
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
