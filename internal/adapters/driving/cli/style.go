package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// palette holds the styles used for human-readable output. Every style is
// a no-op when the output is not a terminal.
type palette struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	muted lipgloss.Style
	warn  lipgloss.Style
}

func newPalette(w io.Writer) palette {
	if !isTerminal(w) {
		plain := lipgloss.NewStyle()
		return palette{title: plain, label: plain, value: plain, muted: plain, warn: plain}
	}

	return palette{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		label: lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		value: lipgloss.NewStyle().Bold(true),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
