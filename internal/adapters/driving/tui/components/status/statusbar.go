// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
	StateHelp    State = "help"
	StatePost    State = "post"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	postCount int
	filter    string
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateLoading,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the left side of the status bar.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Parsing...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StatePost:
		return s.styles.Normal.Render(s.message)
	case StateReady:
		filter := "all types"
		if s.filter != "" {
			filter = s.filter
		}
		return s.styles.Normal.Render(fmt.Sprintf("%d posts (%s)", s.postCount, filter))
	}
	return s.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding

	switch s.state {
	case StateReady:
		bindings = s.keymap.PostsHelp()
	case StatePost:
		bindings = s.keymap.PostHelp()
	case StateLoading, StateError, StateHelp:
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetPostCount sets the number of listed posts.
func (s *Bar) SetPostCount(count int) {
	s.postCount = count
}

// PostCount returns the number of listed posts.
func (s *Bar) PostCount() int {
	return s.postCount
}

// SetFilter sets the active post type filter.
func (s *Bar) SetFilter(postType string) {
	s.filter = postType
}

// Filter returns the active post type filter.
func (s *Bar) Filter() string {
	return s.filter
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
