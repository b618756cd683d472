package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui/views/postdetail"
	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui/views/posts"
	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

// App is the export browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// source is the export path (or "-") being browsed.
	source string

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	postsView  *posts.View
	postView   *postdetail.View
	statusBar  *status.Bar
	result     *domain.Result
	helpReturn messages.ViewType

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a browser for the export at source.
func NewApp(ports *Ports, source string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if source == "" {
		return nil, fmt.Errorf("creating app: %w", ErrMissingSource)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		source:      source,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		postsView:   posts.NewView(s, km),
		postView:    postdetail.NewView(s, km),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewPosts,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init implements tea.Model.
// It starts parsing the export.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("wxr - "+a.source),
		a.loadResult(),
	)
}

// loadResult returns a command that parses the export.
func (a *App) loadResult() tea.Cmd {
	ctx, parse, source := a.ctx, a.ports.Parse, a.source
	return func() tea.Msg {
		result, err := parse.Parse(ctx, source)
		return messages.ResultLoaded{Result: result, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ResultLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.result = msg.Result
		a.err = nil
		a.postsView.SetResult(msg.Result)
		a.statusBar.SetState(status.StateReady)
		a.statusBar.SetPostCount(len(a.postsView.Posts()))
		a.statusBar.SetFilter("")
		return a, nil

	case messages.FilterChanged:
		a.statusBar.SetFilter(msg.PostType)
		a.statusBar.SetPostCount(msg.Count)
		return a, nil

	case messages.PostSelected:
		a.postView.SetPost(msg.Post)
		a.switchTo(messages.ViewPost)
		return a, nil

	case messages.ViewChanged:
		a.switchTo(msg.View)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewPosts:
		a.postsView, cmd = a.postsView.Update(msg)
	case messages.ViewPost:
		a.postView, cmd = a.postView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// handleKeyMsg routes key presses to the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	k := msg.String()

	if keymap.Matches(k, a.keymap.Quit) {
		return a, tea.Quit
	}

	if keymap.Matches(k, a.keymap.Help) {
		if a.currentView == messages.ViewHelp {
			a.switchTo(a.helpReturn)
		} else {
			a.helpReturn = a.currentView
			a.switchTo(messages.ViewHelp)
		}
		return a, nil
	}

	// Nothing to navigate until the export is loaded.
	if a.result == nil {
		return a, nil
	}

	switch a.currentView {
	case messages.ViewPosts:
		a.postsView, cmd = a.postsView.Update(msg)
	case messages.ViewPost:
		a.postView, cmd = a.postView.Update(msg)
	case messages.ViewHelp:
		if keymap.Matches(k, a.keymap.Back) {
			a.switchTo(a.helpReturn)
		}
	}
	return a, cmd
}

// switchTo changes the active view and the status bar with it.
func (a *App) switchTo(view messages.ViewType) {
	a.currentView = view

	if a.err != nil {
		return
	}

	switch view {
	case messages.ViewPosts:
		if a.result == nil {
			a.statusBar.SetState(status.StateLoading)
		} else {
			a.statusBar.SetState(status.StateReady)
		}
	case messages.ViewPost:
		a.statusBar.SetState(status.StatePost)
		if p := a.postView.Post(); p != nil {
			a.statusBar.SetMessage(fmt.Sprintf("%s #%d", p.Type, p.ID))
		}
	case messages.ViewHelp:
		a.statusBar.SetState(status.StateHelp)
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch {
	case a.currentView == messages.ViewHelp:
		body = a.viewHelp()
	case a.err != nil:
		body = a.styles.Error.Render(fmt.Sprintf("Could not load %s:\n\n%v", a.source, a.err))
	case a.result == nil:
		body = a.styles.Muted.Render(fmt.Sprintf("Parsing %s...", a.source))
	case a.currentView == messages.ViewPost:
		body = a.postView.View()
	default:
		body = a.postsView.View()
	}

	gap := a.height - strings.Count(body, "\n") - 2
	if gap < 1 {
		gap = 1
	}
	return body + strings.Repeat("\n", gap) + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[?] close help"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Result returns the loaded export, or nil while parsing.
func (a *App) Result() *domain.Result {
	return a.result
}

// Source returns the export being browsed.
func (a *App) Source() string {
	return a.source
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.postsView.SetDimensions(width, height)
	a.postView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}
