// Package postdetail provides the single post view component for the TUI.
package postdetail

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

// reservedLines covers the title, its gap and the status bar.
const reservedLines = 4

// View shows one post: its fields, terms, custom fields, raw meta and
// comment threads in a scrollable viewport.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	viewport viewport.Model

	post   *domain.Post
	width  int
	height int
}

// NewView creates a new post view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:   s,
		keymap:   km,
		viewport: viewport.New(80, 24-reservedLines),
		width:    80,
		height:   24,
	}
}

// SetPost shows post and scrolls to the top.
func (v *View) SetPost(post domain.Post) {
	v.post = &post
	v.viewport.SetContent(v.renderContent())
	v.viewport.GotoTop()
}

// Post returns the post being shown.
func (v *View) Post() *domain.Post {
	return v.post
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the post view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), v.keymap.Back) {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewPosts}
			}
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the post view.
func (v *View) View() string {
	if v.post == nil {
		return v.styles.Muted.Render("No post selected.")
	}

	title := v.post.Title
	if title == "" {
		title = v.post.Name
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(fmt.Sprintf("#%d %s", v.post.ID, title)))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%3.f%%", v.viewport.ScrollPercent()*100)))
	b.WriteString("\n\n")
	b.WriteString(v.viewport.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(height-reservedLines, 1)
	if v.post != nil {
		v.viewport.SetContent(v.renderContent())
	}
}

// renderContent builds the scrollable body for the current post.
func (v *View) renderContent() string {
	p := v.post
	var b strings.Builder

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(v.styles.Label.Render(label))
		b.WriteString(v.styles.Normal.Render(value))
		b.WriteString("\n")
	}

	row("Type", p.Type)
	row("Status", p.Status)
	row("Slug", p.Name)
	row("Author", p.Author)
	row("Date", p.Date)
	row("GUID", p.GUID)
	if p.Parent != 0 {
		row("Parent", strconv.Itoa(p.Parent))
	}
	if p.MenuOrder != 0 {
		row("Menu order", strconv.Itoa(p.MenuOrder))
	}
	if p.IsSticky {
		row("Sticky", "yes")
	}
	if p.AttachmentURL != nil {
		row("File", *p.AttachmentURL)
	}

	if len(p.Terms) > 0 {
		v.section(&b, "Terms")
		for _, t := range p.Terms {
			b.WriteString("  ")
			b.WriteString(v.styles.PostType.Render(t.Domain))
			b.WriteString(" " + t.Name + v.styles.Muted.Render(" ("+t.Slug+")") + "\n")
		}
	}

	if p.CustomFields.Len() > 0 {
		v.section(&b, "Custom fields")
		for name, field := range p.CustomFields.All() {
			v.renderField(&b, name, field)
		}
	}

	if len(p.PostMeta) > 0 {
		v.section(&b, "Post meta")
		for _, m := range p.PostMeta {
			line := fmt.Sprintf("  %s = %s", m.Key, m.Value)
			if m.Kind == domain.MetaUnresolved {
				b.WriteString(v.styles.Warning.Render(line + "  (unresolved)"))
			} else {
				b.WriteString(v.styles.Muted.Render(line))
			}
			b.WriteString("\n")
		}
	}

	if content := strings.TrimSpace(p.Content); content != "" {
		v.section(&b, "Content")
		b.WriteString(lipgloss.NewStyle().Width(max(v.width-2, 20)).Render(content))
		b.WriteString("\n")
	}

	if threads := p.CommentThreads(); len(threads) > 0 {
		v.section(&b, fmt.Sprintf("Comments (%d)", len(p.Comments)))
		for _, thread := range threads {
			v.renderThread(&b, thread, 1)
		}
	}

	return b.String()
}

func (v *View) section(b *strings.Builder, title string) {
	b.WriteString("\n")
	b.WriteString(v.styles.Section.Render(title))
	b.WriteString("\n")
}

func (v *View) renderField(b *strings.Builder, name string, field domain.CustomField) {
	b.WriteString("  " + v.styles.PostType.Render(name) + "\n")
	if !field.IsGroup() {
		for _, e := range field.Entries {
			b.WriteString(fmt.Sprintf("    %s = %s\n", e.Key, e.Value))
		}
		return
	}
	for i, entries := range field.Rows {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("    [%d]", i)) + "\n")
		for _, e := range entries {
			b.WriteString(fmt.Sprintf("      %s = %s\n", e.Key, e.Value))
		}
	}
}

func (v *View) renderThread(b *strings.Builder, thread domain.CommentThread, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent + v.styles.Normal.Render(thread.Author) + " " + v.styles.Muted.Render(thread.Date) + "\n")
	for _, line := range strings.Split(strings.TrimSpace(thread.Content), "\n") {
		b.WriteString(indent + "  " + line + "\n")
	}
	for _, child := range thread.Children {
		v.renderThread(b, child, depth+1)
	}
}
