// Package posts provides the post list view component for the TUI.
package posts

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

// View lists the posts of one export.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	result *domain.Result

	// filters is "" (all types) followed by each post type.
	filters     []string
	filterIndex int

	posts        []domain.Post
	selected     int
	scrollOffset int
	width        int
	height       int
}

// NewView creates a new post list view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:  s,
		keymap:  km,
		filters: []string{""},
		width:   80,
		height:  24,
	}
}

// SetResult replaces the listed export and clears the filter.
func (v *View) SetResult(result *domain.Result) {
	v.result = result
	v.filters = []string{""}
	if result != nil {
		v.filters = append(v.filters, result.PostTypes...)
	}
	v.filterIndex = 0
	v.applyFilter()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the post list.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.selected < len(v.posts)-1 {
			v.selected++
		}
	case keymap.Matches(k, v.keymap.PageUp):
		v.selected = max(v.selected-v.visibleItemCount(), 0)
	case keymap.Matches(k, v.keymap.PageDown):
		v.selected = max(min(v.selected+v.visibleItemCount(), len(v.posts)-1), 0)
	case k == "home" || k == "g":
		v.selected = 0
	case k == "end" || k == "G":
		v.selected = max(len(v.posts)-1, 0)
	case keymap.Matches(k, v.keymap.FilterType):
		v.filterIndex = (v.filterIndex + 1) % len(v.filters)
		v.applyFilter()
		filter, count := v.Filter(), len(v.posts)
		return v, func() tea.Msg {
			return messages.FilterChanged{PostType: filter, Count: count}
		}
	case keymap.Matches(k, v.keymap.Select):
		post, ok := v.Selected()
		if !ok {
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.PostSelected{Post: post}
		}
	}

	v.adjustScroll()
	return v, nil
}

func (v *View) applyFilter() {
	v.posts = nil
	v.selected = 0
	v.scrollOffset = 0
	if v.result == nil {
		return
	}

	filter := v.Filter()
	for _, post := range v.result.Posts.All() {
		if filter == "" || post.Type == filter {
			v.posts = append(v.posts, post)
		}
	}
}

// adjustScroll adjusts the scroll offset to keep the selected item visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of rows that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, separator, scroll indicator and status bar
	reserved := 6
	return max(v.height-reserved, 1)
}

// View renders the post list.
func (v *View) View() string {
	var b strings.Builder

	if v.result == nil {
		b.WriteString(v.styles.Muted.Render("No export loaded."))
		return b.String()
	}

	title := fmt.Sprintf("%s - WXR %s", v.result.BaseURL, v.result.Version)
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if len(v.posts) == 0 {
		b.WriteString(v.styles.Muted.Render("No posts."))
		return b.String()
	}

	visibleItems := v.visibleItemCount()
	end := min(v.scrollOffset+visibleItems, len(v.posts))
	for i := v.scrollOffset; i < end; i++ {
		b.WriteString(v.renderPost(i, &v.posts[i]))
		b.WriteString("\n")
	}

	if len(v.posts) > visibleItems {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1, end, len(v.posts))))
	}

	return b.String()
}

// renderPost renders a single post row.
func (v *View) renderPost(index int, post *domain.Post) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	title := post.Title
	if title == "" {
		title = post.Name
	}

	maxTitleLen := max(v.width-32, 10)
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	id := fmt.Sprintf("%6d", post.ID)
	postType := fmt.Sprintf("%-16s", post.Type)

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%s  %s  %s", indicator, id, postType, title))
	}

	return v.styles.Normal.Render(indicator) +
		v.styles.Muted.Render(id) + "  " +
		v.styles.PostType.Render(postType) + "  " +
		v.styles.Normal.Render(title)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.adjustScroll()
}

// Filter returns the active post type filter, "" for all types.
func (v *View) Filter() string {
	return v.filters[v.filterIndex]
}

// Posts returns the listed posts.
func (v *View) Posts() []domain.Post {
	return v.posts
}

// Selected returns the highlighted post.
func (v *View) Selected() (domain.Post, bool) {
	if v.selected < 0 || v.selected >= len(v.posts) {
		return domain.Post{}, false
	}
	return v.posts[v.selected], true
}

// SelectedIndex returns the index of the highlighted row.
func (v *View) SelectedIndex() int {
	return v.selected
}
