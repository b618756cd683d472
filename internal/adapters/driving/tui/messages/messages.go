// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

// ResultLoaded carries the parsed export back to the model.
type ResultLoaded struct {
	Result *domain.Result
	Err    error
}

// PostSelected is sent when a post is chosen from the list.
type PostSelected struct {
	Post domain.Post
}

// FilterChanged is sent when the post type filter changes.
// An empty PostType shows every post.
type FilterChanged struct {
	PostType string
	Count    int
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewPosts is the post list.
	ViewPosts ViewType = iota
	// ViewPost shows one post in detail.
	ViewPost
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewPosts:
		return "posts"
	case ViewPost:
		return "post"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred is sent when an error needs to be displayed.
type ErrorOccurred struct {
	Err error
}

// Quit is sent to exit the application.
type Quit struct{}
