package posts

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wxr-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

func testResult() *domain.Result {
	result := &domain.Result{
		Version:   "1.2",
		BaseURL:   "http://example.com",
		PostTypes: []string{"post", "page"},
	}
	result.Posts.Set(1, domain.Post{ID: 1, Type: "post", Title: "First"})
	result.Posts.Set(2, domain.Post{ID: 2, Type: "page", Title: "About"})
	result.Posts.Set(5, domain.Post{ID: 5, Type: "post", Name: "untitled-slug"})
	return result
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil)

	require.NotNil(t, v)
	assert.Equal(t, "", v.Filter())
	assert.Empty(t, v.Posts())
	assert.Nil(t, v.Init())

	_, ok := v.Selected()
	assert.False(t, ok)
}

func TestView_SetResult(t *testing.T) {
	v := NewView(nil, nil)

	v.SetResult(testResult())

	require.Len(t, v.Posts(), 3)
	assert.Equal(t, 0, v.SelectedIndex())
	post, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, post.ID)
}

func TestView_Navigation(t *testing.T) {
	v := NewView(nil, nil)
	v.SetResult(testResult())

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.SelectedIndex())

	v.Update(keyRune('j'))
	assert.Equal(t, 2, v.SelectedIndex())

	// Stays on the last row.
	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, v.SelectedIndex())

	v.Update(keyRune('k'))
	assert.Equal(t, 1, v.SelectedIndex())

	v.Update(keyRune('g'))
	assert.Equal(t, 0, v.SelectedIndex())

	v.Update(keyRune('G'))
	assert.Equal(t, 2, v.SelectedIndex())

	v.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, v.SelectedIndex())

	v.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 2, v.SelectedIndex())
}

func TestView_FilterCyclesPostTypes(t *testing.T) {
	v := NewView(nil, nil)
	v.SetResult(testResult())

	_, cmd := v.Update(keyRune('t'))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.FilterChanged{PostType: "post", Count: 2}, cmd())
	assert.Equal(t, "post", v.Filter())
	assert.Len(t, v.Posts(), 2)

	_, cmd = v.Update(keyRune('t'))
	assert.Equal(t, messages.FilterChanged{PostType: "page", Count: 1}, cmd())
	require.Len(t, v.Posts(), 1)
	assert.Equal(t, 2, v.Posts()[0].ID)

	// Wraps back to all types.
	_, cmd = v.Update(keyRune('t'))
	assert.Equal(t, messages.FilterChanged{PostType: "", Count: 3}, cmd())
	assert.Len(t, v.Posts(), 3)
}

func TestView_FilterResetsSelection(t *testing.T) {
	v := NewView(nil, nil)
	v.SetResult(testResult())
	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v.Update(tea.KeyMsg{Type: tea.KeyDown})

	v.Update(keyRune('t'))

	assert.Equal(t, 0, v.SelectedIndex())
}

func TestView_SelectEmitsPostSelected(t *testing.T) {
	v := NewView(nil, nil)
	v.SetResult(testResult())
	v.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.PostSelected)
	require.True(t, ok)
	assert.Equal(t, 2, msg.Post.ID)
}

func TestView_SelectWithoutPosts(t *testing.T) {
	v := NewView(nil, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Render(t *testing.T) {
	v := NewView(nil, nil)
	v.SetDimensions(100, 30)

	assert.Contains(t, v.View(), "No export loaded.")

	v.SetResult(testResult())
	view := v.View()

	assert.Contains(t, view, "http://example.com - WXR 1.2")
	assert.Contains(t, view, "First")
	assert.Contains(t, view, "About")
	assert.Contains(t, view, "untitled-slug")
	assert.Contains(t, view, "page")
}

func TestView_RenderEmptyFilter(t *testing.T) {
	result := testResult()
	result.PostTypes = append(result.PostTypes, "attachment")
	v := NewView(nil, nil)
	v.SetResult(result)

	v.Update(keyRune('t'))
	v.Update(keyRune('t'))
	v.Update(keyRune('t'))

	assert.Equal(t, "attachment", v.Filter())
	assert.Contains(t, v.View(), "No posts.")
}

func TestView_ScrollIndicator(t *testing.T) {
	result := &domain.Result{PostTypes: []string{"post"}}
	for i := 1; i <= 20; i++ {
		result.Posts.Set(i, domain.Post{ID: i, Type: "post", Title: "Post"})
	}

	v := NewView(nil, nil)
	v.SetDimensions(80, 10)
	v.SetResult(result)

	assert.Contains(t, v.View(), "[1-4 of 20]")

	for range 5 {
		v.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Contains(t, v.View(), "[3-6 of 20]")
}

func TestView_WindowSize(t *testing.T) {
	v := NewView(nil, nil)

	v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, v.width)
	assert.Equal(t, 40, v.height)
}
