package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

func TestPostCmd_Text(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("post", exportFixture, "1")
	require.NoError(t, err)

	assert.Contains(t, out, "#1 Hello world")
	assert.Contains(t, out, "Sticky")
	assert.Contains(t, out, "category:news")
	assert.Contains(t, out, "Gallery:\n    [0] myfield=hello")
	assert.Contains(t, out, "Photo: photo=http://example.com/x.jpg")
	assert.Contains(t, out, "Reader")
	assert.Contains(t, out, "    Admin")
	assert.NotContains(t, out, "Buy now")
}

func TestPostCmd_Repeater(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("post", exportFixture, "5")
	require.NoError(t, err)

	assert.Contains(t, out, "Gallery:")
	assert.Contains(t, out, "[0] gallery=2")
	assert.Contains(t, out, "[1] gallery_0_caption=Sunrise, gallery_1_caption=Sunset")
	assert.Contains(t, out, "[2] gallery_0_caption=Sunrise, gallery_1_caption=Sunset")
}

func TestPostCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("post", exportFixture, "1", "--format", "json")
	require.NoError(t, err)

	var view struct {
		ID      int                    `json:"post_id"`
		Threads []domain.CommentThread `json:"comment_threads"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, 1, view.ID)
	require.Len(t, view.Threads, 1)
	assert.Equal(t, 10, view.Threads[0].ID)
	require.Len(t, view.Threads[0].Children, 1)
	assert.Equal(t, 11, view.Threads[0].Children[0].ID)
}

func TestPostCmd_Errors(t *testing.T) {
	t.Run("unknown post", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()

		_, err := executeCommand("post", exportFixture, "777")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()

		_, err := executeCommand("post", exportFixture, "abc")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
