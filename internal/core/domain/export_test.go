package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_PostLookup(t *testing.T) {
	var r Result
	r.Posts.Set(1, Post{ID: 1, Type: "post"})
	r.Posts.Set(2, Post{ID: 2, Type: "page"})
	r.Posts.Set(3, Post{ID: 3, Type: "post"})

	post, ok := r.Post(2)
	assert.True(t, ok)
	assert.Equal(t, "page", post.Type)

	_, ok = r.Post(9)
	assert.False(t, ok)

	posts := r.PostsOfType("post")
	assert.Len(t, posts, 2)
	assert.Equal(t, 3, posts[1].ID)
	assert.Empty(t, r.PostsOfType("attachment"))
}
