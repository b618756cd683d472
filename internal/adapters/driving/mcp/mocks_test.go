package mcp

import (
	"context"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

// mockParseService is a mock implementation of driving.ParseService.
type mockParseService struct {
	result *domain.Result
	docs   []domain.SourceInfo
	err    error

	parsedSource string
}

func (m *mockParseService) Parse(_ context.Context, source string) (*domain.Result, error) {
	m.parsedSource = source
	return m.result, m.err
}

func (m *mockParseService) ParseBytes(_ context.Context, _ string, _ []byte) (*domain.Result, error) {
	return m.result, m.err
}

func (m *mockParseService) Get(_ context.Context, id string) (*domain.Result, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil || m.result.Source.DocumentID != id {
		return nil, domain.ErrNotFound
	}
	return m.result, nil
}

func (m *mockParseService) List(_ context.Context) ([]domain.SourceInfo, error) {
	return m.docs, m.err
}

// testResult builds a small result with one field-bearing post.
func testResult() *domain.Result {
	url := "http://example.com/x.jpg"

	post := domain.Post{
		ID:       1,
		Type:     "post",
		Title:    "Hello",
		Name:     "hello",
		Status:   "publish",
		Terms:    []domain.TermRef{{Name: "News", Slug: "news", Domain: "category"}},
		Comments: []domain.Comment{{ID: 10}},
		PostMeta: []domain.MetaEntry{
			{Key: "myfield", Value: "hello", Kind: domain.MetaPlain},
			{Key: "_myfield", Value: "field_123", Kind: domain.MetaFieldReference},
		},
	}
	post.CustomFields.Set("My Field", domain.CustomField{
		Entries: []domain.FieldEntry{{Key: "myfield", Value: "hello", FieldID: "field_123"}},
	})
	post.CustomFields.Set("Gallery", domain.CustomField{
		Rows: [][]domain.FieldEntry{{{Key: "gallery_0_caption", Value: "Sunrise", FieldID: "field_123"}}},
	})

	attachment := domain.Post{ID: 42, Type: domain.PostTypeAttachment, AttachmentURL: &url}

	result := &domain.Result{
		Source:           domain.SourceInfo{DocumentID: "doc-1", Checksum: "abc", Size: 10},
		Version:          "1.2",
		BaseURL:          "http://example.com",
		BaseBlogURL:      "http://example.com",
		PostTypes:        []string{"post", domain.PostTypeAttachment},
		CustomFieldNames: []string{"My Field"},
		Diagnostics:      []domain.Diagnostic{{PostID: 103, Message: "dropped field definition"}},
	}
	result.Authors.Set("admin", domain.Author{ID: 1, Login: "admin"})
	result.Posts.Set(post.ID, post)
	result.Posts.Set(attachment.ID, attachment)
	result.CustomFields.Set("field_123", domain.FieldDefinition{
		ID: "field_123", Type: "text", Name: "My Field", PostID: 101,
	})
	return result
}
