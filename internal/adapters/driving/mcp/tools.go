package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

// ParseInput is the input schema for the parse_wxr tool.
type ParseInput struct {
	Path string `json:"path" jsonschema:"path of the WordPress export file to parse"`
}

// ParseOutput summarises a parsed export.
type ParseOutput struct {
	DocumentID       string         `json:"document_id"`
	Version          string         `json:"version"`
	BaseURL          string         `json:"base_url"`
	Authors          int            `json:"authors"`
	PostTypes        []string       `json:"post_types"`
	PostsByType      map[string]int `json:"posts_by_type"`
	PostCount        int            `json:"post_count"`
	CustomFieldNames []string       `json:"custom_fields_names"`
	Diagnostics      []string       `json:"diagnostics,omitempty"`
}

// GetPostInput is the input schema for the get_post tool.
type GetPostInput struct {
	DocumentID string `json:"document_id" jsonschema:"document id returned by parse_wxr"`
	PostID     int    `json:"post_id" jsonschema:"the wp:post_id of the post"`
}

// PostOutput is one post with its resolved custom fields.
type PostOutput struct {
	ID            int                 `json:"post_id"`
	Type          string              `json:"post_type"`
	Title         string              `json:"post_title"`
	Name          string              `json:"post_name"`
	Status        string              `json:"status"`
	Author        string              `json:"post_author"`
	Date          string              `json:"post_date"`
	Parent        int                 `json:"post_parent"`
	Content       string              `json:"post_content"`
	Excerpt       string              `json:"post_excerpt"`
	AttachmentURL string              `json:"attachment_url,omitempty"`
	Terms         []domain.TermRef    `json:"terms"`
	CommentCount  int                 `json:"comment_count"`
	PostMeta      []MetaOutput        `json:"postmeta"`
	CustomFields  []CustomFieldOutput `json:"custom_fields"`
}

// MetaOutput is a raw meta pair with its classification.
type MetaOutput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Kind  string `json:"kind"`
}

// CustomFieldOutput is one resolved custom field. Plain fields carry
// entries; repeater fields carry rows.
type CustomFieldOutput struct {
	Name    string                `json:"name"`
	Entries []domain.FieldEntry   `json:"entries,omitempty"`
	Rows    [][]domain.FieldEntry `json:"rows,omitempty"`
}

// ListFieldsInput is the input schema for the list_custom_fields tool.
type ListFieldsInput struct {
	DocumentID string `json:"document_id" jsonschema:"document id returned by parse_wxr"`
}

// ListFieldsOutput lists the custom field definitions of a document.
type ListFieldsOutput struct {
	Fields []domain.FieldDefinition `json:"fields"`
	Count  int                      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_wxr",
		Description: "Parse a WordPress export (WXR) file and summarise its content",
	}, s.handleParse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_post",
		Description: "Get one post of a parsed export, including resolved custom fields",
	}, s.handleGetPost)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_custom_fields",
		Description: "List the custom field definitions of a parsed export",
	}, s.handleListFields)
}

// handleParse handles the parse_wxr tool invocation.
func (s *Server) handleParse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ParseInput,
) (*mcp.CallToolResult, ParseOutput, error) {
	if input.Path == "" {
		return nil, ParseOutput{}, fmt.Errorf("%w: path is required", domain.ErrInvalidInput)
	}

	result, err := s.ports.Parse.Parse(ctx, input.Path)
	if err != nil {
		return nil, ParseOutput{}, err
	}

	return nil, summarise(result), nil
}

func summarise(result *domain.Result) ParseOutput {
	byType := make(map[string]int, len(result.PostTypes))
	for _, post := range result.Posts.All() {
		byType[post.Type]++
	}

	diagnostics := make([]string, 0, len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		diagnostics = append(diagnostics, d.Message)
	}

	return ParseOutput{
		DocumentID:       result.Source.DocumentID,
		Version:          result.Version,
		BaseURL:          result.BaseURL,
		Authors:          result.Authors.Len(),
		PostTypes:        result.PostTypes,
		PostsByType:      byType,
		PostCount:        result.Posts.Len(),
		CustomFieldNames: result.CustomFieldNames,
		Diagnostics:      diagnostics,
	}
}

// handleGetPost handles the get_post tool invocation.
func (s *Server) handleGetPost(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetPostInput,
) (*mcp.CallToolResult, PostOutput, error) {
	result, err := s.ports.Parse.Get(ctx, input.DocumentID)
	if err != nil {
		return nil, PostOutput{}, fmt.Errorf("document %s: %w", input.DocumentID, err)
	}

	post, ok := result.Post(input.PostID)
	if !ok {
		return nil, PostOutput{}, fmt.Errorf("post %d: %w", input.PostID, domain.ErrNotFound)
	}

	return nil, toPostOutput(post), nil
}

func toPostOutput(post domain.Post) PostOutput {
	out := PostOutput{
		ID:           post.ID,
		Type:         post.Type,
		Title:        post.Title,
		Name:         post.Name,
		Status:       post.Status,
		Author:       post.Author,
		Date:         post.Date,
		Parent:       post.Parent,
		Content:      post.Content,
		Excerpt:      post.Excerpt,
		Terms:        post.Terms,
		CommentCount: len(post.Comments),
		PostMeta:     make([]MetaOutput, 0, len(post.PostMeta)),
		CustomFields: make([]CustomFieldOutput, 0, post.CustomFields.Len()),
	}
	if post.AttachmentURL != nil {
		out.AttachmentURL = *post.AttachmentURL
	}

	for _, m := range post.PostMeta {
		out.PostMeta = append(out.PostMeta, MetaOutput{Key: m.Key, Value: m.Value, Kind: m.Kind.String()})
	}
	for name, field := range post.CustomFields.All() {
		out.CustomFields = append(out.CustomFields, CustomFieldOutput{
			Name:    name,
			Entries: field.Entries,
			Rows:    field.Rows,
		})
	}
	return out
}

// handleListFields handles the list_custom_fields tool invocation.
func (s *Server) handleListFields(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListFieldsInput,
) (*mcp.CallToolResult, ListFieldsOutput, error) {
	result, err := s.ports.Parse.Get(ctx, input.DocumentID)
	if err != nil {
		return nil, ListFieldsOutput{}, fmt.Errorf("document %s: %w", input.DocumentID, err)
	}

	fields := result.CustomFields.Values()
	return nil, ListFieldsOutput{Fields: fields, Count: len(fields)}, nil
}
