package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for parsed export resources.
	uriScheme = "wxr://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing cached documents.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "documents",
		Name:        "documents",
		Description: "Exports parsed during this session",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	// Template for a whole parse result.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}",
		Name:        "document-result",
		Description: "Full parse result of an export",
		MIMEType:    "application/json",
	}, s.handleResultResource)

	// Template for a single post.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}/posts/{postId}",
		Name:        "document-post",
		Description: "One post of a parsed export with resolved custom fields",
		MIMEType:    "application/json",
	}, s.handlePostResource)
}

// handleDocumentsResource returns the cached documents.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	docs, err := s.ports.Parse.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return jsonResource(req.Params.URI, docs)
}

// handleResultResource returns the full result of a cached document.
func (s *Server) handleResultResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract documentId from URI: wxr://documents/{documentId}
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	result, err := s.ports.Parse.Get(ctx, docID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return jsonResource(req.Params.URI, result)
}

// handlePostResource returns one post of a cached document.
func (s *Server) handlePostResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract ids from URI: wxr://documents/{documentId}/posts/{postId}
	docID, postID, ok := extractPostRef(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	result, err := s.ports.Parse.Get(ctx, docID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}

	post, found := result.Post(postID)
	if !found {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, post)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractDocumentID extracts the document ID from a URI like wxr://documents/{documentId}.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}

// extractPostRef extracts both ids from a URI like
// wxr://documents/{documentId}/posts/{postId}.
func extractPostRef(uri string) (string, int, bool) {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return "", 0, false
	}

	docID, rest, found := strings.Cut(strings.TrimPrefix(uri, prefix), "/posts/")
	if !found || docID == "" || strings.Contains(docID, "/") {
		return "", 0, false
	}

	postID, err := strconv.Atoi(rest)
	if err != nil {
		return "", 0, false
	}
	return docID, postID, true
}
