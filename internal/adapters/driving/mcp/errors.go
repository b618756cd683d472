// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants parse WordPress exports and read posts and custom
// field definitions from the results.
package mcp

import "errors"

// ErrMissingParseService is returned when the parse service is not provided.
var ErrMissingParseService = errors.New("mcp: parse service is required")
