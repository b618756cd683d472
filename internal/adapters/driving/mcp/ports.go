package mcp

import (
	"github.com/custodia-labs/wxr-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Parse parses exports and serves cached results.
	Parse driving.ParseService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Parse == nil {
		return ErrMissingParseService
	}
	return nil
}
