// Package tui provides an interactive terminal browser for parsed exports.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/wxr-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Parse loads the export being browsed.
	Parse driving.ParseService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(parse driving.ParseService) *Ports {
	return &Ports{Parse: parse}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Parse == nil {
		return ErrMissingParseService
	}
	return nil
}
