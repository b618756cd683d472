package driven

import (
	"context"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

// DocumentParser turns raw export bytes into a resolved Result.
type DocumentParser interface {
	// Parse builds the full result graph for one document.
	// Load and format failures are returned as errors; per-record anomalies
	// are reported in Result.Diagnostics.
	Parse(ctx context.Context, raw *domain.RawDocument) (*domain.Result, error)
}
