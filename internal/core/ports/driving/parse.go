package driving

import (
	"context"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

// ParseService parses export documents and keeps recent results addressable.
type ParseService interface {
	// Parse ingests source (a path, or "-" for stdin) and returns its result.
	// A byte-identical document parsed earlier is served from the cache.
	Parse(ctx context.Context, source string) (*domain.Result, error)

	// ParseBytes parses content that is already in memory.
	ParseBytes(ctx context.Context, uri string, content []byte) (*domain.Result, error)

	// Get returns a cached result by document ID.
	Get(ctx context.Context, documentID string) (*domain.Result, error)

	// List returns the cached documents.
	List(ctx context.Context) ([]domain.SourceInfo, error)
}
