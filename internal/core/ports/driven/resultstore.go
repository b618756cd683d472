package driven

import (
	"context"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

// ResultStore keeps parse results for later lookup by document ID.
// Entries are not persisted and may expire.
type ResultStore interface {
	// Save stores a result under its Source.DocumentID.
	Save(ctx context.Context, result *domain.Result) error

	// Get retrieves a result by document ID.
	// Returns domain.ErrNotFound when absent or expired.
	Get(ctx context.Context, documentID string) (*domain.Result, error)

	// List returns the source info of every live result, oldest first.
	List(ctx context.Context) ([]domain.SourceInfo, error)
}
