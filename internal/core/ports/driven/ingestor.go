package driven

import (
	"context"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

// Ingestor fetches the bytes of one export document.
// Strategies differ in where the bytes come from; none of them interpret
// the content.
type Ingestor interface {
	// Ingest reads source and returns its content with checksum and
	// document ID filled in.
	Ingest(ctx context.Context, source string) (*domain.RawDocument, error)
}
