package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
	"github.com/custodia-labs/wxr-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wxr-cli/internal/fingerprint"
)

// StdinSource is the source name that selects standard input.
const StdinSource = "-"

// Ensure ingestors implement the interface.
var (
	_ driven.Ingestor = (*FileIngestor)(nil)
	_ driven.Ingestor = (*ReaderIngestor)(nil)
)

// FileIngestor reads exports from the local filesystem.
type FileIngestor struct {
	stdin *ReaderIngestor
}

// NewFileIngestor creates a file ingestor that reads "-" from stdin.
func NewFileIngestor(stdin io.Reader) *FileIngestor {
	return &FileIngestor{stdin: NewReaderIngestor(stdin)}
}

// Ingest reads the file named by source.
func (i *FileIngestor) Ingest(ctx context.Context, source string) (*domain.RawDocument, error) {
	if source == "" {
		return nil, fmt.Errorf("%w: empty source", domain.ErrInvalidInput)
	}
	if source == StdinSource {
		return i.stdin.Ingest(ctx, source)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := ResolvePath(source)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return newRawDocument(path, content), nil
}

// ReaderIngestor reads an export from a stream, such as stdin.
type ReaderIngestor struct {
	r io.Reader
}

// NewReaderIngestor creates an ingestor over r.
func NewReaderIngestor(r io.Reader) *ReaderIngestor {
	return &ReaderIngestor{r: r}
}

// Ingest reads the stream to EOF. The source is only recorded as the URI.
func (i *ReaderIngestor) Ingest(ctx context.Context, source string) (*domain.RawDocument, error) {
	if i.r == nil {
		return nil, fmt.Errorf("%w: no reader", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := io.ReadAll(i.r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return newRawDocument(source, content), nil
}

// ResolvePath converts a file:// URI to a local path.
// Bare paths pass through unchanged.
func ResolvePath(source string) string {
	return strings.TrimPrefix(source, "file://")
}

func newRawDocument(uri string, content []byte) *domain.RawDocument {
	id, checksum := fingerprint.Sum(content)
	return &domain.RawDocument{
		URI:        uri,
		Content:    content,
		Checksum:   checksum,
		DocumentID: id,
	}
}
