package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
	"github.com/custodia-labs/wxr-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wxr-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wxr-cli/internal/fingerprint"
	"github.com/custodia-labs/wxr-cli/internal/logger"
)

// Ensure ParseService implements the interface.
var _ driving.ParseService = (*ParseService)(nil)

// ParseService ingests, parses and caches export documents.
type ParseService struct {
	ingestor driven.Ingestor
	parser   driven.DocumentParser
	store    driven.ResultStore
}

// NewParseService creates a new parse service.
func NewParseService(ingestor driven.Ingestor, parser driven.DocumentParser, store driven.ResultStore) *ParseService {
	return &ParseService{
		ingestor: ingestor,
		parser:   parser,
		store:    store,
	}
}

// Parse ingests source and returns its result, reusing a cached result
// for byte-identical content.
func (s *ParseService) Parse(ctx context.Context, source string) (*domain.Result, error) {
	raw, err := s.ingestor.Ingest(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", source, err)
	}
	return s.parseRaw(ctx, raw)
}

// ParseBytes parses content already in memory.
func (s *ParseService) ParseBytes(ctx context.Context, uri string, content []byte) (*domain.Result, error) {
	id, checksum := fingerprint.Sum(content)
	return s.parseRaw(ctx, &domain.RawDocument{
		URI:        uri,
		Content:    content,
		Checksum:   checksum,
		DocumentID: id,
	})
}

func (s *ParseService) parseRaw(ctx context.Context, raw *domain.RawDocument) (*domain.Result, error) {
	if cached, err := s.store.Get(ctx, raw.DocumentID); err == nil && cached.Source.Checksum == raw.Checksum {
		logger.Debug("cache hit for %s (%s)", raw.URI, raw.DocumentID)
		if cached.Source.URI == raw.URI {
			return cached, nil
		}
		// Same bytes under another name: report the name asked for.
		relabelled := *cached
		relabelled.Source.URI = raw.URI
		return &relabelled, nil
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	result, err := s.parser.Parse(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", raw.URI, err)
	}

	if err := s.store.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("cache result: %w", err)
	}
	logger.Debug("parsed %s: %d posts, %d fields", raw.URI, result.Posts.Len(), result.CustomFields.Len())
	return result, nil
}

// Get returns a cached result by document ID.
func (s *ParseService) Get(ctx context.Context, documentID string) (*domain.Result, error) {
	return s.store.Get(ctx, documentID)
}

// List returns the cached documents.
func (s *ParseService) List(ctx context.Context) ([]domain.SourceInfo, error) {
	return s.store.List(ctx)
}
