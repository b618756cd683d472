package wxr

import (
	"context"

	"go.uber.org/zap"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
	"github.com/custodia-labs/wxr-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wxr-cli/internal/fingerprint"
	"github.com/custodia-labs/wxr-cli/internal/xmldoc"
)

// Ensure Parser implements the interface.
var _ driven.DocumentParser = (*Parser)(nil)

// Parser builds resolved results from WXR documents.
type Parser struct {
	log *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for per-record warnings.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// NewParser creates a parser. Without options it logs nothing.
func NewParser(opts ...Option) *Parser {
	p := &Parser{log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse loads raw, builds every collection in one pass over the channel,
// then resolves custom fields against the complete registry.
//
// Load and version failures abort before any entity is built. Corrupt
// field definitions are dropped and listed in Result.Diagnostics.
func (p *Parser) Parse(ctx context.Context, raw *domain.RawDocument) (*domain.Result, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := xmldoc.Load(raw.Content)
	if err != nil {
		return nil, err
	}
	version, err := doc.Version()
	if err != nil {
		return nil, err
	}

	log := p.log.With(zap.String("uri", raw.URI))
	acc := build(doc, log)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	posts := newResolver(acc.posts, acc.fields).resolve(acc.meta)

	result := assemble(siteInfo{
		version:     version,
		baseURL:     doc.BaseURL(),
		baseBlogURL: doc.BaseBlogURL(),
	}, acc, posts)
	result.Source = sourceInfo(raw)

	log.Debug("parsed export",
		zap.String("version", version),
		zap.Int("posts", result.Posts.Len()),
		zap.Int("fields", result.CustomFields.Len()),
		zap.Int("diagnostics", len(result.Diagnostics)))

	return result, nil
}

func sourceInfo(raw *domain.RawDocument) domain.SourceInfo {
	info := domain.SourceInfo{
		DocumentID: raw.DocumentID,
		Checksum:   raw.Checksum,
		URI:        raw.URI,
		Size:       len(raw.Content),
	}
	if info.DocumentID == "" || info.Checksum == "" {
		info.DocumentID, info.Checksum = fingerprint.Sum(raw.Content)
	}
	return info
}
