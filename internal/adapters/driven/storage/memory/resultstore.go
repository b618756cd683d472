package memory

import (
	"context"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
	"github.com/custodia-labs/wxr-cli/internal/core/ports/driven"
)

// Ensure ResultStore implements the interface.
var _ driven.ResultStore = (*ResultStore)(nil)

// DefaultResultTTL is used when NewResultStore is given a non-positive TTL.
const DefaultResultTTL = 10 * time.Minute

type storedResult struct {
	result  *domain.Result
	savedAt time.Time
}

// ResultStore keeps parse results in an expiring in-process cache.
type ResultStore struct {
	cache *cache.Cache
	now   func() time.Time
}

// NewResultStore creates a result store whose entries expire after ttl.
func NewResultStore(ttl time.Duration) *ResultStore {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	return &ResultStore{
		cache: cache.New(ttl, 2*ttl),
		now:   time.Now,
	}
}

// Save stores a result under its document ID, refreshing its expiry.
func (s *ResultStore) Save(_ context.Context, result *domain.Result) error {
	if result == nil || result.Source.DocumentID == "" {
		return domain.ErrInvalidInput
	}
	s.cache.Set(result.Source.DocumentID, storedResult{result: result, savedAt: s.now()}, cache.DefaultExpiration)
	return nil
}

// Get retrieves a result by document ID.
func (s *ResultStore) Get(_ context.Context, documentID string) (*domain.Result, error) {
	cached, found := s.cache.Get(documentID)
	if !found {
		return nil, domain.ErrNotFound
	}
	return cached.(storedResult).result, nil
}

// List returns the source info of every live result, oldest first.
func (s *ResultStore) List(_ context.Context) ([]domain.SourceInfo, error) {
	items := s.cache.Items()

	entries := make([]storedResult, 0, len(items))
	for _, item := range items {
		entries = append(entries, item.Object.(storedResult))
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].savedAt.Equal(entries[j].savedAt) {
			return entries[i].savedAt.Before(entries[j].savedAt)
		}
		return entries[i].result.Source.DocumentID < entries[j].result.Source.DocumentID
	})

	infos := make([]domain.SourceInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, e.result.Source)
	}
	return infos, nil
}
