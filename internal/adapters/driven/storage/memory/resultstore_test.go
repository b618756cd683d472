package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

func newResult(id string) *domain.Result {
	return &domain.Result{Source: domain.SourceInfo{DocumentID: id, URI: id + ".xml"}}
}

func TestResultStore_SaveAndGet(t *testing.T) {
	store := NewResultStore(time.Minute)
	ctx := context.Background()

	result := newResult("doc-1")
	require.NoError(t, store.Save(ctx, result))

	got, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Same(t, result, got)
}

func TestResultStore_Get_NotFound(t *testing.T) {
	store := NewResultStore(time.Minute)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResultStore_Save_InvalidInput(t *testing.T) {
	store := NewResultStore(time.Minute)

	assert.ErrorIs(t, store.Save(context.Background(), nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Save(context.Background(), &domain.Result{}), domain.ErrInvalidInput)
}

func TestResultStore_Expiry(t *testing.T) {
	store := NewResultStore(20 * time.Millisecond)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, newResult("doc-1")))

	assert.Eventually(t, func() bool {
		_, err := store.Get(ctx, "doc-1")
		return err != nil
	}, time.Second, 10*time.Millisecond)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestResultStore_List_OldestFirst(t *testing.T) {
	store := NewResultStore(time.Minute)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	require.NoError(t, store.Save(ctx, newResult("b")))
	require.NoError(t, store.Save(ctx, newResult("a")))
	require.NoError(t, store.Save(ctx, newResult("c")))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "b", list[0].DocumentID)
	assert.Equal(t, "a", list[1].DocumentID)
	assert.Equal(t, "c", list[2].DocumentID)
}

func TestNewResultStore_DefaultTTL(t *testing.T) {
	store := NewResultStore(0)
	require.NoError(t, store.Save(context.Background(), newResult("doc-1")))

	items := store.cache.Items()
	require.Contains(t, items, "doc-1")
	remaining := time.Until(time.Unix(0, items["doc-1"].Expiration))
	assert.InDelta(t, DefaultResultTTL.Seconds(), remaining.Seconds(), 5)
}
