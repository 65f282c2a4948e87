package blocked

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	"github.com/m04kA/Oasis-BookingService/internal/infra/storage/kv"
)

func TestRepository_RoundTripScopes(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewRepository(store, "oasis")
	created := time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC)

	err := repo.Mutate(ctx, func(blocks []*domain.BlockedSlot) ([]*domain.BlockedSlot, error) {
		return append(blocks,
			&domain.BlockedSlot{ID: "1", Scope: domain.WholeDay("2026-10-20"), CreatedAt: created},
			&domain.BlockedSlot{ID: "2", Scope: domain.SingleSlot("2026-10-21", "11:00 AM"), CreatedAt: created},
		), nil
	})
	require.NoError(t, err)

	blocks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.True(t, blocks[0].Scope.Equal(domain.WholeDay("2026-10-20")))
	assert.True(t, blocks[1].Scope.Equal(domain.SingleSlot("2026-10-21", "11:00 AM")))
	assert.True(t, blocks[0].CreatedAt.Equal(created))

	raw, err := store.Get(ctx, "oasis:blocked")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"date":"2026-10-20","time"`)
}

func TestRepository_ListEmptyAndNullTime(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewRepository(store, "oasis")

	blocks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, blocks)

	require.NoError(t, store.Set(ctx, "oasis:blocked", []byte(`[{"id":"x","date":"2026-10-20","time":null,"createdAt":"2026-10-16T14:00:00Z"}]`)))
	blocks, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.True(t, blocks[0].Scope.IsWholeDay())
}
