package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	"github.com/m04kA/Oasis-BookingService/internal/infra/storage/kv"
)

func TestRepository_GetNotFound(t *testing.T) {
	_, err := NewRepository(kv.NewMemoryStore(), "oasis").Get(context.Background())
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestRepository_UpdateCreatesAndReads(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kv.NewMemoryStore(), "oasis")

	saved, err := repo.Update(ctx, func(current *domain.AvailabilitySettings) (domain.AvailabilitySettings, error) {
		assert.Nil(t, current)
		s := domain.DefaultSettings()
		s.EndHour = 17
		s.BufferMinutes = 15
		return s, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 17, saved.EndHour)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got.AvailableDays)
	assert.Equal(t, 9, got.StartHour)
	assert.Equal(t, 17, got.EndHour)
	assert.Equal(t, 15, got.BufferMinutes)
}

func TestRepository_UpdateErrorKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kv.NewMemoryStore(), "oasis")
	errInvalid := errors.New("invalid")

	_, err := repo.Update(ctx, func(current *domain.AvailabilitySettings) (domain.AvailabilitySettings, error) {
		return domain.AvailabilitySettings{}, errInvalid
	})
	assert.ErrorIs(t, err, errInvalid)

	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestRepository_PartialDocumentUsesDefaults(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "oasis:settings", []byte(`{"minNoticeHours":24}`)))

	got, err := NewRepository(store, "oasis").Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 24, got.MinNoticeHours)
	assert.Equal(t, 9, got.StartHour)
	assert.Equal(t, 16, got.EndHour)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got.AvailableDays)
}
