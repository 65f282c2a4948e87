package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	"github.com/m04kA/Oasis-BookingService/internal/infra/storage/kv"
)

type failingStore struct {
	err error
}

func (s *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, s.err
}

func (s *failingStore) Update(ctx context.Context, key string, fn kv.UpdateFunc) error {
	return s.err
}

func (s *failingStore) Kind() string {
	return "redis"
}

func newBooking(id, date, slot string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		Contact:     domain.Contact{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-0100"},
		Date:        date,
		Time:        slot,
		Status:      domain.StatusPending,
		CancelToken: "token-" + id,
		CreatedAt:   time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC),
	}
}

func TestRepository_ListEmpty(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore(), "oasis")

	bookings, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.Equal(t, "memory", repo.StorageType())
}

func TestRepository_MutateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kv.NewMemoryStore(), "oasis")

	for _, b := range []*domain.Booking{
		newBooking("a", "2026-10-19", "10:00 AM"),
		newBooking("b", "2026-10-19", "10:30 AM"),
	} {
		b := b
		require.NoError(t, repo.Mutate(ctx, func(bookings []*domain.Booking) ([]*domain.Booking, error) {
			return append([]*domain.Booking{b}, bookings...), nil
		}))
	}

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b", bookings[0].ID)
	assert.Equal(t, "a", bookings[1].ID)
	assert.Equal(t, "token-a", bookings[1].CancelToken)
	assert.Equal(t, "Jane Doe", bookings[1].Contact.Name)

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "10:00 AM", got.Time)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_MutateErrorAbortsWrite(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kv.NewMemoryStore(), "oasis")
	errTaken := errors.New("slot taken")

	err := repo.Mutate(ctx, func(bookings []*domain.Booking) ([]*domain.Booking, error) {
		return append(bookings, newBooking("a", "2026-10-19", "10:00 AM")), errTaken
	})
	assert.ErrorIs(t, err, errTaken)

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestRepository_ReadsStoredISODates(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "oasis:bookings", []byte(`[
		{"id":"booking_1","name":"Jane","email":"j@example.com","phone":"1","businessName":"",
		 "date":"2026-10-19T04:00:00.000Z","time":"10:00 AM","createdAt":"2026-10-16T14:00:00.000Z","status":"pending"}
	]`)))

	bookings, err := NewRepository(store, "oasis").List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "2026-10-19", bookings[0].Date)
	assert.Equal(t, domain.StatusPending, bookings[0].Status)
}

func TestRepository_CorruptData(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "oasis:bookings", []byte(`{not json`)))

	_, err := NewRepository(store, "oasis").List(ctx)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestRepository_StorageErrors(t *testing.T) {
	ctx := context.Background()

	repo := NewRepository(&failingStore{err: kv.ErrUnavailable}, "oasis")
	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, ErrStorage)
	err = repo.Mutate(ctx, func(b []*domain.Booking) ([]*domain.Booking, error) { return b, nil })
	assert.ErrorIs(t, err, ErrStorage)

	repo = NewRepository(&failingStore{err: kv.ErrConcurrentModification}, "oasis")
	err = repo.Mutate(ctx, func(b []*domain.Booking) ([]*domain.Booking, error) { return b, nil })
	assert.ErrorIs(t, err, ErrConcurrentModification)
}
