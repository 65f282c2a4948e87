package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	"github.com/m04kA/Oasis-BookingService/internal/infra/storage/kv"
)

const bookingsKeySuffix = ":bookings"

// MutateFunc получает текущий список (новые первыми) и возвращает новый.
// Ошибка отменяет запись и возвращается из Mutate без обёртки.
type MutateFunc func(bookings []*domain.Booking) ([]*domain.Booking, error)

// Repository репозиторий бронирований: весь список хранится под одним ключом
type Repository struct {
	store Store
	key   string
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store Store, keyPrefix string) *Repository {
	return &Repository{store: store, key: keyPrefix + bookingsKeySuffix}
}

// StorageType название бэкенда хранилища
func (r *Repository) StorageType() string {
	return r.store.Kind()
}

// List возвращает все бронирования; отсутствие ключа означает пустой список
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []*domain.Booking{}, nil
		}
		return nil, fmt.Errorf("%w: List - read %s: %w", ErrStorage, r.key, err)
	}

	bookings, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrDecode, err)
	}
	return bookings, nil
}

// GetByID возвращает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	bookings, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}

// Mutate атомарно читает, изменяет и записывает список бронирований
func (r *Repository) Mutate(ctx context.Context, fn MutateFunc) error {
	err := r.store.Update(ctx, r.key, func(current []byte) ([]byte, error) {
		bookings, err := decode(current)
		if err != nil {
			return nil, fmt.Errorf("%w: Mutate: %v", ErrDecode, err)
		}

		updated, err := fn(bookings)
		if err != nil {
			return nil, err
		}

		raw, err := encode(updated)
		if err != nil {
			return nil, fmt.Errorf("%w: Mutate: %v", ErrEncode, err)
		}
		return raw, nil
	})
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, kv.ErrConcurrentModification):
		return fmt.Errorf("%w: Mutate - %s: %v", ErrConcurrentModification, r.key, err)
	case errors.Is(err, kv.ErrUnavailable):
		return fmt.Errorf("%w: Mutate - write %s: %w", ErrStorage, r.key, err)
	default:
		return err
	}
}

func decode(raw []byte) ([]*domain.Booking, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []*domain.Booking{}, nil
	}

	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(records))
	for _, rec := range records {
		bookings = append(bookings, rec.toDomain())
	}
	return bookings, nil
}

func encode(bookings []*domain.Booking) ([]byte, error) {
	records := make([]record, 0, len(bookings))
	for _, b := range bookings {
		records = append(records, toRecord(b))
	}
	return json.Marshal(records)
}
