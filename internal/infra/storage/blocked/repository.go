package blocked

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	"github.com/m04kA/Oasis-BookingService/internal/infra/storage/kv"
)

const blockedKeySuffix = ":blocked"

// record формат хранения: отсутствие time означает блокировку всего дня
type record struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Time      *string   `json:"time,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// MutateFunc получает текущий список блокировок и возвращает новый
type MutateFunc func(blocks []*domain.BlockedSlot) ([]*domain.BlockedSlot, error)

// Repository репозиторий заблокированных слотов
type Repository struct {
	store Store
	key   string
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(store Store, keyPrefix string) *Repository {
	return &Repository{store: store, key: keyPrefix + blockedKeySuffix}
}

// List возвращает все блокировки; отсутствие ключа означает пустой список
func (r *Repository) List(ctx context.Context) ([]*domain.BlockedSlot, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []*domain.BlockedSlot{}, nil
		}
		return nil, fmt.Errorf("%w: List - read %s: %w", ErrStorage, r.key, err)
	}

	blocks, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrDecode, err)
	}
	return blocks, nil
}

// Mutate атомарно читает, изменяет и записывает список блокировок
func (r *Repository) Mutate(ctx context.Context, fn MutateFunc) error {
	err := r.store.Update(ctx, r.key, func(current []byte) ([]byte, error) {
		blocks, err := decode(current)
		if err != nil {
			return nil, fmt.Errorf("%w: Mutate: %v", ErrDecode, err)
		}

		updated, err := fn(blocks)
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

func decode(raw []byte) ([]*domain.BlockedSlot, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []*domain.BlockedSlot{}, nil
	}

	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}

	blocks := make([]*domain.BlockedSlot, 0, len(records))
	for _, rec := range records {
		scope := domain.WholeDay(rec.Date)
		if rec.Time != nil && *rec.Time != "" {
			scope = domain.SingleSlot(rec.Date, *rec.Time)
		}
		blocks = append(blocks, &domain.BlockedSlot{
			ID:        rec.ID,
			Scope:     scope,
			CreatedAt: rec.CreatedAt,
		})
	}
	return blocks, nil
}

func encode(blocks []*domain.BlockedSlot) ([]byte, error) {
	records := make([]record, 0, len(blocks))
	for _, b := range blocks {
		rec := record{
			ID:        b.ID,
			Date:      b.Scope.Date(),
			CreatedAt: b.CreatedAt.UTC(),
		}
		if t, ok := b.Scope.Time(); ok {
			rec.Time = &t
		}
		records = append(records, rec)
	}
	return json.Marshal(records)
}
