package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	"github.com/m04kA/Oasis-BookingService/internal/infra/storage/kv"
)

const settingsKeySuffix = ":settings"

// record формат хранения настроек.
// Отсутствующие в JSON поля оставляют nil, чтобы сервис мог подставить значения по умолчанию.
type record struct {
	AvailableDays     []int      `json:"availableDays"`
	StartHour         *int       `json:"startHour"`
	EndHour           *int       `json:"endHour"`
	MinNoticeHours    int        `json:"minNoticeHours"`
	BufferMinutes     int        `json:"bufferMinutes"`
	MaxBookingsPerDay int        `json:"maxBookingsPerDay"`
	MaxWeeksInAdvance int        `json:"maxWeeksInAdvance"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

// UpdateFunc получает текущие настройки (nil, если их ещё нет) и возвращает новые
type UpdateFunc func(current *domain.AvailabilitySettings) (domain.AvailabilitySettings, error)

// Repository репозиторий настроек доступности (singleton)
type Repository struct {
	store Store
	key   string
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(store Store, keyPrefix string) *Repository {
	return &Repository{store: store, key: keyPrefix + settingsKeySuffix}
}

// Get возвращает сохранённые настройки или ErrSettingsNotFound
func (r *Repository) Get(ctx context.Context) (*domain.AvailabilitySettings, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("%w: Get - read %s: %w", ErrStorage, r.key, err)
	}

	settings, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrDecode, err)
	}
	if settings == nil {
		return nil, ErrSettingsNotFound
	}
	return settings, nil
}

// Update атомарно читает, изменяет и записывает настройки
func (r *Repository) Update(ctx context.Context, fn UpdateFunc) (*domain.AvailabilitySettings, error) {
	var result domain.AvailabilitySettings

	err := r.store.Update(ctx, r.key, func(current []byte) ([]byte, error) {
		settings, err := decode(current)
		if err != nil {
			return nil, fmt.Errorf("%w: Update: %v", ErrDecode, err)
		}

		updated, err := fn(settings)
		if err != nil {
			return nil, err
		}

		raw, err := json.Marshal(toRecord(updated))
		if err != nil {
			return nil, fmt.Errorf("%w: Update: %v", ErrEncode, err)
		}
		result = updated
		return raw, nil
	})
	if err != nil {
		if errors.Is(err, kv.ErrUnavailable) || errors.Is(err, kv.ErrConcurrentModification) {
			return nil, fmt.Errorf("%w: Update - write %s: %w", ErrStorage, r.key, err)
		}
		return nil, err
	}

	return &result, nil
}

func decode(raw []byte) (*domain.AvailabilitySettings, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}

	settings := domain.DefaultSettings()
	if rec.AvailableDays != nil {
		settings.AvailableDays = rec.AvailableDays
	}
	if rec.StartHour != nil {
		settings.StartHour = *rec.StartHour
	}
	if rec.EndHour != nil {
		settings.EndHour = *rec.EndHour
	}
	settings.MinNoticeHours = rec.MinNoticeHours
	settings.BufferMinutes = rec.BufferMinutes
	settings.MaxBookingsPerDay = rec.MaxBookingsPerDay
	settings.MaxWeeksInAdvance = rec.MaxWeeksInAdvance
	settings.UpdatedAt = rec.UpdatedAt

	return &settings, nil
}

func toRecord(s domain.AvailabilitySettings) record {
	startHour, endHour := s.StartHour, s.EndHour
	days := s.AvailableDays
	if days == nil {
		days = []int{}
	}
	return record{
		AvailableDays:     days,
		StartHour:         &startHour,
		EndHour:           &endHour,
		MinNoticeHours:    s.MinNoticeHours,
		BufferMinutes:     s.BufferMinutes,
		MaxBookingsPerDay: s.MaxBookingsPerDay,
		MaxWeeksInAdvance: s.MaxWeeksInAdvance,
		UpdatedAt:         s.UpdatedAt,
	}
}
