package ledger

import (
	"context"
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
}

// BlockedRepository интерфейс репозитория блокировок
type BlockedRepository interface {
	List(ctx context.Context) ([]*domain.BlockedSlot, error)
}

// SettingsProvider источник действующих настроек доступности
type SettingsProvider interface {
	Current(ctx context.Context) (domain.AvailabilitySettings, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}
