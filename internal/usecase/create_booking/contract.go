package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Oasis-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Oasis-BookingService/internal/service/ledger"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Mutate(ctx context.Context, fn bookingRepo.MutateFunc) error
	StorageType() string
}

// Ledger источник снимка настроек, бронирований и блокировок
type Ledger interface {
	Snapshot(ctx context.Context) (*ledger.State, error)
	Location() *time.Location
}

// Notifier фоновая отправка уведомлений
type Notifier interface {
	Dispatch(booking *domain.Booking, kind domain.NotificationKind)
}

// OutcomeRecorder учёт результатов создания бронирований
type OutcomeRecorder interface {
	IncBookingOutcome(operation, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
