package bookings

import (
	"context"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Oasis-BookingService/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Mutate(ctx context.Context, fn bookingRepo.MutateFunc) error
	StorageType() string
}

// Notifier отправка уведомлений о бронированиях
type Notifier interface {
	// Dispatch отправляет в фоне, ошибки только логируются
	Dispatch(booking *domain.Booking, kind domain.NotificationKind)
	// Send отправляет синхронно
	Send(ctx context.Context, booking *domain.Booking, kind domain.NotificationKind) error
}

// StorageChecker проверка доступности хранилища
type StorageChecker interface {
	Ping(ctx context.Context) error
}

// OutcomeRecorder учёт результатов операций с бронированиями
type OutcomeRecorder interface {
	IncBookingOutcome(operation, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
