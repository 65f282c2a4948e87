package notifier

import (
	"context"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
)

// Gateway отправляет уведомление о бронировании
type Gateway interface {
	Notify(ctx context.Context, booking *domain.Booking, kind domain.NotificationKind) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// OutcomeRecorder считает результаты доставки
type OutcomeRecorder interface {
	IncNotificationOutcome(kind, outcome string)
}
