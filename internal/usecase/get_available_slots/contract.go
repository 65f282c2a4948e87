package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/service/ledger"
)

// Ledger источник снимка настроек, бронирований и блокировок
type Ledger interface {
	Snapshot(ctx context.Context) (*ledger.State, error)
	Now() time.Time
	Location() *time.Location
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
