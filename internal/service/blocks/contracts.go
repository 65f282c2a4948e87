package blocks

import (
	"context"
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	blockedRepo "github.com/m04kA/Oasis-BookingService/internal/infra/storage/blocked"
)

// BlockedRepository интерфейс репозитория блокировок
type BlockedRepository interface {
	List(ctx context.Context) ([]*domain.BlockedSlot, error)
	Mutate(ctx context.Context, fn blockedRepo.MutateFunc) error
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
