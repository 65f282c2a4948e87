package availability

import (
	"context"
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/Oasis-BookingService/internal/infra/storage/settings"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.AvailabilitySettings, error)
	Update(ctx context.Context, fn settingsRepo.UpdateFunc) (*domain.AvailabilitySettings, error)
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
