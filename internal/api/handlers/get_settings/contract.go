package get_settings

import (
	"context"

	"github.com/m04kA/Oasis-BookingService/internal/service/availability/models"
)

type SettingsService interface {
	GetSettings(ctx context.Context) *models.SettingsResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
