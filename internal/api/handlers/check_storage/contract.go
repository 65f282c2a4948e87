package check_storage

import (
	"context"

	"github.com/m04kA/Oasis-BookingService/internal/service/bookings/models"
)

type StorageService interface {
	CheckStorage(ctx context.Context) *models.StorageStatusResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
