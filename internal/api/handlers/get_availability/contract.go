package get_availability

import (
	"context"

	getAvailableSlots "github.com/m04kA/Oasis-BookingService/internal/usecase/get_available_slots"
)

type AvailabilityUseCase interface {
	Availability(ctx context.Context, req *getAvailableSlots.AvailabilityRequest) (*getAvailableSlots.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
