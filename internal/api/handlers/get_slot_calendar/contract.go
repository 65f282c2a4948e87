package get_slot_calendar

import (
	"context"

	getAvailableSlots "github.com/m04kA/Oasis-BookingService/internal/usecase/get_available_slots"
)

type SlotCalendarUseCase interface {
	Calendar(ctx context.Context, req *getAvailableSlots.CalendarRequest) (*getAvailableSlots.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
