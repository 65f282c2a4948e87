package get_slot_calendar

import (
	getAvailableSlots "github.com/m04kA/Oasis-BookingService/internal/usecase/get_available_slots"
)

// SlotCalendarResponse HTTP response model: дата -> свободные слоты
type SlotCalendarResponse struct {
	From string              `json:"from"`
	To   string              `json:"to"`
	Days map[string][]string `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.CalendarResponse) *SlotCalendarResponse {
	return &SlotCalendarResponse{
		From: resp.From,
		To:   resp.To,
		Days: resp.Days,
	}
}
