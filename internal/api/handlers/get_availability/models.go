package get_availability

import (
	availabilityModels "github.com/m04kA/Oasis-BookingService/internal/service/availability/models"
	getAvailableSlots "github.com/m04kA/Oasis-BookingService/internal/usecase/get_available_slots"
)

// BookedSlot занятый слот без контактных данных
type BookedSlot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// BlockedSlot блокировка; time отсутствует для блокировки всего дня
type BlockedSlot struct {
	Date     string  `json:"date"`
	Time     *string `json:"time,omitempty"`
	WholeDay bool    `json:"wholeDay"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	BookedSlots  []BookedSlot                         `json:"bookedSlots"`
	BlockedSlots []BlockedSlot                        `json:"blockedSlots"`
	Settings     *availabilityModels.SettingsResponse `json:"settings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.AvailabilityResponse) *AvailabilityResponse {
	out := &AvailabilityResponse{
		BookedSlots:  make([]BookedSlot, 0, len(resp.BookedSlots)),
		BlockedSlots: make([]BlockedSlot, 0, len(resp.BlockedSlots)),
		Settings:     resp.Settings,
	}
	for _, b := range resp.BookedSlots {
		out.BookedSlots = append(out.BookedSlots, BookedSlot{Date: b.Date, Time: b.Time})
	}
	for _, b := range resp.BlockedSlots {
		slot := BlockedSlot{Date: b.Date, WholeDay: b.WholeDay}
		if !b.WholeDay {
			t := b.Time
			slot.Time = &t
		}
		out.BlockedSlots = append(out.BlockedSlots, slot)
	}
	return out
}
