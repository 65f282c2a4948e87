package get_available_slots

import (
	availabilityModels "github.com/m04kA/Oasis-BookingService/internal/service/availability/models"
)

// Request запрос свободных слотов на дату
type Request struct {
	Date string // YYYY-MM-DD или RFC 3339
}

// Response свободные слоты на дату по возрастанию
type Response struct {
	Date  string
	Slots []string
}

// CalendarRequest запрос свободных слотов по диапазону дат, границы включительно.
// Пустой From означает сегодня, пустой To - From плюс defaultCalendarDays.
type CalendarRequest struct {
	From string
	To   string
}

// CalendarResponse свободные слоты по каждой дате диапазона
type CalendarResponse struct {
	From string
	To   string
	Days map[string][]string
}

// AvailabilityRequest запрос занятых и заблокированных слотов; пустые границы не ограничивают диапазон
type AvailabilityRequest struct {
	From string
	To   string
}

// BookedSlot занятый слот без контактных данных
type BookedSlot struct {
	Date string
	Time string
}

// BlockedSlot блокировка; пустой Time означает весь день
type BlockedSlot struct {
	Date     string
	Time     string
	WholeDay bool
}

// AvailabilityResponse публичная сводка для календаря клиента
type AvailabilityResponse struct {
	BookedSlots  []BookedSlot
	BlockedSlots []BlockedSlot
	Settings     *availabilityModels.SettingsResponse
}
