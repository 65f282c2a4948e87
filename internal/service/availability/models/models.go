package models

import (
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
)

// Request модели

// UpdateSettingsRequest частичное обновление настроек.
// Все поля опциональны - обновляются только переданные значения.
type UpdateSettingsRequest struct {
	AvailableDays     *[]int `json:"availableDays,omitempty"`
	StartHour         *int   `json:"startHour,omitempty"`
	EndHour           *int   `json:"endHour,omitempty"`
	MinNoticeHours    *int   `json:"minNoticeHours,omitempty"`
	BufferMinutes     *int   `json:"bufferMinutes,omitempty"`
	MaxBookingsPerDay *int   `json:"maxBookingsPerDay,omitempty"`
	MaxWeeksInAdvance *int   `json:"maxWeeksInAdvance,omitempty"`
}

// IsEmpty возвращает true, если не передано ни одного поля
func (r *UpdateSettingsRequest) IsEmpty() bool {
	return r.AvailableDays == nil && r.StartHour == nil && r.EndHour == nil &&
		r.MinNoticeHours == nil && r.BufferMinutes == nil &&
		r.MaxBookingsPerDay == nil && r.MaxWeeksInAdvance == nil
}

// ApplyTo возвращает копию settings с применёнными полями запроса
func (r *UpdateSettingsRequest) ApplyTo(settings domain.AvailabilitySettings) domain.AvailabilitySettings {
	merged := settings.Clone()

	if r.AvailableDays != nil {
		merged.AvailableDays = append([]int(nil), (*r.AvailableDays)...)
	}
	if r.StartHour != nil {
		merged.StartHour = *r.StartHour
	}
	if r.EndHour != nil {
		merged.EndHour = *r.EndHour
	}
	if r.MinNoticeHours != nil {
		merged.MinNoticeHours = *r.MinNoticeHours
	}
	if r.BufferMinutes != nil {
		merged.BufferMinutes = *r.BufferMinutes
	}
	if r.MaxBookingsPerDay != nil {
		merged.MaxBookingsPerDay = *r.MaxBookingsPerDay
	}
	if r.MaxWeeksInAdvance != nil {
		merged.MaxWeeksInAdvance = *r.MaxWeeksInAdvance
	}

	return merged
}

// Response модели

// SettingsResponse настройки доступности
type SettingsResponse struct {
	AvailableDays     []int      `json:"availableDays"`
	StartHour         int        `json:"startHour"`
	EndHour           int        `json:"endHour"`
	SlotMinutes       int        `json:"slotMinutes"`
	MinNoticeHours    int        `json:"minNoticeHours"`
	BufferMinutes     int        `json:"bufferMinutes"`
	MaxBookingsPerDay int        `json:"maxBookingsPerDay"`
	MaxWeeksInAdvance int        `json:"maxWeeksInAdvance"`
	Timezone          string     `json:"timezone"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s domain.AvailabilitySettings, timezone string) *SettingsResponse {
	days := s.AvailableDays
	if days == nil {
		days = []int{}
	}
	return &SettingsResponse{
		AvailableDays:     days,
		StartHour:         s.StartHour,
		EndHour:           s.EndHour,
		SlotMinutes:       domain.SlotMinutes,
		MinNoticeHours:    s.MinNoticeHours,
		BufferMinutes:     s.BufferMinutes,
		MaxBookingsPerDay: s.MaxBookingsPerDay,
		MaxWeeksInAdvance: s.MaxWeeksInAdvance,
		Timezone:          timezone,
		UpdatedAt:         s.UpdatedAt,
	}
}
