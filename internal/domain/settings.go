package domain

import "time"

// AvailabilitySettings is the process-wide weekly availability pattern
type AvailabilitySettings struct {
	AvailableDays     []int // weekday indices, 0=Sunday..6=Saturday
	StartHour         int
	EndHour           int
	MinNoticeHours    int // 0 = unlimited
	BufferMinutes     int // 0 = unlimited
	MaxBookingsPerDay int // 0 = unlimited
	MaxWeeksInAdvance int // 0 = unlimited
	UpdatedAt         *time.Time
}

// DefaultSettings returns the settings used until an admin saves their own
func DefaultSettings() AvailabilitySettings {
	return AvailabilitySettings{
		AvailableDays: append([]int(nil), DefaultAvailableDays...),
		StartHour:     DefaultStartHour,
		EndHour:       DefaultEndHour,
	}
}

// IsAvailableDay returns true if the weekday index is open for bookings
func (s *AvailabilitySettings) IsAvailableDay(weekday int) bool {
	for _, d := range s.AvailableDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// HasDailyCap returns true if the number of bookings per day is limited
func (s *AvailabilitySettings) HasDailyCap() bool {
	return s.MaxBookingsPerDay > 0
}

// HasAdvanceLimit returns true if bookings far in the future are rejected
func (s *AvailabilitySettings) HasAdvanceLimit() bool {
	return s.MaxWeeksInAdvance > 0
}

// Clone returns a deep copy
func (s AvailabilitySettings) Clone() AvailabilitySettings {
	c := s
	c.AvailableDays = append([]int(nil), s.AvailableDays...)
	if s.UpdatedAt != nil {
		t := *s.UpdatedAt
		c.UpdatedAt = &t
	}
	return c
}
