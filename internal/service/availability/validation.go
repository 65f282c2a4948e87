package availability

import (
	"fmt"
	"sort"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
)

// normalizeSettings проверяет итоговые настройки и приводит availableDays к отсортированному набору
func normalizeSettings(s domain.AvailabilitySettings) (domain.AvailabilitySettings, error) {
	if s.StartHour < domain.MinHour || s.StartHour > domain.MaxHour ||
		s.EndHour < domain.MinHour || s.EndHour > domain.MaxHour {
		return s, fmt.Errorf("%w: hours must be within %d..%d", ErrInvalidInput, domain.MinHour, domain.MaxHour)
	}
	if s.StartHour >= s.EndHour {
		return s, fmt.Errorf("%w: startHour (%d) must be less than endHour (%d)", ErrInvalidInput, s.StartHour, s.EndHour)
	}

	seen := make(map[int]struct{}, len(s.AvailableDays))
	days := make([]int, 0, len(s.AvailableDays))
	for _, d := range s.AvailableDays {
		if d < domain.MinWeekday || d > domain.MaxWeekday {
			return s, fmt.Errorf("%w: weekday %d is out of range %d..%d", ErrInvalidInput, d, domain.MinWeekday, domain.MaxWeekday)
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Ints(days)
	s.AvailableDays = days

	knobs := map[string]int{
		"minNoticeHours":    s.MinNoticeHours,
		"bufferMinutes":     s.BufferMinutes,
		"maxBookingsPerDay": s.MaxBookingsPerDay,
		"maxWeeksInAdvance": s.MaxWeeksInAdvance,
	}
	for name, v := range knobs {
		if v < 0 {
			return s, fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, name)
		}
	}

	return s, nil
}
