package availability

import (
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	"github.com/m04kA/Oasis-BookingService/pkg/slotclock"
)

// IsBusinessDay возвращает true, если день недели date входит в availableDays
func IsBusinessDay(settings domain.AvailabilitySettings, date time.Time) bool {
	return settings.IsAvailableDay(slotclock.WeekdayOf(date))
}

// CandidateSlots возвращает слоты, которые политика разрешает на дату date, по возрастанию.
// Пусто, если день нерабочий, уже прошёл или дальше окна maxWeeksInAdvance.
// Слот остаётся, только если now + minNoticeHours <= начало слота.
func CandidateSlots(settings domain.AvailabilitySettings, date, now time.Time, loc *time.Location) []string {
	day := slotclock.StartOfDay(date, loc)
	today := slotclock.StartOfDay(now, loc)

	if !IsBusinessDay(settings, day) {
		return []string{}
	}
	if day.Before(today) {
		return []string{}
	}
	if settings.HasAdvanceLimit() && day.After(today.AddDate(0, 0, settings.MaxWeeksInAdvance*7)) {
		return []string{}
	}

	earliest := now.Add(time.Duration(settings.MinNoticeHours) * time.Hour)

	grid := slotclock.SlotGrid(settings.StartHour, settings.EndHour, domain.SlotMinutes)
	slots := make([]string, 0, len(grid))
	for _, label := range grid {
		start, err := slotclock.SlotStart(day, label)
		if err != nil {
			continue
		}
		if start.Before(earliest) {
			continue
		}
		slots = append(slots, label)
	}

	return slots
}
