package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Oasis-BookingService/pkg/slotclock"
)

const (
	// defaultCalendarDays длина диапазона календаря, если To не указан
	defaultCalendarDays = 30
	// maxCalendarDays максимальная длина диапазона календаря
	maxCalendarDays = 92
)

// calendarRange проверяет границы календаря и возвращает список дат
func calendarRange(req *CalendarRequest, now time.Time, loc *time.Location) ([]time.Time, error) {
	from := slotclock.StartOfDay(now, loc)
	if strings.TrimSpace(req.From) != "" {
		d, err := slotclock.ParseDate(req.From, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
		}
		from = d
	}

	to := from.AddDate(0, 0, defaultCalendarDays-1)
	if strings.TrimSpace(req.To) != "" {
		d, err := slotclock.ParseDate(req.To, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
		}
		to = d
	}

	// Длина проверяется до построения списка дат
	span := slotclock.DaysBetween(from, to, loc)
	if span < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, slotclock.ErrInvalidRange)
	}
	if span+1 > maxCalendarDays {
		return nil, fmt.Errorf("%w: range must not exceed %d days", ErrInvalidInput, maxCalendarDays)
	}

	dates, err := slotclock.DateRange(from, to, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return dates, nil
}

// dateBounds разбирает необязательные границы диапазона в ключи дат
func dateBounds(fromRaw, toRaw string, loc *time.Location) (string, string, error) {
	var from, to string
	if strings.TrimSpace(fromRaw) != "" {
		d, err := slotclock.ParseDate(fromRaw, loc)
		if err != nil {
			return "", "", fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
		}
		from = slotclock.DateKey(d, loc)
	}
	if strings.TrimSpace(toRaw) != "" {
		d, err := slotclock.ParseDate(toRaw, loc)
		if err != nil {
			return "", "", fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
		}
		to = slotclock.DateKey(d, loc)
	}
	if from != "" && to != "" && to < from {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidInput, slotclock.ErrInvalidRange)
	}
	return from, to, nil
}
