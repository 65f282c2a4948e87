// Package slotclock содержит чистые функции для работы с календарными датами,
// днями недели и метками получасовых слотов ("9:00 AM", "3:30 PM").
//
// Все вычисления выполняются в одной фиксированной бизнес-таймзоне,
// чтобы дата слота не "съезжала" на соседний день в зависимости от локали клиента.
package slotclock

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // таймзона не должна зависеть от наличия zoneinfo в контейнере
)

const (
	// DefaultTimezone бизнес-таймзона по умолчанию (Eastern Time)
	DefaultTimezone = "America/New_York"

	// DateKeyLayout формат ключа даты, используемого для связи бронирований, блокировок и календаря
	DateKeyLayout = "2006-01-02"

	// LabelLayout формат метки слота
	LabelLayout = "3:04 PM"

	// DefaultStepMinutes шаг сетки слотов
	DefaultStepMinutes = 30

	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

var (
	// ErrInvalidLabel возвращается при некорректной метке слота
	ErrInvalidLabel = errors.New("slotclock: invalid slot label")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("slotclock: invalid date")

	// ErrInvalidRange возвращается, когда конец диапазона раньше начала
	ErrInvalidRange = errors.New("slotclock: invalid date range")
)

// LoadLocation загружает бизнес-таймзону; пустое имя означает DefaultTimezone
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("slotclock: load location %q: %w", name, err)
	}
	return loc, nil
}

// SlotGrid генерирует упорядоченную сетку меток слотов между startHour и endHour.
// Последний слот начинается в endHour - stepMinutes.
func SlotGrid(startHour, endHour, stepMinutes int) []string {
	if stepMinutes <= 0 || startHour >= endHour {
		return []string{}
	}

	start := startHour * minutesPerHour
	end := endHour * minutesPerHour

	labels := make([]string, 0, (end-start)/stepMinutes)
	for m := start; m+stepMinutes <= end; m += stepMinutes {
		labels = append(labels, FormatLabel(m))
	}
	return labels
}

// FormatLabel конвертирует минуты от начала дня в метку вида "9:00 AM"
func FormatLabel(minuteOfDay int) string {
	hour := minuteOfDay / minutesPerHour
	minute := minuteOfDay % minutesPerHour

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, minute, ampm)
}

// ParseLabel конвертирует метку слота в минуты от начала дня
func ParseLabel(label string) (int, error) {
	t, err := time.Parse(LabelLayout, strings.ToUpper(strings.TrimSpace(label)))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	minute := t.Hour()*minutesPerHour + t.Minute()
	if minute < 0 || minute >= minutesPerDay {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	return minute, nil
}

// NormalizeLabel приводит метку к каноническому виду ("09:00 am" -> "9:00 AM")
func NormalizeLabel(label string) (string, error) {
	minute, err := ParseLabel(label)
	if err != nil {
		return "", err
	}
	return FormatLabel(minute), nil
}

// WeekdayOf возвращает индекс дня недели (0 = воскресенье .. 6 = суббота)
func WeekdayOf(date time.Time) int {
	return int(date.Weekday())
}

// DateKey возвращает канонический ключ даты в бизнес-таймзоне
func DateKey(date time.Time, loc *time.Location) string {
	return date.In(loc).Format(DateKeyLayout)
}

// StartOfDay возвращает полночь календарного дня t в бизнес-таймзоне
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// ParseDate разбирает дату "YYYY-MM-DD" или RFC 3339.
// Для RFC 3339 берётся календарная дата в том смещении, в котором она записана,
// без конвертации: клиент передаёт полночь своего дня.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}

	if t, err := time.ParseInLocation(DateKeyLayout, s, loc); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
}

// SlotStart возвращает момент начала слота label в день date
func SlotStart(date time.Time, label string) (time.Time, error) {
	minute, err := ParseLabel(label)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, minute/minutesPerHour, minute%minutesPerHour, 0, 0, date.Location()), nil
}

// DaysBetween число календарных дней от from до to, отрицательное если to раньше from.
// Переходы на летнее время не влияют на результат.
func DaysBetween(from, to time.Time, loc *time.Location) int {
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.In(loc).Date()
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// DateRange возвращает все дни от from до to включительно
func DateRange(from, to time.Time, loc *time.Location) ([]time.Time, error) {
	start := StartOfDay(from, loc)
	end := StartOfDay(to, loc)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	days := make([]time.Time, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days, nil
}
