package ledger

import (
	"sort"
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	"github.com/m04kA/Oasis-BookingService/internal/service/availability"
	"github.com/m04kA/Oasis-BookingService/pkg/slotclock"
)

// State снимок настроек, бронирований и блокировок, по которому считается доступность
type State struct {
	Settings domain.AvailabilitySettings
	Bookings []*domain.Booking
	Blocks   []*domain.BlockedSlot
	Now      time.Time
	Location *time.Location
}

// CandidateSlots слоты, разрешённые политикой на дату
func (s *State) CandidateSlots(date time.Time) []string {
	return availability.CandidateSlots(s.Settings, date, s.Now, s.Location)
}

// IsFree возвращает true, если слот разрешён политикой, не занят активным бронированием,
// не покрыт блокировкой, соблюдает буфер до соседних бронирований и дневной лимит не достигнут
func (s *State) IsFree(date time.Time, slot string) bool {
	if !contains(s.CandidateSlots(date), slot) {
		return false
	}
	return s.isOpen(slotclock.DateKey(date, s.Location), slot)
}

// FreeSlotsFor свободные слоты на дату по возрастанию
func (s *State) FreeSlotsFor(date time.Time) []string {
	key := slotclock.DateKey(date, s.Location)
	if s.dailyCapReached(key) {
		return []string{}
	}

	candidates := s.CandidateSlots(date)
	free := make([]string, 0, len(candidates))
	for _, slot := range candidates {
		if s.isOpen(key, slot) {
			free = append(free, slot)
		}
	}
	return free
}

// FreeSlotsAcrossRange свободные слоты по каждой дате, ключ - дата YYYY-MM-DD
func (s *State) FreeSlotsAcrossRange(dates []time.Time) map[string][]string {
	result := make(map[string][]string, len(dates))
	for _, d := range dates {
		result[slotclock.DateKey(d, s.Location)] = s.FreeSlotsFor(d)
	}
	return result
}

// BookedSlots пары (дата, время) активных бронирований без контактных данных.
// Пустые from/to не ограничивают диапазон.
func (s *State) BookedSlots(from, to string) []domain.BookedSlot {
	slots := make([]domain.BookedSlot, 0, len(s.Bookings))
	for _, b := range s.Bookings {
		if !b.IsActive() || !inRange(b.Date, from, to) {
			continue
		}
		slots = append(slots, domain.BookedSlot{Date: b.Date, Time: b.Time})
	}
	sortSlots(slots)
	return slots
}

// BlockedScopes блокировки в диапазоне дат
func (s *State) BlockedScopes(from, to string) []domain.BlockScope {
	scopes := make([]domain.BlockScope, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		if inRange(b.Scope.Date(), from, to) {
			scopes = append(scopes, b.Scope)
		}
	}
	sort.SliceStable(scopes, func(i, j int) bool {
		return scopes[i].Date() < scopes[j].Date()
	})
	return scopes
}

func (s *State) isOpen(dateKey, slot string) bool {
	if s.dailyCapReached(dateKey) {
		return false
	}

	for _, block := range s.Blocks {
		if block.Covers(dateKey, slot) {
			return false
		}
	}

	slotMinute, err := slotclock.ParseLabel(slot)
	if err != nil {
		return false
	}

	for _, b := range s.Bookings {
		if b.Occupies(dateKey, slot) {
			return false
		}
		if !b.IsActive() || b.Date != dateKey {
			continue
		}
		if s.Settings.BufferMinutes > 0 && withinBuffer(b.Time, slotMinute, s.Settings.BufferMinutes) {
			return false
		}
	}

	return true
}

func (s *State) dailyCapReached(dateKey string) bool {
	if !s.Settings.HasDailyCap() {
		return false
	}
	return s.activeCount(dateKey) >= s.Settings.MaxBookingsPerDay
}

func (s *State) activeCount(dateKey string) int {
	count := 0
	for _, b := range s.Bookings {
		if b.IsActive() && b.Date == dateKey {
			count++
		}
	}
	return count
}

// withinBuffer проверяет зазор между бронированием и слотом в обе стороны.
// Бронирование длится SlotMinutes.
func withinBuffer(bookedLabel string, slotMinute, buffer int) bool {
	bookedMinute, err := slotclock.ParseLabel(bookedLabel)
	if err != nil {
		return false
	}

	var gap int
	switch {
	case bookedMinute < slotMinute:
		gap = slotMinute - (bookedMinute + domain.SlotMinutes)
	case bookedMinute > slotMinute:
		gap = bookedMinute - (slotMinute + domain.SlotMinutes)
	default:
		return true
	}
	return gap < buffer
}

func inRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

func contains(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

func sortSlots(slots []domain.BookedSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		mi, _ := slotclock.ParseLabel(slots[i].Time)
		mj, _ := slotclock.ParseLabel(slots[j].Time)
		return mi < mj
	})
}
