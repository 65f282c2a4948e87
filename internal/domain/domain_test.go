package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	for _, s := range AllStatuses {
		got, err := ParseBookingStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseBookingStatus("no_show")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_Occupies(t *testing.T) {
	b := &Booking{Date: "2026-10-19", Time: "10:00 AM", Status: StatusPending}

	assert.True(t, b.Occupies("2026-10-19", "10:00 AM"))
	assert.False(t, b.Occupies("2026-10-19", "10:30 AM"))
	assert.False(t, b.Occupies("2026-10-20", "10:00 AM"))

	b.Status = StatusCancelled
	assert.False(t, b.Occupies("2026-10-19", "10:00 AM"))
}

func TestBooking_Clone(t *testing.T) {
	b := &Booking{ID: "a", Status: StatusPending}
	c := b.Clone()
	c.Status = StatusCancelled

	assert.Equal(t, StatusPending, b.Status)
}

func TestBlockScope(t *testing.T) {
	day := WholeDay("2026-10-20")
	slot := SingleSlot("2026-10-20", "10:00 AM")

	assert.True(t, day.IsWholeDay())
	assert.True(t, day.Covers("2026-10-20", "9:00 AM"))
	assert.True(t, day.Covers("2026-10-20", "3:30 PM"))
	assert.False(t, day.Covers("2026-10-21", "9:00 AM"))

	assert.False(t, slot.IsWholeDay())
	assert.True(t, slot.Covers("2026-10-20", "10:00 AM"))
	assert.False(t, slot.Covers("2026-10-20", "10:30 AM"))

	_, ok := day.Time()
	assert.False(t, ok)
	tm, ok := slot.Time()
	assert.True(t, ok)
	assert.Equal(t, "10:00 AM", tm)

	assert.False(t, day.Equal(slot))
	assert.True(t, slot.Equal(SingleSlot("2026-10-20", "10:00 AM")))
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.AvailableDays)
	assert.Equal(t, 9, s.StartHour)
	assert.Equal(t, 16, s.EndHour)
	assert.False(t, s.HasDailyCap())
	assert.False(t, s.HasAdvanceLimit())
	assert.True(t, s.IsAvailableDay(1))
	assert.False(t, s.IsAvailableDay(6))

	// Изменение копии не затрагивает значения по умолчанию
	s.AvailableDays[0] = 0
	assert.Equal(t, 1, DefaultAvailableDays[0])
}

func TestAvailabilitySettings_Clone(t *testing.T) {
	s := DefaultSettings()
	c := s.Clone()
	c.AvailableDays = append(c.AvailableDays[:0], 6)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.AvailableDays)
}
