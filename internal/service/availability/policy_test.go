package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	"github.com/m04kA/Oasis-BookingService/pkg/slotclock"
)

func eastern(t *testing.T) *time.Location {
	t.Helper()
	loc, err := slotclock.LoadLocation(slotclock.DefaultTimezone)
	require.NoError(t, err)
	return loc
}

func day(t *testing.T, loc *time.Location, s string) time.Time {
	t.Helper()
	d, err := slotclock.ParseDate(s, loc)
	require.NoError(t, err)
	return d
}

func TestCandidateSlots(t *testing.T) {
	loc := eastern(t)
	// Пятница 16 октября 2026, 10:00 по Нью-Йорку
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, loc)

	tests := []struct {
		name      string
		settings  func(s *domain.AvailabilitySettings)
		date      string
		wantLen   int
		wantFirst string
		wantLast  string
	}{
		{
			name:    "saturday is closed by default",
			date:    "2026-10-17",
			wantLen: 0,
		},
		{
			name:      "monday full grid",
			date:      "2026-10-19",
			wantLen:   14,
			wantFirst: "9:00 AM",
			wantLast:  "3:30 PM",
		},
		{
			name:    "past date",
			date:    "2026-10-15",
			wantLen: 0,
		},
		{
			name:      "today drops started slots",
			date:      "2026-10-16",
			wantLen:   12,
			wantFirst: "10:00 AM",
			wantLast:  "3:30 PM",
		},
		{
			name:      "notice pushes into monday",
			settings:  func(s *domain.AvailabilitySettings) { s.MinNoticeHours = 72 },
			date:      "2026-10-19",
			wantLen:   12,
			wantFirst: "10:00 AM",
		},
		{
			name:     "notice beyond the day",
			settings: func(s *domain.AvailabilitySettings) { s.MinNoticeHours = 24 * 7 },
			date:     "2026-10-19",
			wantLen:  0,
		},
		{
			name:      "inside advance window",
			settings:  func(s *domain.AvailabilitySettings) { s.MaxWeeksInAdvance = 1 },
			date:      "2026-10-23",
			wantLen:   14,
			wantFirst: "9:00 AM",
		},
		{
			name:     "beyond advance window",
			settings: func(s *domain.AvailabilitySettings) { s.MaxWeeksInAdvance = 1 },
			date:     "2026-10-26",
			wantLen:  0,
		},
		{
			name:      "saturday opened",
			settings:  func(s *domain.AvailabilitySettings) { s.AvailableDays = []int{6} },
			date:      "2026-10-17",
			wantLen:   14,
			wantFirst: "9:00 AM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := domain.DefaultSettings()
			if tt.settings != nil {
				tt.settings(&settings)
			}

			slots := CandidateSlots(settings, day(t, loc, tt.date), now, loc)

			require.Len(t, slots, tt.wantLen)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, slots[0])
			}
			if tt.wantLast != "" {
				assert.Equal(t, tt.wantLast, slots[len(slots)-1])
			}
			assert.NotContains(t, slots, "4:00 PM")
		})
	}
}

func TestIsBusinessDay(t *testing.T) {
	loc := eastern(t)
	settings := domain.DefaultSettings()

	assert.True(t, IsBusinessDay(settings, day(t, loc, "2026-10-19")))
	assert.False(t, IsBusinessDay(settings, day(t, loc, "2026-10-17")))
	assert.False(t, IsBusinessDay(settings, day(t, loc, "2026-10-18")))
}

func TestCandidateSlots_NowInAnotherZone(t *testing.T) {
	loc := eastern(t)
	// 02:00 UTC субботы - это ещё вечер пятницы по Нью-Йорку
	now := time.Date(2026, 10, 17, 2, 0, 0, 0, time.UTC)

	slots := CandidateSlots(domain.DefaultSettings(), day(t, loc, "2026-10-16"), now, loc)
	assert.Empty(t, slots)

	slots = CandidateSlots(domain.DefaultSettings(), day(t, loc, "2026-10-19"), now, loc)
	assert.Len(t, slots, 14)
}
