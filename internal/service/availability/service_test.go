package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	"github.com/m04kA/Oasis-BookingService/internal/infra/storage/kv"
	settingsRepo "github.com/m04kA/Oasis-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/Oasis-BookingService/internal/service/availability/models"
	"github.com/m04kA/Oasis-BookingService/pkg/logger"
)

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type unavailableStore struct{}

func (unavailableStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, kv.ErrUnavailable
}

func (unavailableStore) Update(ctx context.Context, key string, fn kv.UpdateFunc) error {
	return kv.ErrUnavailable
}

func intPtr(v int) *int {
	return &v
}

func newTestService(t *testing.T, store settingsRepo.Store) *Service {
	t.Helper()
	loc := eastern(t)
	return NewService(settingsRepo.NewRepository(store, "oasis"), loc, logger.Nop()).
		WithTimeProvider(&fixedTime{now: time.Date(2026, 10, 16, 10, 0, 0, 0, loc)})
}

func TestService_GetSettingsDefaults(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())

	got := svc.GetSettings(context.Background())

	assert.Equal(t, []int{1, 2, 3, 4, 5}, got.AvailableDays)
	assert.Equal(t, 9, got.StartHour)
	assert.Equal(t, 16, got.EndHour)
	assert.Equal(t, 30, got.SlotMinutes)
	assert.Equal(t, "America/New_York", got.Timezone)
	assert.Nil(t, got.UpdatedAt)
}

func TestService_UpdateSettingsMergesPartial(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, kv.NewMemoryStore())

	_, err := svc.UpdateSettings(ctx, &models.UpdateSettingsRequest{EndHour: intPtr(18)})
	require.NoError(t, err)

	days := []int{5, 1, 3, 3}
	got, err := svc.UpdateSettings(ctx, &models.UpdateSettingsRequest{
		AvailableDays: &days,
		BufferMinutes: intPtr(15),
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3, 5}, got.AvailableDays)
	assert.Equal(t, 9, got.StartHour)
	assert.Equal(t, 18, got.EndHour)
	assert.Equal(t, 15, got.BufferMinutes)
	require.NotNil(t, got.UpdatedAt)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 18, current.EndHour)
}

func TestService_UpdateSettingsRejectsInvalid(t *testing.T) {
	days := []int{1, 7}

	tests := []struct {
		name string
		req  *models.UpdateSettingsRequest
	}{
		{"start after end", &models.UpdateSettingsRequest{StartHour: intPtr(17)}},
		{"start equals end", &models.UpdateSettingsRequest{StartHour: intPtr(12), EndHour: intPtr(12)}},
		{"hour out of range", &models.UpdateSettingsRequest{EndHour: intPtr(25)}},
		{"weekday out of range", &models.UpdateSettingsRequest{AvailableDays: &days}},
		{"negative knob", &models.UpdateSettingsRequest{MinNoticeHours: intPtr(-1)}},
		{"empty", &models.UpdateSettingsRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := newTestService(t, kv.NewMemoryStore())

			// Валидное поле рядом с невалидным тоже не применяется
			tt.req.BufferMinutes = intPtr(10)
			if tt.name == "empty" {
				tt.req.BufferMinutes = nil
			}

			_, err := svc.UpdateSettings(ctx, tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)

			current, err := svc.Current(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.DefaultSettings(), current)
		})
	}
}

func TestService_StorageUnavailable(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, unavailableStore{})

	_, err := svc.Current(ctx)
	assert.ErrorIs(t, err, ErrStorage)

	// Отображение деградирует к значениям по умолчанию
	got := svc.GetSettings(ctx)
	assert.Equal(t, 9, got.StartHour)

	_, err = svc.UpdateSettings(ctx, &models.UpdateSettingsRequest{EndHour: intPtr(18)})
	assert.ErrorIs(t, err, ErrStorage)
}

func TestService_CandidateSlotsUsesClock(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	today := day(t, svc.Location(), "2026-10-16")

	slots := svc.CandidateSlots(domain.DefaultSettings(), today)
	require.NotEmpty(t, slots)
	assert.Equal(t, "10:00 AM", slots[0])
}
