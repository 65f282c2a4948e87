package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	availabilityModels "github.com/m04kA/Oasis-BookingService/internal/service/availability/models"
	getAvailableSlots "github.com/m04kA/Oasis-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/Oasis-BookingService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Availability(ctx context.Context, req *getAvailableSlots.AvailabilityRequest) (*getAvailableSlots.AvailabilityResponse, error) {
	args := m.Called(*req)
	if resp, ok := args.Get(0).(*getAvailableSlots.AvailabilityResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Availability", getAvailableSlots.AvailabilityRequest{From: "2026-10-19"}).
		Return(&getAvailableSlots.AvailabilityResponse{
			BookedSlots: []getAvailableSlots.BookedSlot{{Date: "2026-10-19", Time: "10:00 AM"}},
			BlockedSlots: []getAvailableSlots.BlockedSlot{
				{Date: "2026-10-20", WholeDay: true},
				{Date: "2026-10-21", Time: "1:00 PM"},
			},
			Settings: &availabilityModels.SettingsResponse{AvailableDays: []int{1, 2, 3, 4, 5}, StartHour: 9, EndHour: 16},
		}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability?from=2026-10-19", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.JSONEq(t, `[{"date":"2026-10-19","time":"10:00 AM"}]`, string(got["bookedSlots"]))
	assert.JSONEq(t,
		`[{"date":"2026-10-20","wholeDay":true},{"date":"2026-10-21","time":"1:00 PM","wholeDay":false}]`,
		string(got["blockedSlots"]))
	assert.NotContains(t, rec.Body.String(), "email")
}

func TestHandle_InvalidRange(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Availability", mock.Anything).Return(nil, getAvailableSlots.ErrInvalidInput)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability?from=2026-10-20&to=2026-10-01", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
