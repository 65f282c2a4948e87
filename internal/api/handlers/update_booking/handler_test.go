package update_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/Oasis-BookingService/internal/service/bookings"
	"github.com/m04kA/Oasis-BookingService/internal/service/bookings/models"
	"github.com/m04kA/Oasis-BookingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Update(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	args := m.Called(id, req)
	if resp, ok := args.Get(0).(*models.BookingResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func patch(h *Handler, id, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/bookings/{bookingId}", h.Handle).Methods(http.MethodPatch)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/"+id, strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("Update", "b-1", mock.MatchedBy(func(r *models.UpdateBookingRequest) bool {
		return r.Status != nil && *r.Status == "confirmed" && r.Notes == nil
	})).Return(&models.BookingResponse{ID: "b-1", Status: "confirmed"}, nil)

	rec := patch(NewHandler(svc, logger.Nop()), "b-1", `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "unknown status", err: bookings.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "not found", err: bookings.ErrBookingNotFound, wantCode: http.StatusNotFound},
		{name: "slot taken", err: bookings.ErrSlotTaken, wantCode: http.StatusConflict},
		{name: "storage", err: bookings.ErrStorage, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Update", "b-1", mock.Anything).Return(nil, tt.err)

			rec := patch(NewHandler(svc, logger.Nop()), "b-1", `{"status":"archived"}`)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	svc := &mockService{}

	rec := patch(NewHandler(svc, logger.Nop()), "b-1", `{"state":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
