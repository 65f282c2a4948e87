package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
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

func (m *mockService) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	args := m.Called(id)
	if resp, ok := args.Get(0).(*models.BookingResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/bookings/{bookingId}", h.Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("GetByID", "b-1").Return(&models.BookingResponse{ID: "b-1", CancelToken: "tok"}, nil)
	svc.On("GetByID", "missing").Return(nil, bookings.ErrBookingNotFound)
	svc.On("GetByID", "down").Return(nil, bookings.ErrStorage)
	h := NewHandler(svc, logger.Nop())

	rec := serve(h, "b-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cancelToken":"tok"`)

	assert.Equal(t, http.StatusNotFound, serve(h, "missing").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "down").Code)
}
