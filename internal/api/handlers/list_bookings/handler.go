package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/Oasis-BookingService/internal/api/handlers"
	"github.com/m04kA/Oasis-BookingService/internal/service/bookings"
)

const (
	msgInvalidStatus = "invalid status filter"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: status, from, to (опционально)
//
// Примеры использования:
// - Все бронирования: GET /admin/bookings
// - Только подтверждённые: GET /admin/bookings?status=confirmed
// - За период: GET /admin/bookings?from=2026-10-19&to=2026-10-23
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, err := ParseFilter(q.Get("status"), q.Get("from"), q.Get("to"))
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	result, err := h.service.List(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrStorage):
			h.logger.Error("GET /admin/bookings - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result = filter.Apply(result)

	h.logger.Info("GET /admin/bookings - Bookings retrieved successfully: count=%d, storage=%s",
		result.Total, result.StorageType)
	handlers.RespondJSON(w, http.StatusOK, result)
}
