package cancel_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/Oasis-BookingService/internal/api/handlers"
	"github.com/m04kA/Oasis-BookingService/internal/service/bookings"
)

const (
	msgMissingToken       = "missing cancel token"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "invalid or expired cancellation link"
	msgCannotCancel       = "this booking can no longer be cancelled"
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

// Handle GET|POST /api/v1/cancel?token=...
// POST также принимает {"token": "..."} в теле
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))

	if token == "" && r.Method == http.MethodPost && r.ContentLength != 0 {
		var req CancelBookingRequest
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("%s /cancel - Invalid request body: %v", r.Method, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		token = strings.TrimSpace(req.Token)
	}

	if token == "" {
		h.logger.Warn("%s /cancel - Missing token", r.Method)
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	result, err := h.service.CancelByToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingToken)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("%s /cancel - Booking not found for token", r.Method)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("%s /cancel - Booking cannot be cancelled", r.Method)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, bookings.ErrStorage):
			h.logger.Error("%s /cancel - Storage unavailable: %v", r.Method, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("%s /cancel - Failed to cancel booking: %v", r.Method, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s /cancel - Booking cancellation processed: status=%s", r.Method, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
