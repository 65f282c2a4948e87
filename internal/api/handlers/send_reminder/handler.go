package send_reminder

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Oasis-BookingService/internal/api/handlers"
	"github.com/m04kA/Oasis-BookingService/internal/service/bookings"
)

const (
	msgNotFound           = "booking not found"
	msgCannotRemind       = "cannot send a reminder for a cancelled booking"
	msgNotificationFailed = "failed to send reminder"
)

// ReminderResponse HTTP response model
type ReminderResponse struct {
	Success bool `json:"success"`
}

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

// Handle POST /api/v1/admin/bookings/{bookingId}/reminder
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	if err := h.service.SendReminder(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /admin/bookings/{id}/reminder - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotRemind):
			h.logger.Warn("POST /admin/bookings/{id}/reminder - Booking cancelled: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgCannotRemind)

		case errors.Is(err, bookings.ErrNotificationFailed):
			h.logger.Error("POST /admin/bookings/{id}/reminder - Delivery failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgNotificationFailed)

		case errors.Is(err, bookings.ErrStorage):
			h.logger.Error("POST /admin/bookings/{id}/reminder - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /admin/bookings/{id}/reminder - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/{id}/reminder - Reminder sent: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, ReminderResponse{Success: true})
}
