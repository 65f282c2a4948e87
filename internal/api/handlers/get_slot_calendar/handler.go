package get_slot_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/Oasis-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/Oasis-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRange = "invalid date range, expected from <= to in YYYY-MM-DD, at most 92 days"
)

type Handler struct {
	useCase SlotCalendarUseCase
	logger  Logger
}

func NewHandler(useCase SlotCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/calendar
// Query params: from, to (опционально, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getAvailableSlots.CalendarRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	result, err := h.useCase.Calendar(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots/calendar - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /slots/calendar - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/calendar - Calendar retrieved successfully: from=%s, to=%s", result.From, result.To)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
