package cancel_booking

import (
	"github.com/m04kA/Oasis-BookingService/internal/service/bookings/models"
)

// CancelBookingRequest тело POST запроса; токен может прийти и в query
type CancelBookingRequest struct {
	Token string `json:"token"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Success bool                   `json:"success"`
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Booking *models.BookingSummary `json:"booking"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.CancelResponse) *CancelBookingResponse {
	message := "Your booking has been cancelled"
	if resp.Status == models.CancelStatusAlreadyCancelled {
		message = "This booking has already been cancelled"
	}
	return &CancelBookingResponse{
		Success: true,
		Status:  resp.Status,
		Message: message,
		Booking: resp.Booking,
	}
}
