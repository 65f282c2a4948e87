package create_booking

import (
	"time"

	createBooking "github.com/m04kA/Oasis-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BusinessName string `json:"businessName,omitempty"`
	Date         string `json:"date"` // "2026-10-19" или ISO 8601
	Time         string `json:"time"` // "9:00 AM"
}

// BookingResponse HTTP response model, токен отмены не возвращается
type BookingResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BusinessName string `json:"businessName,omitempty"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success     bool             `json:"success"`
	Booking     *BookingResponse `json:"booking"`
	StorageType string           `json:"storageType"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		BusinessName: r.BusinessName,
		Date:         r.Date,
		Time:         r.Time,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success: true,
		Booking: &BookingResponse{
			ID:           resp.ID,
			Name:         resp.Name,
			Email:        resp.Email,
			Phone:        resp.Phone,
			BusinessName: resp.BusinessName,
			Date:         resp.Date,
			Time:         resp.Time,
			Status:       resp.Status,
			CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		},
		StorageType: resp.StorageType,
	}
}
