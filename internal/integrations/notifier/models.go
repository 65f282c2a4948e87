package notifier

import (
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
)

// sendEmailRequest тело запроса POST /emails
type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// sendEmailResponse ответ POST /emails
type sendEmailResponse struct {
	ID string `json:"id"`
}

// errorResponse тело ответа с ошибкой
type errorResponse struct {
	Message string `json:"message"`
}

// BookingEvent событие бронирования, публикуемое в Kafka
type BookingEvent struct {
	Type         string    `json:"type"`
	BookingID    string    `json:"bookingId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	BusinessName string    `json:"businessName,omitempty"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	CancelURL    string    `json:"cancelUrl,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}

func newBookingEvent(b *domain.Booking, kind domain.NotificationKind, cancelURL string, now time.Time) BookingEvent {
	return BookingEvent{
		Type:         string(kind),
		BookingID:    b.ID,
		Name:         b.Contact.Name,
		Email:        b.Contact.Email,
		Phone:        b.Contact.Phone,
		BusinessName: b.Contact.BusinessName,
		Date:         b.Date,
		Time:         b.Time,
		Status:       string(b.Status),
		CancelURL:    cancelURL,
		OccurredAt:   now.UTC(),
	}
}
