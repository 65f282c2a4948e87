package booking

import (
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
)

// record формат хранения бронирования (плоский JSON объект в списке)
type record struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	BusinessName string    `json:"businessName"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	CreatedAt    time.Time `json:"createdAt"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CancelToken  string    `json:"cancelToken,omitempty"`
}

func toRecord(b *domain.Booking) record {
	return record{
		ID:           b.ID,
		Name:         b.Contact.Name,
		Email:        b.Contact.Email,
		Phone:        b.Contact.Phone,
		BusinessName: b.Contact.BusinessName,
		Date:         b.Date,
		Time:         b.Time,
		CreatedAt:    b.CreatedAt.UTC(),
		Status:       string(b.Status),
		Notes:        b.Notes,
		CancelToken:  b.CancelToken,
	}
}

func (r record) toDomain() *domain.Booking {
	return &domain.Booking{
		ID: r.ID,
		Contact: domain.Contact{
			Name:         r.Name,
			Email:        r.Email,
			Phone:        r.Phone,
			BusinessName: r.BusinessName,
		},
		Date:        normalizeDate(r.Date),
		Time:        r.Time,
		Status:      domain.BookingStatus(r.Status),
		CancelToken: r.CancelToken,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
	}
}

// normalizeDate приводит сохранённые ISO даты ("2026-10-19T04:00:00.000Z") к ключу даты
func normalizeDate(raw string) string {
	if len(raw) > len(domain.DateFormat) && raw[len(domain.DateFormat)] == 'T' {
		return raw[:len(domain.DateFormat)]
	}
	return raw
}
