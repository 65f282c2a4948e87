package models

import (
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
)

// Статусы результата отмены по токену
const (
	CancelStatusCancelled        = "cancelled"
	CancelStatusAlreadyCancelled = "alreadyCancelled"
)

// Request модели

// UpdateBookingRequest запрос администратора на изменение бронирования.
// Хотя бы одно поле должно быть задано.
type UpdateBookingRequest struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// IsEmpty возвращает true, если ни одно поле не задано
func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.Status == nil && r.Notes == nil
}

// Response модели

// BookingResponse полные данные бронирования для администратора
type BookingResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	BusinessName string    `json:"businessName,omitempty"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CancelToken  string    `json:"cancelToken"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BookingListResponse список бронирований (новые первыми)
type BookingListResponse struct {
	Bookings    []*BookingResponse `json:"bookings"`
	Total       int                `json:"total"`
	StorageType string             `json:"storageType"`
}

// BookingSummary краткие данные бронирования без контактов, кроме имени
type BookingSummary struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// CancelResponse результат отмены по токену
type CancelResponse struct {
	Status  string          `json:"status"`
	Booking *BookingSummary `json:"booking"`
}

// StorageStatusResponse результат проверки хранилища
type StorageStatusResponse struct {
	StorageType string `json:"storageType"`
	Connected   bool   `json:"connected"`
	Error       string `json:"error,omitempty"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		Name:         b.Contact.Name,
		Email:        b.Contact.Email,
		Phone:        b.Contact.Phone,
		BusinessName: b.Contact.BusinessName,
		Date:         b.Date,
		Time:         b.Time,
		Status:       string(b.Status),
		Notes:        b.Notes,
		CancelToken:  b.CancelToken,
		CreatedAt:    b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, storageType string) *BookingListResponse {
	items := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings:    items,
		Total:       len(items),
		StorageType: storageType,
	}
}

// SummaryOf краткая сводка для страницы отмены
func SummaryOf(b *domain.Booking) *BookingSummary {
	return &BookingSummary{Name: b.Contact.Name, Date: b.Date, Time: b.Time}
}
