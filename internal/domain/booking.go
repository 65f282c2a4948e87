package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// AllStatuses lists every recognised booking status
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// ParseBookingStatus converts a raw value into a known status
func ParseBookingStatus(raw string) (BookingStatus, error) {
	for _, s := range AllStatuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", ErrUnknownStatus
}

// IsActive returns true if a booking in this status occupies its slot
func (s BookingStatus) IsActive() bool {
	return s != StatusCancelled
}

// CanTransitionTo reports whether the natural lifecycle allows moving to next.
// Admins may force other transitions; leaving cancelled is allowed only while the slot is free.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// Contact holds the client's contact details
type Contact struct {
	Name         string
	Email        string
	Phone        string
	BusinessName string // optional
}

// Booking represents a reserved consultation slot
type Booking struct {
	ID      string
	Contact Contact
	Date    string // date key, YYYY-MM-DD in business timezone
	Time    string // slot label, e.g. "9:00 AM"
	Status  BookingStatus

	// CancelToken is a capability for self-service cancellation; never exposed to public callers
	CancelToken string
	Notes       string

	CreatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the client may still cancel the booking
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Occupies returns true if the booking is active at the given date and slot
func (b *Booking) Occupies(date, slot string) bool {
	return b.IsActive() && b.Date == date && b.Time == slot
}

// Clone returns a copy that can be mutated without affecting the original
func (b *Booking) Clone() *Booking {
	c := *b
	return &c
}

// BookedSlot is a public (date, time) pair without contact details
type BookedSlot struct {
	Date string
	Time string
}
