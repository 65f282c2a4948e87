package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	"github.com/m04kA/Oasis-BookingService/pkg/slotclock"
)

// validated нормализованные данные запроса
type validated struct {
	contact domain.Contact
	date    time.Time
	dateKey string
	slot    string
}

// validateRequest проверяет обязательные поля, формат email, даты и метки слота
func validateRequest(req *Request, loc *time.Location) (*validated, error) {
	contact := domain.Contact{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		BusinessName: strings.TrimSpace(req.BusinessName),
	}

	if contact.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if contact.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if contact.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if err := checkLength("name", contact.Name, domain.MaxNameLength); err != nil {
		return nil, err
	}
	if err := checkLength("email", contact.Email, domain.MaxEmailLength); err != nil {
		return nil, err
	}
	if err := checkLength("phone", contact.Phone, domain.MaxPhoneLength); err != nil {
		return nil, err
	}
	if err := checkLength("businessName", contact.BusinessName, domain.MaxBusinessLength); err != nil {
		return nil, err
	}

	if !isEmail(contact.Email) {
		return nil, fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date, err := slotclock.ParseDate(req.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.Time) == "" {
		return nil, fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	slot, err := slotclock.NormalizeLabel(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return &validated{
		contact: contact,
		date:    date,
		dateKey: slotclock.DateKey(date, loc),
		slot:    slot,
	}, nil
}

func checkLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, max)
	}
	return nil
}

// isEmail принимает только голый адрес вида local@domain.tld, без "Name <addr>"
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && strings.Contains(s[at+1:], ".")
}
