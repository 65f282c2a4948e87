package notifier

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
)

// Message текст уведомления
type Message struct {
	Subject string
	Body    string
}

// Composer собирает короткие текстовые уведомления
type Composer struct {
	businessName string
	baseURL      string
	timezone     string
}

// NewComposer создает сборщик сообщений
func NewComposer(businessName, baseURL string, loc *time.Location) *Composer {
	return &Composer{
		businessName: businessName,
		baseURL:      strings.TrimRight(baseURL, "/"),
		timezone:     loc.String(),
	}
}

// CancelURL ссылка самостоятельной отмены; пусто, если токена или базового адреса нет
func (c *Composer) CancelURL(b *domain.Booking) string {
	if c.baseURL == "" || b.CancelToken == "" {
		return ""
	}
	return c.baseURL + "/cancel?token=" + url.QueryEscape(b.CancelToken)
}

// Compose возвращает тему и текст письма для типа уведомления
func (c *Composer) Compose(b *domain.Booking, kind domain.NotificationKind) (Message, error) {
	when := fmt.Sprintf("%s at %s (%s)", formatDate(b.Date), b.Time, c.timezone)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\n", b.Contact.Name)

	var subject string
	switch kind {
	case domain.NotificationConfirmation:
		subject = fmt.Sprintf("Your consultation with %s is booked", c.businessName)
		fmt.Fprintf(&sb, "Thank you for booking a 30-minute consultation with %s.\n\nWhen: %s\n", c.businessName, when)
		if link := c.CancelURL(b); link != "" {
			fmt.Fprintf(&sb, "\nNeed to cancel? %s\n", link)
		}
	case domain.NotificationReminder:
		subject = fmt.Sprintf("Reminder: your consultation with %s", c.businessName)
		fmt.Fprintf(&sb, "This is a reminder about your upcoming consultation.\n\nWhen: %s\n", when)
		if link := c.CancelURL(b); link != "" {
			fmt.Fprintf(&sb, "\nCan't make it? %s\n", link)
		}
	case domain.NotificationCancellation:
		subject = fmt.Sprintf("Your consultation with %s was cancelled", c.businessName)
		fmt.Fprintf(&sb, "Your consultation on %s has been cancelled.\n", when)
	default:
		return Message{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	fmt.Fprintf(&sb, "\n%s\n", c.businessName)
	return Message{Subject: subject, Body: sb.String()}, nil
}

func formatDate(dateKey string) string {
	t, err := time.Parse(domain.DateFormat, dateKey)
	if err != nil {
		return dateKey
	}
	return t.Format("Monday, January 2, 2006")
}
