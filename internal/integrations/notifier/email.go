package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
)

// EmailClient клиент почтового API Resend
type EmailClient struct {
	baseURL    string
	apiKey     string
	from       string
	composer   *Composer
	httpClient *http.Client
	log        Logger
}

// NewEmailClient создает новый экземпляр клиента почтового API
func NewEmailClient(baseURL, apiKey, from string, composer *Composer, timeout time.Duration, log Logger) *EmailClient {
	return &EmailClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		from:     from,
		composer: composer,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (c *EmailClient) Notify(ctx context.Context, b *domain.Booking, kind domain.NotificationKind) error {
	msg, err := c.composer.Compose(b, kind)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(sendEmailRequest{
		From:    c.from,
		To:      []string{b.Contact.Email},
		Subject: msg.Subject,
		Text:    msg.Body,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: rate limited", ErrInvalidResponse)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var apiErr errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, apiErr.Message)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var sent sendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&sent); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Notify: %s email sent for booking=%s, message_id=%s", kind, b.ID, sent.ID)
	return nil
}
