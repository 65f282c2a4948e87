package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
)

// Retrying повторяет отправку с линейной паузой между попытками
type Retrying struct {
	next        Gateway
	maxAttempts int
	backoff     time.Duration
	log         Logger
}

// NewRetrying оборачивает gateway повторами
func NewRetrying(next Gateway, maxAttempts int, backoff time.Duration, log Logger) *Retrying {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Retrying{next: next, maxAttempts: maxAttempts, backoff: backoff, log: log}
}

func (r *Retrying) Notify(ctx context.Context, b *domain.Booking, kind domain.NotificationKind) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err := r.next.Notify(ctx, b, kind)
		if err == nil {
			return nil
		}
		lastErr = err

		if errors.Is(err, ErrRejected) || errors.Is(err, ErrUnknownKind) {
			return err
		}

		r.log.Warn("Notify: attempt %d/%d failed for booking=%s kind=%s: %v",
			attempt, r.maxAttempts, b.ID, kind, err)

		if attempt == r.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v (last error: %v)", ErrInternal, ctx.Err(), lastErr)
		case <-time.After(time.Duration(attempt) * r.backoff):
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", r.maxAttempts, lastErr)
}
