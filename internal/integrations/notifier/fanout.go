package notifier

import (
	"context"
	"errors"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
)

// Fanout отправляет уведомление во все шлюзы; ошибка одного не мешает остальным
type Fanout []Gateway

func (f Fanout) Notify(ctx context.Context, b *domain.Booking, kind domain.NotificationKind) error {
	var errs []error
	for _, g := range f {
		if err := g.Notify(ctx, b, kind); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
