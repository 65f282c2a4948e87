package notifier

import (
	"context"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
)

// LogNotifier пишет уведомления в лог вместо отправки
type LogNotifier struct {
	composer *Composer
	log      Logger
}

// NewLogNotifier создает уведомитель, который только логирует
func NewLogNotifier(composer *Composer, log Logger) *LogNotifier {
	return &LogNotifier{composer: composer, log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, b *domain.Booking, kind domain.NotificationKind) error {
	msg, err := n.composer.Compose(b, kind)
	if err != nil {
		return err
	}
	n.log.Info("Notify: %s to=%s booking=%s date=%s time=%s subject=%q",
		kind, b.Contact.Email, b.ID, b.Date, b.Time, msg.Subject)
	return nil
}
