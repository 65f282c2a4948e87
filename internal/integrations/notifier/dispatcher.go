package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
)

const (
	outcomeSent   = "sent"
	outcomeFailed = "failed"
)

// Dispatcher отправляет уведомления в фоне.
// Ошибки доставки только логируются и не влияют на результат операции с бронированием.
type Dispatcher struct {
	gateway Gateway
	timeout time.Duration
	log     Logger
	metrics OutcomeRecorder
	wg      sync.WaitGroup
}

// NewDispatcher создает асинхронный диспетчер; metrics может быть nil
func NewDispatcher(gateway Gateway, timeout time.Duration, log Logger, metrics OutcomeRecorder) *Dispatcher {
	return &Dispatcher{gateway: gateway, timeout: timeout, log: log, metrics: metrics}
}

// Dispatch ставит уведомление в отправку и сразу возвращается.
// Копия бронирования отвязана от вызывающего, контекст запроса не используется.
func (d *Dispatcher) Dispatch(b *domain.Booking, kind domain.NotificationKind) {
	booking := b.Clone()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if p := recover(); p != nil {
				d.log.Error("Dispatch: panic while sending %s for booking=%s: %v", kind, booking.ID, p)
				d.record(kind, outcomeFailed)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.gateway.Notify(ctx, booking, kind); err != nil {
			d.log.Error("Dispatch: %s notification failed for booking=%s: %v", kind, booking.ID, err)
			d.record(kind, outcomeFailed)
			return
		}
		d.record(kind, outcomeSent)
	}()
}

// Send отправляет уведомление синхронно и возвращает ошибку доставки
func (d *Dispatcher) Send(ctx context.Context, b *domain.Booking, kind domain.NotificationKind) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	err := d.gateway.Notify(ctx, b, kind)
	if err != nil {
		d.record(kind, outcomeFailed)
		return err
	}
	d.record(kind, outcomeSent)
	return nil
}

// Wait ждёт завершения отправок, запущенных до вызова
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) record(kind domain.NotificationKind, outcome string) {
	if d.metrics != nil {
		d.metrics.IncNotificationOutcome(string(kind), outcome)
	}
}
