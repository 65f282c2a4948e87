package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
)

// MessageWriter отправка сообщений в Kafka (*kafka.Writer)
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier публикует события бронирований в топик; письма отправляет внешний потребитель
type KafkaNotifier struct {
	writer   MessageWriter
	composer *Composer
	log      Logger
}

// NewKafkaWriter создает синхронный writer для топика
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
}

// NewKafkaNotifier создает уведомитель поверх writer
func NewKafkaNotifier(writer MessageWriter, composer *Composer, log Logger) *KafkaNotifier {
	return &KafkaNotifier{writer: writer, composer: composer, log: log}
}

func (n *KafkaNotifier) Notify(ctx context.Context, b *domain.Booking, kind domain.NotificationKind) error {
	now := time.Now()
	event := newBookingEvent(b, kind, n.composer.CancelURL(b), now)

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	// Ключ по ID бронирования сохраняет порядок событий одной брони в партиции
	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(b.ID),
		Value: data,
		Time:  now,
	})
	if err != nil {
		return fmt.Errorf("%w: booking=%s kind=%s: %v", ErrPublish, b.ID, kind, err)
	}

	n.log.Info("Notify: %s event published for booking=%s", kind, b.ID)
	return nil
}

// Close закрывает writer
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
