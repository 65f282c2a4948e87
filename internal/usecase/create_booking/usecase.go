package create_booking

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Oasis-BookingService/internal/infra/storage/booking"
)

// cancelTokenBytes длина токена отмены до кодирования
const cancelTokenBytes = 32

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	ledger       Ledger
	notifier     Notifier
	metrics      OutcomeRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	ledger Ledger,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		ledger:       ledger,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени для createdAt
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// WithMetrics включает учёт результатов
func (uc *UseCase) WithMetrics(m OutcomeRecorder) *UseCase {
	uc.metrics = m
	return uc
}

// Execute выполняет use case создания бронирования.
// Проверка свободности слота повторяется внутри атомарной записи списка бронирований,
// поэтому два конкурентных запроса на один слот не могут оба завершиться успешно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s", req.Date, req.Time)

	// 1. Валидация входных данных
	in, err := validateRequest(req, uc.ledger.Location())
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.record("invalid")
		return nil, err
	}

	// 2. Снимок настроек и блокировок
	state, err := uc.ledger.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to read availability: %v", err)
		uc.record("storage_error")
		return nil, fmt.Errorf("%w: failed to read availability: %v", ErrStorage, err)
	}

	// 3. Быстрый отказ до записи
	if !state.IsFree(in.date, in.slot) {
		uc.logger.Warn("CreateBooking: slot %s %s is not available", in.dateKey, in.slot)
		uc.record("conflict")
		return nil, ErrSlotNotAvailable
	}

	token, err := newCancelToken()
	if err != nil {
		uc.logger.Error("CreateBooking: failed to generate cancel token: %v", err)
		return nil, fmt.Errorf("%w: failed to generate cancel token: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		ID:          uuid.NewString(),
		Contact:     in.contact,
		Date:        in.dateKey,
		Time:        in.slot,
		Status:      domain.StatusPending,
		CancelToken: token,
		CreatedAt:   uc.timeProvider.Now().UTC(),
	}

	// 4. Повторная проверка по свежему списку и запись в одной атомарной операции
	err = uc.bookingRepo.Mutate(ctx, func(bookings []*domain.Booking) ([]*domain.Booking, error) {
		state.Bookings = bookings
		if !state.IsFree(in.date, in.slot) {
			return nil, ErrSlotNotAvailable
		}
		return append([]*domain.Booking{booking}, bookings...), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable):
			uc.logger.Warn("CreateBooking: slot %s %s was taken concurrently", in.dateKey, in.slot)
			uc.record("conflict")
			return nil, ErrSlotNotAvailable
		case errors.Is(err, bookingRepo.ErrConcurrentModification):
			// Слот при этом мог остаться свободным, клиенту стоит повторить запрос
			uc.logger.Warn("CreateBooking: gave up on %s %s after concurrent writes: %v", in.dateKey, in.slot, err)
			uc.record("contention")
			return nil, fmt.Errorf("%w: concurrent writes, retry later: %v", ErrStorage, err)
		default:
			uc.logger.Error("CreateBooking: failed to save booking: %v", err)
			uc.record("storage_error")
			return nil, fmt.Errorf("%w: failed to save booking: %v", ErrStorage, err)
		}
	}

	uc.logger.Info("CreateBooking: created booking id=%s for %s %s", booking.ID, booking.Date, booking.Time)
	uc.record("created")

	// 5. Подтверждение отправляется в фоне и не влияет на результат
	uc.notifier.Dispatch(booking, domain.NotificationConfirmation)

	return &Response{
		ID:           booking.ID,
		Name:         booking.Contact.Name,
		Email:        booking.Contact.Email,
		Phone:        booking.Contact.Phone,
		BusinessName: booking.Contact.BusinessName,
		Date:         booking.Date,
		Time:         booking.Time,
		Status:       string(booking.Status),
		CreatedAt:    booking.CreatedAt,
		StorageType:  uc.bookingRepo.StorageType(),
	}, nil
}

func (uc *UseCase) record(outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncBookingOutcome("create", outcome)
	}
}

// newCancelToken возвращает случайный токен в base64url без паддинга
func newCancelToken() (string, error) {
	buf := make([]byte, cancelTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
