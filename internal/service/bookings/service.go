package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Oasis-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Oasis-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями
type Service struct {
	bookingRepo BookingRepository
	notifier    Notifier
	storage     StorageChecker
	metrics     OutcomeRecorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	storage StorageChecker,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		storage:     storage,
		logger:      logger,
	}
}

// WithMetrics включает учёт результатов операций
func (s *Service) WithMetrics(m OutcomeRecorder) *Service {
	s.metrics = m
	return s
}

// List возвращает все бронирования для администратора, новые первыми
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings, s.bookingRepo.StorageType()), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrStorage, err)
	}

	return models.FromDomainBooking(booking), nil
}

// CancelByToken отменяет бронирование по токену самостоятельной отмены.
// Повторная отмена не ошибка: возвращается статус alreadyCancelled.
func (s *Service) CancelByToken(ctx context.Context, token string) (*models.CancelResponse, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	var (
		cancelled *domain.Booking
		already   bool
	)

	// 1. Находим и отменяем бронирование в одной атомарной записи
	err := s.bookingRepo.Mutate(ctx, func(bookings []*domain.Booking) ([]*domain.Booking, error) {
		for i, b := range bookings {
			if b.CancelToken != token {
				continue
			}
			if b.IsCancelled() {
				already = true
				cancelled = b
				return nil, errNoChange
			}
			if !b.CanBeCancelled() {
				cancelled = b
				return nil, ErrCannotCancel
			}

			updated := b.Clone()
			updated.Status = domain.StatusCancelled
			bookings[i] = updated
			cancelled = updated
			return bookings, nil
		}
		return nil, ErrBookingNotFound
	})

	switch {
	case err == nil:
	case errors.Is(err, errNoChange):
		// уже отменено, запись не нужна
	case errors.Is(err, ErrBookingNotFound):
		s.logger.Warn("CancelByToken: no booking matches the token")
		s.record("cancel", "not_found")
		return nil, ErrBookingNotFound
	case errors.Is(err, ErrCannotCancel):
		s.logger.Warn("CancelByToken: booking id=%s cannot be cancelled, status=%s", cancelled.ID, cancelled.Status)
		s.record("cancel", "rejected")
		return nil, ErrCannotCancel
	default:
		s.logger.Error("CancelByToken: repository error: %v", err)
		s.record("cancel", "storage_error")
		return nil, fmt.Errorf("%w: CancelByToken - repository error: %v", ErrStorage, err)
	}

	if already {
		s.logger.Info("CancelByToken: booking id=%s already cancelled", cancelled.ID)
		s.record("cancel", "already_cancelled")
		return &models.CancelResponse{
			Status:  models.CancelStatusAlreadyCancelled,
			Booking: models.SummaryOf(cancelled),
		}, nil
	}

	// 2. Уведомляем клиента в фоне
	s.notifier.Dispatch(cancelled, domain.NotificationCancellation)

	s.logger.Info("CancelByToken: booking id=%s cancelled by client", cancelled.ID)
	s.record("cancel", "cancelled")
	return &models.CancelResponse{
		Status:  models.CancelStatusCancelled,
		Booking: models.SummaryOf(cancelled),
	}, nil
}

// Update изменяет статус и/или заметки администратора одной записью.
// Администратор может установить любой известный статус, но отменённое
// бронирование восстанавливается только если его слот свободен.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	if req == nil || req.IsEmpty() {
		return nil, fmt.Errorf("%w: status or notes is required", ErrInvalidInput)
	}

	// 1. Валидируем вход до записи
	var newStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := domain.ParseBookingStatus(strings.TrimSpace(*req.Status))
		if err != nil {
			s.logger.Warn("Update: invalid status=%q for booking id=%s", *req.Status, id)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		newStatus = &status
	}

	var newNotes *string
	if req.Notes != nil {
		notes := strings.TrimSpace(*req.Notes)
		if utf8.RuneCountInString(notes) > domain.MaxNotesLength {
			return nil, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
		newNotes = &notes
	}

	// 2. Применяем изменения атомарно
	var (
		updated     *domain.Booking
		wasCanceled bool
		forced      bool
	)
	err := s.bookingRepo.Mutate(ctx, func(bookings []*domain.Booking) ([]*domain.Booking, error) {
		for i, b := range bookings {
			if b.ID != id {
				continue
			}
			wasCanceled = b.IsCancelled()

			next := b.Clone()
			if newStatus != nil {
				// Восстановление отменённого бронирования не должно занять чужой слот
				if b.IsCancelled() && newStatus.IsActive() && slotTaken(bookings, b) {
					return nil, ErrSlotTaken
				}
				forced = b.Status != *newStatus && !b.Status.CanTransitionTo(*newStatus)
				next.Status = *newStatus
			}
			if newNotes != nil {
				next.Notes = *newNotes
			}
			bookings[i] = next
			updated = next
			return bookings, nil
		}
		return nil, ErrBookingNotFound
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		if errors.Is(err, ErrSlotTaken) {
			s.logger.Warn("Update: cannot restore booking id=%s, its slot is taken", id)
			return nil, ErrSlotTaken
		}
		s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrStorage, err)
	}

	// 3. Отмена администратором тоже уведомляет клиента
	if !wasCanceled && updated.IsCancelled() {
		s.notifier.Dispatch(updated, domain.NotificationCancellation)
		s.record("admin_cancel", "cancelled")
	}

	if forced {
		s.logger.Warn("Update: booking id=%s moved outside the regular lifecycle to status=%s", id, updated.Status)
	}

	s.logger.Info("Update: booking id=%s updated, status=%s", id, updated.Status)
	return models.FromDomainBooking(updated), nil
}

// UpdateStatus обновляет статус бронирования
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (*models.BookingResponse, error) {
	return s.Update(ctx, id, &models.UpdateBookingRequest{Status: &status})
}

// UpdateNotes обновляет заметки администратора
func (s *Service) UpdateNotes(ctx context.Context, id string, notes string) (*models.BookingResponse, error) {
	return s.Update(ctx, id, &models.UpdateBookingRequest{Notes: &notes})
}

// Delete удаляет бронирование без возможности восстановления
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.bookingRepo.Mutate(ctx, func(bookings []*domain.Booking) ([]*domain.Booking, error) {
		kept := make([]*domain.Booking, 0, len(bookings))
		for _, b := range bookings {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		if len(kept) == len(bookings) {
			return nil, ErrBookingNotFound
		}
		return kept, nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("Delete: booking id=%s deleted", id)
	s.record("delete", "deleted")
	return nil
}

// SendReminder синхронно отправляет напоминание клиенту
func (s *Service) SendReminder(ctx context.Context, id string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("SendReminder: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("SendReminder: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: SendReminder - repository error: %v", ErrStorage, err)
	}

	if booking.IsCancelled() {
		s.logger.Warn("SendReminder: booking id=%s is cancelled", id)
		return ErrCannotRemind
	}

	if err := s.notifier.Send(ctx, booking, domain.NotificationReminder); err != nil {
		s.logger.Error("SendReminder: failed for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	s.logger.Info("SendReminder: reminder sent for booking id=%s", id)
	return nil
}

// CheckStorage проверяет связь с хранилищем; ошибка возвращается в ответе, а не как error
func (s *Service) CheckStorage(ctx context.Context) *models.StorageStatusResponse {
	resp := &models.StorageStatusResponse{StorageType: s.bookingRepo.StorageType()}

	if err := s.storage.Ping(ctx); err != nil {
		s.logger.Warn("CheckStorage: %s is not reachable: %v", resp.StorageType, err)
		resp.Error = err.Error()
		return resp
	}

	resp.Connected = true
	return resp
}

func (s *Service) record(operation, outcome string) {
	if s.metrics != nil {
		s.metrics.IncBookingOutcome(operation, outcome)
	}
}

// errNoChange прерывает запись без изменений
var errNoChange = errors.New("no change")

// slotTaken проверяет, занят ли слот b другим активным бронированием
func slotTaken(bookings []*domain.Booking, b *domain.Booking) bool {
	for _, other := range bookings {
		if other.ID != b.ID && other.Occupies(b.Date, b.Time) {
			return true
		}
	}
	return false
}
