package ledger

import (
	"context"
	"fmt"
	"time"
)

// Service собирает снимок состояния из репозиториев
type Service struct {
	bookingRepo  BookingRepository
	blockedRepo  BlockedRepository
	settings     SettingsProvider
	location     *time.Location
	timeProvider TimeProvider
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}

// NewService создает новый экземпляр сервиса
func NewService(
	bookingRepo BookingRepository,
	blockedRepo BlockedRepository,
	settings SettingsProvider,
	location *time.Location,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		blockedRepo:  blockedRepo,
		settings:     settings,
		location:     location,
		timeProvider: realTimeProvider{},
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Location бизнес-таймзона
func (s *Service) Location() *time.Location {
	return s.location
}

// Now текущее время в бизнес-таймзоне
func (s *Service) Now() time.Time {
	return s.timeProvider.Now().In(s.location)
}

// Snapshot читает настройки, бронирования и блокировки
func (s *Service) Snapshot(ctx context.Context) (*State, error) {
	settings, err := s.settings.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Snapshot - settings: %v", ErrStorage, err)
	}

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Snapshot - bookings: %v", ErrStorage, err)
	}

	blocks, err := s.blockedRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Snapshot - blocks: %v", ErrStorage, err)
	}

	return &State{
		Settings: settings,
		Bookings: bookings,
		Blocks:   blocks,
		Now:      s.Now(),
		Location: s.location,
	}, nil
}
