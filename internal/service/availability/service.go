package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/Oasis-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/Oasis-BookingService/internal/service/availability/models"
)

// Service сервис настроек доступности
type Service struct {
	settingsRepo SettingsRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	settingsRepo SettingsRepository,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
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

// Current возвращает действующие настройки; если они ещё не сохранялись - значения по умолчанию.
// Ошибка хранилища возвращается как ErrStorage.
func (s *Service) Current(ctx context.Context) (domain.AvailabilitySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return domain.DefaultSettings(), nil
		}
		return domain.AvailabilitySettings{}, fmt.Errorf("%w: Current - repository error: %v", ErrStorage, err)
	}
	return *settings, nil
}

// GetSettings возвращает настройки для отображения.
// При недоступном хранилище отдаёт значения по умолчанию.
func (s *Service) GetSettings(ctx context.Context) *models.SettingsResponse {
	settings, err := s.Current(ctx)
	if err != nil {
		s.logger.Error("GetSettings: falling back to defaults: %v", err)
		settings = domain.DefaultSettings()
	}
	return models.FromDomainSettings(settings, s.location.String())
}

// CandidateSlots возвращает разрешённые политикой слоты на дату
func (s *Service) CandidateSlots(settings domain.AvailabilitySettings, date time.Time) []string {
	return CandidateSlots(settings, date, s.timeProvider.Now(), s.location)
}

// UpdateSettings применяет только переданные поля к текущим настройкам.
// Если итог не проходит валидацию, ничего не сохраняется.
func (s *Service) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: applying partial update")

	if req == nil || req.IsEmpty() {
		s.logger.Warn("UpdateSettings: empty update")
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	updated, err := s.settingsRepo.Update(ctx, func(current *domain.AvailabilitySettings) (domain.AvailabilitySettings, error) {
		base := domain.DefaultSettings()
		if current != nil {
			base = *current
		}

		merged, err := normalizeSettings(req.ApplyTo(base))
		if err != nil {
			return domain.AvailabilitySettings{}, err
		}

		now := s.timeProvider.Now().UTC()
		merged.UpdatedAt = &now
		return merged, nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			s.logger.Warn("UpdateSettings: validation failed: %v", err)
			return nil, err
		}
		s.logger.Error("UpdateSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateSettings - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("UpdateSettings: saved days=%v hours=%d-%d notice=%dh buffer=%dm cap=%d weeks=%d",
		updated.AvailableDays, updated.StartHour, updated.EndHour, updated.MinNoticeHours,
		updated.BufferMinutes, updated.MaxBookingsPerDay, updated.MaxWeeksInAdvance)
	return models.FromDomainSettings(*updated, s.location.String()), nil
}
