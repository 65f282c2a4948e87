package blocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	"github.com/m04kA/Oasis-BookingService/internal/service/blocks/models"
	"github.com/m04kA/Oasis-BookingService/pkg/slotclock"
)

// Service сервис блокировок слотов администратором
type Service struct {
	blockedRepo  BlockedRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockedRepo BlockedRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		blockedRepo:  blockedRepo,
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

// ParseScope разбирает область блокировки: дата в бизнес-таймзоне и необязательная метка слота
func (s *Service) ParseScope(req *models.ScopeRequest) (domain.BlockScope, error) {
	date, err := slotclock.ParseDate(req.Date, s.location)
	if err != nil {
		return domain.BlockScope{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	dateKey := slotclock.DateKey(date, s.location)

	if req.Time == nil || strings.TrimSpace(*req.Time) == "" {
		return domain.WholeDay(dateKey), nil
	}

	label, err := slotclock.NormalizeLabel(*req.Time)
	if err != nil {
		return domain.BlockScope{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return domain.SingleSlot(dateKey, label), nil
}

// Block блокирует день или слот. Повторная блокировка той же области возвращает существующую запись.
func (s *Service) Block(ctx context.Context, req *models.ScopeRequest) (*models.BlockResponse, error) {
	scope, err := s.ParseScope(req)
	if err != nil {
		s.logger.Warn("Block: invalid scope: %v", err)
		return nil, err
	}

	s.logger.Info("Block: blocking %s", scope)

	var result *domain.BlockedSlot
	err = s.blockedRepo.Mutate(ctx, func(blocks []*domain.BlockedSlot) ([]*domain.BlockedSlot, error) {
		for _, b := range blocks {
			if b.Scope.Equal(scope) {
				result = b
				return blocks, nil
			}
		}

		result = &domain.BlockedSlot{
			ID:        uuid.NewString(),
			Scope:     scope,
			CreatedAt: s.timeProvider.Now().UTC(),
		}
		return append(blocks, result), nil
	})
	if err != nil {
		s.logger.Error("Block: repository error for %s: %v", scope, err)
		return nil, fmt.Errorf("%w: Block - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("Block: %s blocked as id=%s", scope, result.ID)
	return models.FromDomainBlock(result), nil
}

// Unblock снимает блокировку ровно с той же областью.
// Блокировку всего дня нельзя снять по отдельному слоту и наоборот.
func (s *Service) Unblock(ctx context.Context, req *models.ScopeRequest) error {
	scope, err := s.ParseScope(req)
	if err != nil {
		s.logger.Warn("Unblock: invalid scope: %v", err)
		return err
	}

	s.logger.Info("Unblock: unblocking %s", scope)

	err = s.blockedRepo.Mutate(ctx, func(blocks []*domain.BlockedSlot) ([]*domain.BlockedSlot, error) {
		kept := make([]*domain.BlockedSlot, 0, len(blocks))
		for _, b := range blocks {
			if !b.Scope.Equal(scope) {
				kept = append(kept, b)
			}
		}
		if len(kept) == len(blocks) {
			return nil, ErrBlockNotFound
		}
		return kept, nil
	})
	if err != nil {
		if errors.Is(err, ErrBlockNotFound) {
			s.logger.Warn("Unblock: no block matches %s", scope)
			return ErrBlockNotFound
		}
		s.logger.Error("Unblock: repository error for %s: %v", scope, err)
		return fmt.Errorf("%w: Unblock - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("Unblock: %s unblocked", scope)
	return nil
}

// List возвращает все блокировки
func (s *Service) List(ctx context.Context) (*models.BlockListResponse, error) {
	blocks, err := s.blockedRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("List: fetched %d blocks", len(blocks))
	return models.FromDomainBlockList(blocks), nil
}
