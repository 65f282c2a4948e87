package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	availabilityModels "github.com/m04kA/Oasis-BookingService/internal/service/availability/models"
	"github.com/m04kA/Oasis-BookingService/pkg/slotclock"
)

// UseCase use case для чтения доступности клиентом.
// Ошибки хранилища не возвращаются: клиент видит пустой календарь, а не ошибку.
type UseCase struct {
	ledger Ledger
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(ledger Ledger, logger Logger) *UseCase {
	return &UseCase{
		ledger: ledger,
		logger: logger,
	}
}

// Execute возвращает свободные слоты на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	loc := uc.ledger.Location()

	// 1. Валидация даты
	date, err := slotclock.ParseDate(req.Date, loc)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	key := slotclock.DateKey(date, loc)

	// 2. Снимок состояния; при недоступном хранилище отдаём пустой список
	state, err := uc.ledger.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: degraded to empty slots for %s: %v", key, err)
		return &Response{Date: key, Slots: []string{}}, nil
	}

	slots := state.FreeSlotsFor(date)
	uc.logger.Info("GetAvailableSlots: %d free slots on %s", len(slots), key)
	return &Response{Date: key, Slots: slots}, nil
}

// Calendar возвращает свободные слоты по каждой дате диапазона
func (uc *UseCase) Calendar(ctx context.Context, req *CalendarRequest) (*CalendarResponse, error) {
	loc := uc.ledger.Location()

	// 1. Валидация диапазона
	dates, err := calendarRange(req, uc.ledger.Now(), loc)
	if err != nil {
		uc.logger.Warn("GetSlotCalendar: invalid range from=%q to=%q: %v", req.From, req.To, err)
		return nil, err
	}

	resp := &CalendarResponse{
		From: slotclock.DateKey(dates[0], loc),
		To:   slotclock.DateKey(dates[len(dates)-1], loc),
	}

	// 2. Снимок состояния; при недоступном хранилище все дни пустые
	state, err := uc.ledger.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("GetSlotCalendar: degraded to empty calendar %s..%s: %v", resp.From, resp.To, err)
		resp.Days = make(map[string][]string, len(dates))
		for _, d := range dates {
			resp.Days[slotclock.DateKey(d, loc)] = []string{}
		}
		return resp, nil
	}

	resp.Days = state.FreeSlotsAcrossRange(dates)
	uc.logger.Info("GetSlotCalendar: computed %d days %s..%s", len(dates), resp.From, resp.To)
	return resp, nil
}

// Availability возвращает занятые и заблокированные слоты вместе с настройками
func (uc *UseCase) Availability(ctx context.Context, req *AvailabilityRequest) (*AvailabilityResponse, error) {
	loc := uc.ledger.Location()

	// 1. Валидация границ
	from, to, err := dateBounds(req.From, req.To, loc)
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid range from=%q to=%q: %v", req.From, req.To, err)
		return nil, err
	}

	// 2. Снимок состояния; при недоступном хранилище - пустые списки и настройки по умолчанию
	state, err := uc.ledger.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: degraded to defaults: %v", err)
		return &AvailabilityResponse{
			BookedSlots:  []BookedSlot{},
			BlockedSlots: []BlockedSlot{},
			Settings:     availabilityModels.FromDomainSettings(domain.DefaultSettings(), loc.String()),
		}, nil
	}

	booked := state.BookedSlots(from, to)
	resp := &AvailabilityResponse{
		BookedSlots:  make([]BookedSlot, 0, len(booked)),
		BlockedSlots: []BlockedSlot{},
		Settings:     availabilityModels.FromDomainSettings(state.Settings, loc.String()),
	}
	for _, b := range booked {
		resp.BookedSlots = append(resp.BookedSlots, BookedSlot{Date: b.Date, Time: b.Time})
	}
	for _, scope := range state.BlockedScopes(from, to) {
		slot, _ := scope.Time()
		resp.BlockedSlots = append(resp.BlockedSlots, BlockedSlot{
			Date:     scope.Date(),
			Time:     slot,
			WholeDay: scope.IsWholeDay(),
		})
	}

	uc.logger.Info("GetAvailability: %d booked, %d blocked", len(resp.BookedSlots), len(resp.BlockedSlots))
	return resp, nil
}
