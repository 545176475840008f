package get_available_slots

import (
	"context"
	"fmt"

	"github.com/whalys/booking-service/internal/domain"
	"github.com/whalys/booking-service/pkg/types"
)

// UseCase use case для получения доступных слотов на дату.
// Правила применяются строго по порядку: выходной -> прошлое -> горизонт ->
// полуденная отсечка -> занятость слотов -> буфер на сегодня.
type UseCase struct {
	bookingRepo BookingRepository
	catalog     []types.TimeString
	clock       TimeProvider
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog []types.TimeString,
	clock TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		clock:       clock,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	dateStr := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetAvailableSlots: date=%s", dateStr)

	// 2. Получаем текущее локальное время
	now := uc.clock.Now()

	// 3. Выходные не бронируются никогда, независимо от остальных правил
	if !domain.IsWeekday(req.Date) {
		uc.logger.Info("GetAvailableSlots: weekend blocked, date=%s", dateStr)
		return &Response{Date: req.Date, Slots: []types.TimeString{}, Reason: ReasonWeekendBlocked}, nil
	}

	// 4. Прошедшие даты
	if domain.IsDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date in the past, date=%s", dateStr)
		return &Response{Date: req.Date, Slots: []types.TimeString{}}, nil
	}

	// 5. Даты за горизонтом бронирования
	if domain.IsBeyondHorizon(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date beyond %d-month horizon, date=%s",
			domain.AdvanceBookingMonths, dateStr)
		return &Response{Date: req.Date, Slots: []types.TimeString{}}, nil
	}

	isToday := domain.IsSameDay(req.Date, now)

	// 6. На сегодня после полудня бронирование закрыто целиком
	if isToday && domain.IsPastNoonCutoff(now) {
		uc.logger.Info("GetAvailableSlots: after noon cutoff, date=%s, local_time=%s",
			dateStr, now.Format(domain.TimeFormat))
		return &Response{Date: req.Date, Slots: []types.TimeString{}, Reason: ReasonAfterNoonToday}, nil
	}

	// 7. Фильтруем каталог по занятости, сохраняя порядок каталога
	slots := make([]types.TimeString, 0, len(uc.catalog))
	for _, slot := range uc.catalog {
		claimed, err := uc.bookingRepo.IsSlotClaimed(ctx, dateStr, slot)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to check slot %s %s: %v", dateStr, slot, err)
			return nil, fmt.Errorf("%w: failed to check slot claim: %v", ErrInternal, err)
		}
		if !claimed {
			slots = append(slots, slot)
		}
	}

	// 8. На сегодня дополнительно действует минимальный буфер до начала слота
	if isToday {
		slots = filterByNotice(slots, now, domain.MinBookingNoticeMinutes)
	}

	uc.logger.Info("GetAvailableSlots: %d slots available for date=%s", len(slots), dateStr)

	return &Response{Date: req.Date, Slots: slots}, nil
}
