package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/whalys/booking-service/internal/domain"
	bookingRepo "github.com/whalys/booking-service/internal/infra/storage/booking"
	"github.com/whalys/booking-service/pkg/types"
)

// UseCase use case для создания бронирования.
// Claim на слот пишется атомарно (insert-if-absent), поэтому из двух
// конкурентных запросов на один слот успеет ровно один - второй получит
// ErrSlotNotAvailable ещё до записи самого бронирования.
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

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, date=%s, time=%s",
		req.Email, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация полей, email и принадлежности слота каталогу
	if err := validateRequest(req, uc.catalog); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее локальное время
	now := uc.clock.Now()

	// 3. Календарные правила: прошлое, выходной, горизонт
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Правила для сегодняшней даты: полуденная отсечка и буфер
	if err := validateBookingTime(req.Date, req.Time, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// 5. Формируем запись бронирования
	dateStr := req.Date.Format(domain.DateFormat)
	booking := &domain.Booking{
		ID:          newBookingID(now),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Message:     req.Message,
		Date:        dateStr,
		Time:        req.Time,
		Status:      domain.StatusConfirmed,
		CreatedAt:   now,
		ConfirmedAt: now,
	}

	// 6. Атомарно занимаем слот
	if err := uc.bookingRepo.ClaimSlot(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot taken, date=%s, time=%s", dateStr, req.Time)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to claim slot: %v", err)
		return nil, fmt.Errorf("%w: failed to claim slot: %v", ErrInternal, err)
	}

	// 7. Пишем запись по id; при неудаче освобождаем claim, чтобы слот
	// не остался занятым несуществующим бронированием
	if err := uc.bookingRepo.Save(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to save booking: %v", err)
		if relErr := uc.bookingRepo.ReleaseSlot(ctx, dateStr, req.Time); relErr != nil {
			uc.logger.Error("CreateBooking: failed to release slot after save failure: %v", relErr)
		}
		return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	// 8. Добавляем id в общий список. Список нужен только для админской
	// выдачи, поэтому неудача не отменяет уже созданное бронирование.
	if err := uc.bookingRepo.AppendToIndex(ctx, booking.ID); err != nil {
		uc.logger.Warn("CreateBooking: failed to append booking to index: %v", err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, date=%s, time=%s",
		booking.ID, dateStr, req.Time)

	return &Response{
		BookingID: booking.ID,
		Booking:   booking,
	}, nil
}

// newBookingID генерирует идентификатор вида booking-<unix-ms>-<суффикс>.
// Уникальность вероятностная; дополнительной страховкой служит то, что запись
// слота выполняется через insert-if-absent.
func newBookingID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("booking-%d-%s", now.UnixMilli(), suffix)
}
