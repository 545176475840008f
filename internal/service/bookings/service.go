package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/whalys/booking-service/internal/domain"
	bookingRepo "github.com/whalys/booking-service/internal/infra/storage/booking"
)

// Service сервис чтения бронирований (поиск по id, админский список)
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID возвращает бронирование по идентификатору
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: failed to get booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	return booking, nil
}

// ListAll возвращает все бронирования в порядке создания.
// Записи, на которые ссылается список, но которых уже нет (например, индекс
// не успели подчистить при отмене), пропускаются с предупреждением.
func (s *Service) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	ids, err := s.bookingRepo.ListIDs(ctx)
	if err != nil {
		s.logger.Error("ListAll: failed to list booking ids: %v", err)
		return nil, fmt.Errorf("%w: failed to list booking ids: %v", ErrInternal, err)
	}

	result := make([]*domain.Booking, 0, len(ids))
	for _, id := range ids {
		booking, err := s.bookingRepo.GetByID(ctx, id)
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("ListAll: stale index entry, booking id=%s is gone", id)
			continue
		}
		if err != nil {
			s.logger.Error("ListAll: failed to get booking id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
		result = append(result, booking)
	}

	return result, nil
}
