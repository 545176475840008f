package cancellation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/whalys/booking-service/internal/domain"
	bookingRepo "github.com/whalys/booking-service/internal/infra/storage/booking"
	tokenRepo "github.com/whalys/booking-service/internal/infra/storage/canceltoken"
)

// Service сервис выпуска и погашения токенов отмены.
// Токен одноразовый по замыслу: погашение удаляет claim слота, запись
// бронирования, сам токен и элемент общего списка. Отмена финальна.
type Service struct {
	bookingRepo BookingRepository
	tokenRepo   TokenRepository
	baseURL     string
	clock       TimeProvider
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	bookingRepo BookingRepository,
	tokenRepo TokenRepository,
	baseURL string,
	clock TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		tokenRepo:   tokenRepo,
		baseURL:     strings.TrimRight(baseURL, "/"),
		clock:       clock,
		logger:      logger,
	}
}

// IssueToken выпускает токен отмены для существующего бронирования
func (s *Service) IssueToken(ctx context.Context, bookingID string) (*IssuedToken, error) {
	// Токен выпускается только для существующего бронирования
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("IssueToken: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("IssueToken: failed to get booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	token := newCancelToken(bookingID)
	record := &domain.CancelToken{
		BookingID: bookingID,
		CreatedAt: s.clock.Now(),
	}

	if err := s.tokenRepo.Save(ctx, token, record); err != nil {
		s.logger.Error("IssueToken: failed to save token for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to save token: %v", ErrInternal, err)
	}

	s.logger.Info("IssueToken: token issued for booking id=%s", bookingID)

	return &IssuedToken{
		Token:     token,
		CancelURL: fmt.Sprintf("%s/api/v1/cancel-booking?token=%s", s.baseURL, token),
	}, nil
}

// GetBookingForToken возвращает бронирование, на которое ссылается токен.
// Используется страницей подтверждения отмены; состояние не меняет.
func (s *Service) GetBookingForToken(ctx context.Context, token string) (*domain.Booking, error) {
	record, err := s.tokenRepo.Get(ctx, token)
	if err != nil {
		if errors.Is(err, tokenRepo.ErrTokenNotFound) {
			return nil, ErrTokenNotFound
		}
		s.logger.Error("GetBookingForToken: failed to get token: %v", err)
		return nil, fmt.Errorf("%w: failed to get token: %v", ErrInternal, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, record.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBookingForToken: failed to get booking id=%s: %v", record.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	return booking, nil
}

// Redeem погашает токен: удаляет claim слота, бронирование, токен и элемент
// общего списка. Порядок выбран так, чтобы слот освобождался первым - это
// единственное состояние, которое блокирует других клиентов.
func (s *Service) Redeem(ctx context.Context, token string) error {
	record, err := s.tokenRepo.Get(ctx, token)
	if err != nil {
		if errors.Is(err, tokenRepo.ErrTokenNotFound) {
			s.logger.Warn("Redeem: token not found or already used")
			return ErrTokenNotFound
		}
		s.logger.Error("Redeem: failed to get token: %v", err)
		return fmt.Errorf("%w: failed to get token: %v", ErrInternal, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, record.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Redeem: booking id=%s referenced by token is gone", record.BookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Redeem: failed to get booking id=%s: %v", record.BookingID, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.ReleaseSlot(ctx, booking.Date, booking.Time); err != nil {
		s.logger.Error("Redeem: failed to release slot %s %s: %v", booking.Date, booking.Time, err)
		return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.Delete(ctx, booking.ID); err != nil {
		s.logger.Error("Redeem: failed to delete booking id=%s: %v", booking.ID, err)
		return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
	}

	if err := s.tokenRepo.Delete(ctx, token); err != nil {
		// Токен остается погашаемым повторно, но бронирования уже нет -
		// повторное погашение упрется в ErrBookingNotFound
		s.logger.Error("Redeem: failed to delete token: %v", err)
		return fmt.Errorf("%w: failed to delete token: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.RemoveFromIndex(ctx, booking.ID); err != nil {
		// Список нужен только для админской выдачи; ListAll переживает
		// устаревшие элементы, поэтому здесь достаточно предупреждения
		s.logger.Warn("Redeem: failed to remove booking id=%s from index: %v", booking.ID, err)
	}

	s.logger.Info("Redeem: booking id=%s cancelled, slot %s %s released",
		booking.ID, booking.Date, booking.Time)

	return nil
}

// newCancelToken генерирует токен вида cancel-<bookingId>-<суффикс>
func newCancelToken(bookingID string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("cancel-%s-%s", bookingID, suffix)
}
