package cancel_booking

import (
	"context"

	"github.com/whalys/booking-service/internal/domain"
)

type CancellationService interface {
	GetBookingForToken(ctx context.Context, token string) (*domain.Booking, error)
	Redeem(ctx context.Context, token string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
