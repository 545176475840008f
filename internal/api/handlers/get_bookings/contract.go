package get_bookings

import (
	"context"

	"github.com/whalys/booking-service/internal/domain"
)

type BookingsService interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
