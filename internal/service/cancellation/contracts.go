package cancellation

import (
	"context"
	"time"

	"github.com/whalys/booking-service/internal/domain"
	"github.com/whalys/booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	ReleaseSlot(ctx context.Context, date string, t types.TimeString) error
	RemoveFromIndex(ctx context.Context, id string) error
}

// TokenRepository интерфейс репозитория токенов отмены
type TokenRepository interface {
	Save(ctx context.Context, token string, record *domain.CancelToken) error
	Get(ctx context.Context, token string) (*domain.CancelToken, error)
	Delete(ctx context.Context, token string) error
}

// TimeProvider интерфейс для получения текущего локального времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
