package create_booking

import (
	"context"
	"time"

	"github.com/whalys/booking-service/internal/domain"
	"github.com/whalys/booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ClaimSlot атомарно занимает слот (insert-if-absent)
	ClaimSlot(ctx context.Context, booking *domain.Booking) error
	// ReleaseSlot освобождает claim (компенсация при неудачной записи)
	ReleaseSlot(ctx context.Context, date string, t types.TimeString) error
	// Save сохраняет запись бронирования под ключом id
	Save(ctx context.Context, booking *domain.Booking) error
	// AppendToIndex добавляет id в список all-bookings
	AppendToIndex(ctx context.Context, id string) error
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
