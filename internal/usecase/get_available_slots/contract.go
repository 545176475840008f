package get_available_slots

import (
	"context"
	"time"

	"github.com/whalys/booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// IsSlotClaimed проверяет наличие claim'а для пары (дата, время)
	IsSlotClaimed(ctx context.Context, date string, t types.TimeString) (bool, error)
}

// TimeProvider интерфейс для получения текущего локального времени
// (в production - localclock.Clock с фиксированным смещением)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
