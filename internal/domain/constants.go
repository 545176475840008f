package domain

import "github.com/whalys/booking-service/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking policy constants
const (
	// NoonCutoffHour граница "полудня": бронирование на сегодня закрыто,
	// когда локальный час >= 12
	NoonCutoffHour = 12

	// MinBookingNoticeMinutes минимальный запас до начала слота при
	// бронировании на сегодня
	MinBookingNoticeMinutes = 60

	// AdvanceBookingMonths горизонт бронирования в календарных месяцах
	AdvanceBookingMonths = 3
)

// DefaultSlotCatalog фиксированный список времен, доступных для бронирования
// в любой будний день. Порядок каталога - это и порядок выдачи.
var DefaultSlotCatalog = []types.TimeString{
	"08:00",
	"09:00",
	"10:00",
	"14:00",
	"15:00",
}

// IsInCatalog returns true if the given time is one of the catalog slots
func IsInCatalog(catalog []types.TimeString, t types.TimeString) bool {
	for _, slot := range catalog {
		if slot == t {
			return true
		}
	}
	return false
}
