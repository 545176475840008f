package create_booking

import "errors"

var (
	// ErrMissingFields возвращается, когда отсутствует обязательное поле
	ErrMissingFields = errors.New("create_booking: missing required fields")

	// ErrInvalidEmail возвращается при email, не похожем на local@domain.tld
	ErrInvalidEmail = errors.New("create_booking: invalid email format")

	// ErrInvalidSlot возвращается, когда время не входит в каталог слотов
	ErrInvalidSlot = errors.New("create_booking: time is not in the slot catalog")

	// ErrDateInPast возвращается при дате раньше сегодняшней
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrWeekendNotAllowed возвращается при дате, выпадающей на выходной
	ErrWeekendNotAllowed = errors.New("create_booking: weekends are not bookable")

	// ErrBeyondHorizon возвращается при дате за горизонтом бронирования
	ErrBeyondHorizon = errors.New("create_booking: date is beyond the booking horizon")

	// ErrAfterNoonCutoff возвращается при бронировании на сегодня после 12:00
	ErrAfterNoonCutoff = errors.New("create_booking: same-day booking is closed after noon")

	// ErrTooLateToBook возвращается, когда слот на сегодня начинается раньше
	// минимального буфера от текущего времени
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда claim на слот уже существует
	ErrSlotNotAvailable = errors.New("create_booking: slot is no longer available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
