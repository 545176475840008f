package cancellation

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено.
	// Отличается от ErrTokenNotFound, чтобы UI мог показать разные сообщения.
	ErrBookingNotFound = errors.New("cancellation.service: booking not found")

	// ErrTokenNotFound возвращается при отсутствующем или уже использованном токене
	ErrTokenNotFound = errors.New("cancellation.service: token not found or already used")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cancellation.service: internal error")
)
