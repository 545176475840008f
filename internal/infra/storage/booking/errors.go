package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда claim на слот уже существует
	ErrSlotTaken = errors.New("booking.repository: slot already claimed")

	// ErrEncode возвращается при ошибке сериализации записи
	ErrEncode = errors.New("booking.repository: failed to encode record")

	// ErrDecode возвращается при ошибке десериализации записи
	ErrDecode = errors.New("booking.repository: failed to decode record")

	// ErrExec возвращается при ошибке выполнения команды хранилища
	ErrExec = errors.New("booking.repository: failed to execute command")
)
