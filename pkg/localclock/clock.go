package localclock

import "time"

// Clock выдает текущее время, сдвинутое на фиксированное смещение от UTC.
// Сервис работает в одном фиксированном часовом поясе (Реюньон, UTC+4)
// независимо от пояса сервера и клиента, поэтому все проверки дат и времени
// в use cases выполняются через этот провайдер.
type Clock struct {
	offset time.Duration
}

// New создает Clock с указанным смещением в часах от UTC
func New(offsetHours int) *Clock {
	return &Clock{offset: time.Duration(offsetHours) * time.Hour}
}

// Now возвращает текущий момент в локальном времени сервиса
func (c *Clock) Now() time.Time {
	return time.Now().UTC().Add(c.offset)
}

// Offset возвращает настроенное смещение
func (c *Clock) Offset() time.Duration {
	return c.offset
}
