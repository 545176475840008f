package get_available_slots

import (
	"time"

	"github.com/whalys/booking-service/pkg/types"
)

// Причины, по которым список слотов пуст целиком (отдаются фронтенду,
// чтобы он показал осмысленное сообщение вместо пустого календаря)
const (
	// ReasonWeekendBlocked выходные никогда не бронируются
	ReasonWeekendBlocked = "weekend_blocked"

	// ReasonAfterNoonToday бронирование на сегодня закрыто после 12:00
	ReasonAfterNoonToday = "after_12h_today"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date   time.Time          // Дата, на которую запрашивались слоты
	Slots  []types.TimeString // Доступные слоты в порядке каталога
	Reason string             // Причина пустого списка; пустая строка, если правило не сработало
}
