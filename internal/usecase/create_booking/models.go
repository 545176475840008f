package create_booking

import (
	"time"

	"github.com/whalys/booking-service/internal/domain"
	"github.com/whalys/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name    string           // Имя клиента
	Email   string           // Email для подтверждения
	Phone   string           // Телефон
	Company *string          // Компания (опционально)
	Message *string          // Сообщение (опционально)
	Date    time.Time        // Дата бронирования (без времени)
	Time    types.TimeString // Слот каталога, HH:MM
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID string          // Сгенерированный идентификатор
	Booking   *domain.Booking // Созданная запись
}
