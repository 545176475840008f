package get_available_slots

import (
	"time"

	"github.com/whalys/booking-service/pkg/types"
)

// filterByNotice убирает слоты, начинающиеся не строго позже, чем через
// minNoticeMinutes от текущего локального времени. Применяется только когда
// запрошенная дата - сегодня: нельзя забронировать слот "впритык".
//
// Примеры (буфер 60 минут):
//   - сейчас 08:59, слот 10:00 -> остается (600 > 599)
//   - сейчас 09:00, слот 10:00 -> отбрасывается (600 > 600 ложно)
//   - сейчас 09:00, слот 14:00 -> остается
func filterByNotice(slots []types.TimeString, now time.Time, minNoticeMinutes int) []types.TimeString {
	currentMinutes := now.Hour()*60 + now.Minute()

	filtered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		slotMinutes, err := slot.MinutesOfDay()
		if err != nil {
			// Некорректный слот каталога не должен попасть в выдачу
			continue
		}
		if slotMinutes > currentMinutes+minNoticeMinutes {
			filtered = append(filtered, slot)
		}
	}

	return filtered
}
