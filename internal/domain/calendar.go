package domain

import "time"

// Календарные предикаты политики бронирования. Все функции чистые: текущий
// момент передается параметром now (локальное время сервиса, см. localclock).

// IsWeekday returns true for Monday..Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsDateInPast проверяет, что дата строго раньше сегодняшнего дня
func IsDateInPast(date, now time.Time) bool {
	return truncateToDay(date).Before(truncateToDay(now))
}

// IsBeyondHorizon проверяет, что дата дальше горизонта бронирования
// (сегодня + AdvanceBookingMonths календарных месяцев)
func IsBeyondHorizon(date, now time.Time) bool {
	maxDate := truncateToDay(now).AddDate(0, AdvanceBookingMonths, 0)
	return truncateToDay(date).After(maxDate)
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsPastNoonCutoff проверяет, что локальное время уже достигло полудня
func IsPastNoonCutoff(now time.Time) bool {
	return now.Hour() >= NoonCutoffHour
}

// truncateToDay обнуляет время, чтобы сравнивать только даты
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
