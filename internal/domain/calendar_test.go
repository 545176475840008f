package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Понедельник 2026-09-14 в качестве опорной даты
func monday(hour, minute int) time.Time {
	return time.Date(2026, 9, 14, hour, minute, 0, 0, time.UTC)
}

func TestIsWeekday(t *testing.T) {
	assert.True(t, IsWeekday(monday(0, 0)))
	assert.True(t, IsWeekday(monday(0, 0).AddDate(0, 0, 4))) // пятница
	assert.False(t, IsWeekday(monday(0, 0).AddDate(0, 0, 5))) // суббота
	assert.False(t, IsWeekday(monday(0, 0).AddDate(0, 0, 6))) // воскресенье
}

func TestIsDateInPast(t *testing.T) {
	now := monday(10, 0)

	assert.True(t, IsDateInPast(now.AddDate(0, 0, -1), now))
	// Сегодня - не прошлое, даже если время дня у date нулевое
	assert.False(t, IsDateInPast(monday(0, 0), now))
	assert.False(t, IsDateInPast(now.AddDate(0, 0, 1), now))
}

func TestIsBeyondHorizon(t *testing.T) {
	now := monday(10, 0)
	horizon := monday(0, 0).AddDate(0, AdvanceBookingMonths, 0)

	// Ровно на границе горизонта - еще можно
	assert.False(t, IsBeyondHorizon(horizon, now))
	assert.True(t, IsBeyondHorizon(horizon.AddDate(0, 0, 1), now))
	assert.False(t, IsBeyondHorizon(now.AddDate(0, 0, 7), now))
}

func TestIsSameDay(t *testing.T) {
	assert.True(t, IsSameDay(monday(0, 0), monday(23, 59)))
	assert.False(t, IsSameDay(monday(0, 0), monday(0, 0).AddDate(0, 0, 1)))
}

func TestIsPastNoonCutoff(t *testing.T) {
	assert.False(t, IsPastNoonCutoff(monday(11, 59)))
	// Ровно 12:00 - уже закрыто
	assert.True(t, IsPastNoonCutoff(monday(12, 0)))
	assert.True(t, IsPastNoonCutoff(monday(18, 30)))
}

func TestIsInCatalog(t *testing.T) {
	assert.True(t, IsInCatalog(DefaultSlotCatalog, "08:00"))
	assert.True(t, IsInCatalog(DefaultSlotCatalog, "15:00"))
	assert.False(t, IsInCatalog(DefaultSlotCatalog, "11:00"))
	assert.False(t, IsInCatalog(DefaultSlotCatalog, ""))
}
