package create_booking

import (
	"fmt"
	"regexp"
	"time"

	"github.com/whalys/booking-service/internal/domain"
	"github.com/whalys/booking-service/pkg/types"
)

// emailRegexp базовая форма local@domain.tld, без претензии на полный RFC 5322
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest валидирует входные данные запроса.
// Порядок проверок фиксирован: обязательные поля -> email -> слот каталога.
func validateRequest(req *Request, catalog []types.TimeString) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrMissingFields)
	}
	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrMissingFields)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrMissingFields)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrMissingFields)
	}
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrMissingFields)
	}

	if !emailRegexp.MatchString(req.Email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, req.Email)
	}

	if !domain.IsInCatalog(catalog, req.Time) {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, req.Time)
	}

	return nil
}

// validateDate проверяет календарные правила для даты бронирования
func validateDate(date, now time.Time) error {
	if domain.IsDateInPast(date, now) {
		return ErrDateInPast
	}

	if !domain.IsWeekday(date) {
		return ErrWeekendNotAllowed
	}

	if domain.IsBeyondHorizon(date, now) {
		return fmt.Errorf("%w: max %d months in advance", ErrBeyondHorizon, domain.AdvanceBookingMonths)
	}

	return nil
}

// validateBookingTime проверяет правила для бронирования на сегодня:
// полуденную отсечку и минимальный буфер до начала слота
func validateBookingTime(date time.Time, slot types.TimeString, now time.Time) error {
	if !domain.IsSameDay(date, now) {
		return nil
	}

	if domain.IsPastNoonCutoff(now) {
		return ErrAfterNoonCutoff
	}

	slotMinutes, err := slot.MinutesOfDay()
	if err != nil {
		return fmt.Errorf("%w: failed to parse slot time: %v", ErrInternal, err)
	}

	currentMinutes := now.Hour()*60 + now.Minute()
	if slotMinutes <= currentMinutes+domain.MinBookingNoticeMinutes {
		return fmt.Errorf("%w: must book more than %d minutes in advance",
			ErrTooLateToBook, domain.MinBookingNoticeMinutes)
	}

	return nil
}
