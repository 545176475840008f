package domain

import (
	"time"

	"github.com/whalys/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusConfirmed is the only modelled state: a booking is created
	// confirmed and exists until cancellation deletes it.
	StatusConfirmed BookingStatus = "confirmed"
)

// Booking represents a confirmed appointment on the portfolio site.
// The JSON field names are both the wire and the storage format: the same
// document is stored under the slot claim key and under the booking id key.
type Booking struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Company *string `json:"company"`
	Message *string `json:"message"`

	// Date календарная дата в формате YYYY-MM-DD, без компонента времени
	Date string `json:"date"`
	// Time один из слотов каталога, HH:MM
	Time types.TimeString `json:"time"`

	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	ConfirmedAt time.Time     `json:"confirmedAt"`
}

// IsConfirmed returns true if the booking is in the confirmed state
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}
