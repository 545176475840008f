package domain

import "time"

// CancelToken links a one-time cancellation token to a booking.
// The token value itself is the storage key suffix; the record only carries
// the referenced booking and the issue timestamp.
type CancelToken struct {
	BookingID string    `json:"bookingId"`
	CreatedAt time.Time `json:"createdAt"`
}
