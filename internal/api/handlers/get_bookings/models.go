package get_bookings

import "github.com/whalys/booking-service/internal/domain"

// BookingsResponse HTTP response model
type BookingsResponse struct {
	Bookings []*domain.Booking `json:"bookings"`
	Total    int               `json:"total"`
}
