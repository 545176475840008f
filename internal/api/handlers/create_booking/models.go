package create_booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/whalys/booking-service/internal/domain"
	createBooking "github.com/whalys/booking-service/internal/usecase/create_booking"
	"github.com/whalys/booking-service/pkg/ptr"
	"github.com/whalys/booking-service/pkg/types"
)

var (
	errInvalidDateFormat = errors.New("invalid date format")
	errInvalidTimeFormat = errors.New("invalid time format")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDateFormat, err)
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTimeFormat, err)
	}

	req := &createBooking.Request{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		Phone: strings.TrimSpace(r.Phone),
		Date:  date,
		Time:  slot,
	}
	if company := strings.TrimSpace(r.Company); company != "" {
		req.Company = ptr.Ptr(company)
	}
	if message := strings.TrimSpace(r.Message); message != "" {
		req.Message = ptr.Ptr(message)
	}

	return req, nil
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	BookingID string          `json:"bookingId"`
	Booking   *domain.Booking `json:"booking"`
}

func FromUseCaseResponse(resp *createBooking.Response, message string) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success:   true,
		Message:   message,
		BookingID: resp.BookingID,
		Booking:   resp.Booking,
	}
}
