package cancel_booking

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Token string `json:"token"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// confirmPageData данные для страницы подтверждения отмены
type confirmPageData struct {
	Token string
	Name  string
	Date  string
	Time  string
}
