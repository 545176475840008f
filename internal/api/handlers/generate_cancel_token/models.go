package generate_cancel_token

// GenerateCancelTokenRequest HTTP request model
type GenerateCancelTokenRequest struct {
	BookingID string `json:"bookingId"`
}

// GenerateCancelTokenResponse HTTP response model
type GenerateCancelTokenResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	CancelURL string `json:"cancelUrl"`
}
