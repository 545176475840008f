package generate_cancel_token

import (
	"errors"
	"net/http"
	"strings"

	"github.com/whalys/booking-service/internal/api/handlers"
	"github.com/whalys/booking-service/internal/service/cancellation"
)

const (
	msgInvalidBody      = "corps de requête invalide"
	msgMissingBookingID = "l'identifiant de réservation est requis"
	msgBookingNotFound  = "réservation introuvable"
)

type Handler struct {
	service CancellationService
	logger  Logger
}

func NewHandler(service CancellationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/generate-cancel-token
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateCancelTokenRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /generate-cancel-token - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	bookingID := strings.TrimSpace(req.BookingID)
	if bookingID == "" {
		h.logger.Warn("POST /generate-cancel-token - Missing bookingId")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	issued, err := h.service.IssueToken(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, cancellation.ErrBookingNotFound):
			h.logger.Warn("POST /generate-cancel-token - Booking not found: id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		default:
			h.logger.Error("POST /generate-cancel-token - Failed to issue token: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /generate-cancel-token - Token issued: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, &GenerateCancelTokenResponse{
		Success:   true,
		Token:     issued.Token,
		CancelURL: issued.CancelURL,
	})
}
