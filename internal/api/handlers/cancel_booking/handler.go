package cancel_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/whalys/booking-service/internal/api/handlers"
	"github.com/whalys/booking-service/internal/service/cancellation"
)

const (
	msgInvalidBody     = "corps de requête invalide"
	msgMissingToken    = "le token d'annulation est requis"
	msgInvalidToken    = "token d'annulation invalide ou déjà utilisé"
	msgBookingNotFound = "réservation introuvable"
	msgCancelled       = "rendez-vous annulé avec succès"
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

// HandleConfirmPage GET /api/v1/cancel-booking?token=...
// Отдает HTML-страницу подтверждения: отмена происходит только по POST,
// чтобы префетч почтового клиента не гасил токен.
func (h *Handler) HandleConfirmPage(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if token == "" {
		w.WriteHeader(http.StatusBadRequest)
		h.renderInvalidTokenPage(w)
		return
	}

	booking, err := h.service.GetBookingForToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, cancellation.ErrTokenNotFound), errors.Is(err, cancellation.ErrBookingNotFound):
			h.logger.Warn("GET /cancel-booking - Invalid or used token")
			w.WriteHeader(http.StatusNotFound)
			h.renderInvalidTokenPage(w)
		default:
			h.logger.Error("GET /cancel-booking - Failed to resolve token: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			h.renderInvalidTokenPage(w)
		}
		return
	}

	data := &confirmPageData{
		Token: token,
		Name:  booking.Name,
		Date:  booking.Date,
		Time:  booking.Time.String(),
	}
	if err := confirmPageTmpl.Execute(w, data); err != nil {
		h.logger.Error("GET /cancel-booking - Failed to render page: %v", err)
	}
}

// HandleCancel POST /api/v1/cancel-booking
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cancel-booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	token := strings.TrimSpace(req.Token)
	if token == "" {
		h.logger.Warn("POST /cancel-booking - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	if err := h.service.Redeem(r.Context(), token); err != nil {
		switch {
		case errors.Is(err, cancellation.ErrTokenNotFound):
			h.logger.Warn("POST /cancel-booking - Invalid or used token")
			handlers.RespondBadRequest(w, msgInvalidToken)
		case errors.Is(err, cancellation.ErrBookingNotFound):
			h.logger.Warn("POST /cancel-booking - Booking referenced by token is gone")
			handlers.RespondNotFound(w, msgBookingNotFound)
		default:
			h.logger.Error("POST /cancel-booking - Failed to cancel booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cancel-booking - Booking cancelled")
	handlers.RespondJSON(w, http.StatusOK, &CancelBookingResponse{
		Success: true,
		Message: msgCancelled,
	})
}

func (h *Handler) renderInvalidTokenPage(w http.ResponseWriter) {
	if err := invalidTokenPageTmpl.Execute(w, nil); err != nil {
		h.logger.Error("GET /cancel-booking - Failed to render invalid token page: %v", err)
	}
}
