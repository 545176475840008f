package create_booking

import (
	"errors"
	"net/http"

	"github.com/whalys/booking-service/internal/api/handlers"
	createBooking "github.com/whalys/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidBody      = "corps de requête invalide"
	msgInvalidDate      = "format de date invalide, attendu YYYY-MM-DD"
	msgInvalidTime      = "format d'heure invalide, attendu HH:MM"
	msgMissingFields    = "champs requis manquants"
	msgInvalidEmail     = "format d'email invalide"
	msgInvalidSlot      = "créneau horaire invalide"
	msgDateInPast       = "date invalide : date passée"
	msgWeekendBlocked   = "date invalide : week-end non autorisé"
	msgBeyondHorizon    = "date invalide : au-delà de 3 mois"
	msgAfterNoonCutoff  = "réservation non autorisée pour aujourd'hui après 12h"
	msgTooLateToBook    = "ce créneau est trop proche de l'heure actuelle"
	msgSlotNotAvailable = "ce créneau n'est plus disponible"
	msgBookingConfirmed = "rendez-vous confirmé avec succès"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/book-appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book-appointment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /book-appointment - Invalid request fields: %v", err)
		if errors.Is(err, errInvalidDateFormat) {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		h.respondUseCaseError(w, &req, err)
		return
	}

	h.logger.Info("POST /book-appointment - Booking created: id=%s, date=%s, time=%s",
		result.BookingID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, msgBookingConfirmed))
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, req *CreateBookingRequest, err error) {
	switch {
	case errors.Is(err, createBooking.ErrMissingFields):
		h.logger.Warn("POST /book-appointment - Missing required fields")
		handlers.RespondBadRequest(w, msgMissingFields)
	case errors.Is(err, createBooking.ErrInvalidEmail):
		h.logger.Warn("POST /book-appointment - Invalid email format")
		handlers.RespondBadRequest(w, msgInvalidEmail)
	case errors.Is(err, createBooking.ErrInvalidSlot):
		h.logger.Warn("POST /book-appointment - Slot not in catalog: time=%s", req.Time)
		handlers.RespondBadRequest(w, msgInvalidSlot)
	case errors.Is(err, createBooking.ErrDateInPast):
		h.logger.Warn("POST /book-appointment - Date in the past: date=%s", req.Date)
		handlers.RespondBadRequest(w, msgDateInPast)
	case errors.Is(err, createBooking.ErrWeekendNotAllowed):
		h.logger.Warn("POST /book-appointment - Weekend date: date=%s", req.Date)
		handlers.RespondBadRequest(w, msgWeekendBlocked)
	case errors.Is(err, createBooking.ErrBeyondHorizon):
		h.logger.Warn("POST /book-appointment - Date beyond booking horizon: date=%s", req.Date)
		handlers.RespondBadRequest(w, msgBeyondHorizon)
	case errors.Is(err, createBooking.ErrAfterNoonCutoff):
		h.logger.Warn("POST /book-appointment - Same-day booking after cutoff: date=%s", req.Date)
		handlers.RespondBadRequest(w, msgAfterNoonCutoff)
	case errors.Is(err, createBooking.ErrTooLateToBook):
		h.logger.Warn("POST /book-appointment - Slot too close to current time: date=%s, time=%s", req.Date, req.Time)
		handlers.RespondBadRequest(w, msgTooLateToBook)
	case errors.Is(err, createBooking.ErrSlotNotAvailable):
		h.logger.Warn("POST /book-appointment - Slot already taken: date=%s, time=%s", req.Date, req.Time)
		handlers.RespondConflict(w, msgSlotNotAvailable)
	default:
		h.logger.Error("POST /book-appointment - Failed to create booking: date=%s, time=%s, error=%v",
			req.Date, req.Time, err)
		handlers.RespondInternalError(w)
	}
}
