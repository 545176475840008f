package get_bookings

import (
	"net/http"

	"github.com/whalys/booking-service/internal/api/handlers"
	"github.com/whalys/booking-service/internal/domain"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if list == nil {
		list = []*domain.Booking{}
	}

	h.logger.Info("GET /bookings - Bookings listed: total=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, &BookingsResponse{
		Bookings: list,
		Total:    len(list),
	})
}
