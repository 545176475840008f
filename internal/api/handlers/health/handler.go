package health

import (
	"net/http"
	"time"

	"github.com/whalys/booking-service/internal/api/handlers"
)

type TimeProvider interface {
	Now() time.Time
}

// HealthResponse HTTP response model
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	clock TimeProvider
}

func NewHandler(clock TimeProvider) *Handler {
	return &Handler{clock: clock}
}

// Handle GET /api/v1/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, &HealthResponse{
		Status:    "ok",
		Message:   "Server is running",
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339),
	})
}
