package emailjs

import (
	"net/http"
	"time"

	"github.com/whalys/booking-service/internal/api/handlers"
	"github.com/whalys/booking-service/internal/config"
)

const (
	msgPublicKeyMissing = "clé publique EmailJS non configurée"
	msgServiceIDMissing = "service ID EmailJS non configuré"

	stateConfigured = "CONFIGURED"
	stateMissing    = "MISSING"
)

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Warn(format string, v ...interface{})
}

type Handler struct {
	cfg    config.EmailJSConfig
	clock  TimeProvider
	logger Logger
}

func NewHandler(cfg config.EmailJSConfig, clock TimeProvider, logger Logger) *Handler {
	return &Handler{
		cfg:    cfg,
		clock:  clock,
		logger: logger,
	}
}

// HandlePublicKey GET /api/v1/emailjs-public-key
// Отдает браузеру публичный ключ и service ID: письма отправляет фронтенд
func (h *Handler) HandlePublicKey(w http.ResponseWriter, r *http.Request) {
	if h.cfg.PublicKey == "" {
		h.logger.Warn("GET /emailjs-public-key - Public key not configured")
		handlers.RespondBadRequest(w, msgPublicKeyMissing)
		return
	}
	if h.cfg.ServiceID == "" {
		h.logger.Warn("GET /emailjs-public-key - Service ID not configured")
		handlers.RespondBadRequest(w, msgServiceIDMissing)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &PublicKeyResponse{
		PublicKey: h.cfg.PublicKey,
		ServiceID: h.cfg.ServiceID,
	})
}

// HandleCheck GET /api/v1/emailjs-check
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, &CheckResponse{
		EmailJSConfig: CheckConfig{
			PublicKey:  presence(h.cfg.PublicKey),
			PrivateKey: presence(h.cfg.PrivateKey),
			ServiceID:  h.cfg.ServiceID,
			Ready:      h.cfg.PublicKey != "" && h.cfg.PrivateKey != "",
		},
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339),
	})
}

func presence(value string) string {
	if value == "" {
		return stateMissing
	}
	return stateConfigured
}
