package cancel_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whalys/booking-service/internal/domain"
	"github.com/whalys/booking-service/internal/service/cancellation"
)

type mockCancellationService struct {
	getBookingForTokenFunc func(ctx context.Context, token string) (*domain.Booking, error)
	redeemFunc             func(ctx context.Context, token string) error
}

func (m *mockCancellationService) GetBookingForToken(ctx context.Context, token string) (*domain.Booking, error) {
	return m.getBookingForTokenFunc(ctx, token)
}

func (m *mockCancellationService) Redeem(ctx context.Context, token string) error {
	return m.redeemFunc(ctx, token)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestHandleConfirmPage_Success(t *testing.T) {
	svc := &mockCancellationService{
		getBookingForTokenFunc: func(ctx context.Context, token string) (*domain.Booking, error) {
			assert.Equal(t, "cancel-booking-1-abc", token)
			return &domain.Booking{
				ID:   "booking-1",
				Name: "Jean Dupont",
				Date: "2026-09-21",
				Time: "09:00",
			}, nil
		},
	}
	h := NewHandler(svc, noopLogger{})

	rec := httptest.NewRecorder()
	h.HandleConfirmPage(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/cancel-booking?token=cancel-booking-1-abc", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	page := rec.Body.String()
	assert.Contains(t, page, "Jean Dupont")
	assert.Contains(t, page, "2026-09-21")
	assert.Contains(t, page, "09:00")
}

func TestHandleConfirmPage_MissingToken(t *testing.T) {
	h := NewHandler(&mockCancellationService{}, noopLogger{})

	rec := httptest.NewRecorder()
	h.HandleConfirmPage(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cancel-booking", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalide")
}

func TestHandleConfirmPage_UnknownToken(t *testing.T) {
	svc := &mockCancellationService{
		getBookingForTokenFunc: func(ctx context.Context, token string) (*domain.Booking, error) {
			return nil, cancellation.ErrTokenNotFound
		},
	}
	h := NewHandler(svc, noopLogger{})

	rec := httptest.NewRecorder()
	h.HandleConfirmPage(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/cancel-booking?token=cancel-unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestHandleCancel_Success(t *testing.T) {
	svc := &mockCancellationService{
		redeemFunc: func(ctx context.Context, token string) error {
			assert.Equal(t, "cancel-booking-1-abc", token)
			return nil
		},
	}
	h := NewHandler(svc, noopLogger{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cancel-booking",
		strings.NewReader(`{"token":"cancel-booking-1-abc"}`))
	h.HandleCancel(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body CancelBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, msgCancelled, body.Message)
}

func TestHandleCancel_MissingToken(t *testing.T) {
	h := NewHandler(&mockCancellationService{}, noopLogger{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cancel-booking", strings.NewReader(`{}`))
	h.HandleCancel(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCancel_InvalidToken(t *testing.T) {
	svc := &mockCancellationService{
		redeemFunc: func(ctx context.Context, token string) error {
			return cancellation.ErrTokenNotFound
		},
	}
	h := NewHandler(svc, noopLogger{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cancel-booking",
		strings.NewReader(`{"token":"cancel-unknown"}`))
	h.HandleCancel(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgInvalidToken, body["error"])
}

func TestHandleCancel_BookingGone(t *testing.T) {
	svc := &mockCancellationService{
		redeemFunc: func(ctx context.Context, token string) error {
			return cancellation.ErrBookingNotFound
		},
	}
	h := NewHandler(svc, noopLogger{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cancel-booking",
		strings.NewReader(`{"token":"cancel-booking-1-abc"}`))
	h.HandleCancel(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
