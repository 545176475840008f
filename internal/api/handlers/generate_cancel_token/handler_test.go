package generate_cancel_token

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whalys/booking-service/internal/service/cancellation"
)

type mockCancellationService struct {
	issueTokenFunc func(ctx context.Context, bookingID string) (*cancellation.IssuedToken, error)
}

func (m *mockCancellationService) IssueToken(ctx context.Context, bookingID string) (*cancellation.IssuedToken, error) {
	return m.issueTokenFunc(ctx, bookingID)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func postToken(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-cancel-token", strings.NewReader(body))
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &mockCancellationService{
		issueTokenFunc: func(ctx context.Context, bookingID string) (*cancellation.IssuedToken, error) {
			assert.Equal(t, "booking-1", bookingID)
			return &cancellation.IssuedToken{
				Token:     "cancel-booking-1-abc123def",
				CancelURL: "http://localhost:8080/api/v1/cancel-booking?token=cancel-booking-1-abc123def",
			}, nil
		},
	}
	h := NewHandler(svc, noopLogger{})

	rec := postToken(h, `{"bookingId":"booking-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body GenerateCancelTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "cancel-booking-1-abc123def", body.Token)
	assert.Contains(t, body.CancelURL, "token=cancel-booking-1-abc123def")
}

func TestHandle_MissingBookingID(t *testing.T) {
	h := NewHandler(&mockCancellationService{}, noopLogger{})

	rec := postToken(h, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BookingNotFound(t *testing.T) {
	svc := &mockCancellationService{
		issueTokenFunc: func(ctx context.Context, bookingID string) (*cancellation.IssuedToken, error) {
			return nil, cancellation.ErrBookingNotFound
		},
	}
	h := NewHandler(svc, noopLogger{})

	rec := postToken(h, `{"bookingId":"booking-unknown"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
