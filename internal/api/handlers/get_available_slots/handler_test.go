package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/whalys/booking-service/internal/usecase/get_available_slots"
	"github.com/whalys/booking-service/pkg/types"
)

type mockUseCase struct {
	executeFunc func(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return m.executeFunc(ctx, req)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&mockUseCase{}, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgMissingDate, body["error"])
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	h := NewHandler(&mockUseCase{}, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=21-09-2026", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
			assert.Equal(t, time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC), req.Date)
			return &getAvailableSlots.Response{
				Date:  req.Date,
				Slots: []types.TimeString{"08:00", "14:00"},
			}, nil
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-09-21", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"08:00", "14:00"}, body.AvailableSlots)
	assert.Empty(t, body.Reason)
}

func TestHandle_ReasonPassedThrough(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
			return &getAvailableSlots.Response{
				Date:   req.Date,
				Slots:  []types.TimeString{},
				Reason: getAvailableSlots.ReasonWeekendBlocked,
			}, nil
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-09-19", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.AvailableSlots)
	assert.Equal(t, "weekend_blocked", body.Reason)
}

func TestHandle_UseCaseError(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
			return nil, errors.New("boom")
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-09-21", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
