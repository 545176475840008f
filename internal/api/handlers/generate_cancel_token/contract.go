package generate_cancel_token

import (
	"context"

	"github.com/whalys/booking-service/internal/service/cancellation"
)

type CancellationService interface {
	IssueToken(ctx context.Context, bookingID string) (*cancellation.IssuedToken, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
