package cancellation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whalys/booking-service/internal/domain"
	bookingRepo "github.com/whalys/booking-service/internal/infra/storage/booking"
	tokenRepo "github.com/whalys/booking-service/internal/infra/storage/canceltoken"
	"github.com/whalys/booking-service/pkg/types"
)

// mockBookingRepository хранит бронирования в map, имитируя KV-раскладку
type mockBookingRepository struct {
	bookings map[string]*domain.Booking
	claims   map[string]bool
	index    []string

	getByIDErr error
}

func newMockBookingRepository() *mockBookingRepository {
	return &mockBookingRepository{
		bookings: make(map[string]*domain.Booking),
		claims:   make(map[string]bool),
	}
}

func (m *mockBookingRepository) add(b *domain.Booking) {
	m.bookings[b.ID] = b
	m.claims[b.Date+" "+b.Time.String()] = true
	m.index = append(m.index, b.ID)
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if m.getByIDErr != nil {
		return nil, m.getByIDErr
	}
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (m *mockBookingRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(m.bookings, id)
	return nil
}

func (m *mockBookingRepository) ReleaseSlot(ctx context.Context, date string, t types.TimeString) error {
	delete(m.claims, date+" "+t.String())
	return nil
}

func (m *mockBookingRepository) RemoveFromIndex(ctx context.Context, id string) error {
	for i, entry := range m.index {
		if entry == id {
			m.index = append(m.index[:i], m.index[i+1:]...)
			return nil
		}
	}
	return nil
}

type mockTokenRepository struct {
	tokens map[string]*domain.CancelToken

	saveErr error
}

func newMockTokenRepository() *mockTokenRepository {
	return &mockTokenRepository{tokens: make(map[string]*domain.CancelToken)}
}

func (m *mockTokenRepository) Save(ctx context.Context, token string, record *domain.CancelToken) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.tokens[token] = record
	return nil
}

func (m *mockTokenRepository) Get(ctx context.Context, token string) (*domain.CancelToken, error) {
	record, ok := m.tokens[token]
	if !ok {
		return nil, tokenRepo.ErrTokenNotFound
	}
	return record, nil
}

func (m *mockTokenRepository) Delete(ctx context.Context, token string) error {
	if _, ok := m.tokens[token]; !ok {
		return tokenRepo.ErrTokenNotFound
	}
	delete(m.tokens, token)
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:     "booking-1757836800000-abc123def",
		Name:   "Jean Dupont",
		Email:  "jean.dupont@example.com",
		Phone:  "+262 692 12 34 56",
		Date:   "2026-09-21",
		Time:   "09:00",
		Status: domain.StatusConfirmed,
	}
}

func newTestService(bookings *mockBookingRepository, tokens *mockTokenRepository) *Service {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	return NewService(bookings, tokens, "https://whalys.example/", &fixedClock{now: now}, noopLogger{})
}

func TestIssueToken_Success(t *testing.T) {
	bookings := newMockBookingRepository()
	tokens := newMockTokenRepository()
	booking := testBooking()
	bookings.add(booking)

	svc := newTestService(bookings, tokens)

	issued, err := svc.IssueToken(context.Background(), booking.ID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(issued.Token, "cancel-"+booking.ID+"-"))
	// Базовый URL нормализован: без двойного слеша
	assert.Equal(t, "https://whalys.example/api/v1/cancel-booking?token="+issued.Token, issued.CancelURL)

	record, ok := tokens.tokens[issued.Token]
	require.True(t, ok)
	assert.Equal(t, booking.ID, record.BookingID)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestIssueToken_BookingNotFound(t *testing.T) {
	svc := newTestService(newMockBookingRepository(), newMockTokenRepository())

	_, err := svc.IssueToken(context.Background(), "booking-unknown")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestIssueToken_SaveFailure(t *testing.T) {
	bookings := newMockBookingRepository()
	bookings.add(testBooking())
	tokens := newMockTokenRepository()
	tokens.saveErr = errors.New("write failed")

	svc := newTestService(bookings, tokens)

	_, err := svc.IssueToken(context.Background(), testBooking().ID)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetBookingForToken(t *testing.T) {
	bookings := newMockBookingRepository()
	tokens := newMockTokenRepository()
	booking := testBooking()
	bookings.add(booking)

	svc := newTestService(bookings, tokens)
	issued, err := svc.IssueToken(context.Background(), booking.ID)
	require.NoError(t, err)

	got, err := svc.GetBookingForToken(context.Background(), issued.Token)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)

	// Чтение не гасит токен
	_, err = svc.GetBookingForToken(context.Background(), issued.Token)
	assert.NoError(t, err)

	_, err = svc.GetBookingForToken(context.Background(), "cancel-unknown")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRedeem_FullRoundTrip(t *testing.T) {
	bookings := newMockBookingRepository()
	tokens := newMockTokenRepository()
	booking := testBooking()
	bookings.add(booking)

	svc := newTestService(bookings, tokens)
	issued, err := svc.IssueToken(context.Background(), booking.ID)
	require.NoError(t, err)

	err = svc.Redeem(context.Background(), issued.Token)
	require.NoError(t, err)

	// Слот освобожден, запись и токен удалены, индекс подчищен
	assert.Empty(t, bookings.claims)
	assert.Empty(t, bookings.bookings)
	assert.Empty(t, tokens.tokens)
	assert.Empty(t, bookings.index)
}

func TestRedeem_TokenSingleUse(t *testing.T) {
	bookings := newMockBookingRepository()
	tokens := newMockTokenRepository()
	booking := testBooking()
	bookings.add(booking)

	svc := newTestService(bookings, tokens)
	issued, err := svc.IssueToken(context.Background(), booking.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Redeem(context.Background(), issued.Token))

	err = svc.Redeem(context.Background(), issued.Token)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRedeem_UnknownToken(t *testing.T) {
	svc := newTestService(newMockBookingRepository(), newMockTokenRepository())

	err := svc.Redeem(context.Background(), "cancel-unknown-token")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRedeem_BookingGone(t *testing.T) {
	bookings := newMockBookingRepository()
	tokens := newMockTokenRepository()
	booking := testBooking()
	bookings.add(booking)

	svc := newTestService(bookings, tokens)
	issued, err := svc.IssueToken(context.Background(), booking.ID)
	require.NoError(t, err)

	// Бронирование исчезло между выпуском токена и погашением
	delete(bookings.bookings, booking.ID)

	err = svc.Redeem(context.Background(), issued.Token)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
