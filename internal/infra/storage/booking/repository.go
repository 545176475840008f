package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/whalys/booking-service/internal/domain"
	"github.com/whalys/booking-service/pkg/types"
)

// Раскладка ключей в KV-хранилище:
//
//	booking-<date>-<time>  claim на слот, значение - JSON бронирования
//	<bookingId>            запись бронирования для поиска по id
//	all-bookings           redis-список всех id в порядке создания
const (
	slotKeyFormat  = "booking-%s-%s"
	allBookingsKey = "all-bookings"
)

// Repository репозиторий бронирований поверх KV-хранилища
type Repository struct {
	rdb Client
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(rdb Client) *Repository {
	return &Repository{rdb: rdb}
}

// slotKey строит ключ claim'а для пары (дата, время)
func slotKey(date string, t types.TimeString) string {
	return fmt.Sprintf(slotKeyFormat, date, t)
}

// ClaimSlot атомарно занимает слот (insert-if-absent).
// SETNX гарантирует, что из двух конкурентных запросов на один слот claim
// запишет ровно один; проигравший получает ErrSlotTaken.
func (r *Repository) ClaimSlot(ctx context.Context, booking *domain.Booking) error {
	payload, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("%w: ClaimSlot - marshal booking: %v", ErrEncode, err)
	}

	ok, err := r.rdb.SetNX(ctx, slotKey(booking.Date, booking.Time), payload, 0).Result()
	if err != nil {
		return fmt.Errorf("%w: ClaimSlot - setnx: %v", ErrExec, err)
	}
	if !ok {
		return ErrSlotTaken
	}

	return nil
}

// ReleaseSlot освобождает claim слота
func (r *Repository) ReleaseSlot(ctx context.Context, date string, t types.TimeString) error {
	if err := r.rdb.Del(ctx, slotKey(date, t)).Err(); err != nil {
		return fmt.Errorf("%w: ReleaseSlot - del: %v", ErrExec, err)
	}
	return nil
}

// IsSlotClaimed проверяет наличие claim'а для пары (дата, время)
func (r *Repository) IsSlotClaimed(ctx context.Context, date string, t types.TimeString) (bool, error) {
	count, err := r.rdb.Exists(ctx, slotKey(date, t)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotClaimed - exists: %v", ErrExec, err)
	}
	return count > 0, nil
}

// Save сохраняет запись бронирования под ключом его id
func (r *Repository) Save(ctx context.Context, booking *domain.Booking) error {
	payload, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal booking: %v", ErrEncode, err)
	}

	if err := r.rdb.Set(ctx, booking.ID, payload, 0).Err(); err != nil {
		return fmt.Errorf("%w: Save - set: %v", ErrExec, err)
	}

	return nil
}

// GetByID получает бронирование по id
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	payload, err := r.rdb.Get(ctx, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - get: %v", ErrExec, err)
	}

	var booking domain.Booking
	if err := json.Unmarshal(payload, &booking); err != nil {
		return nil, fmt.Errorf("%w: GetByID - unmarshal booking: %v", ErrDecode, err)
	}

	return &booking, nil
}

// Delete удаляет запись бронирования
func (r *Repository) Delete(ctx context.Context, id string) error {
	deleted, err := r.rdb.Del(ctx, id).Result()
	if err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrExec, err)
	}
	if deleted == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// AppendToIndex добавляет id в конец списка all-bookings
func (r *Repository) AppendToIndex(ctx context.Context, id string) error {
	if err := r.rdb.RPush(ctx, allBookingsKey, id).Err(); err != nil {
		return fmt.Errorf("%w: AppendToIndex - rpush: %v", ErrExec, err)
	}
	return nil
}

// RemoveFromIndex убирает id из списка all-bookings
func (r *Repository) RemoveFromIndex(ctx context.Context, id string) error {
	if err := r.rdb.LRem(ctx, allBookingsKey, 0, id).Err(); err != nil {
		return fmt.Errorf("%w: RemoveFromIndex - lrem: %v", ErrExec, err)
	}
	return nil
}

// ListIDs возвращает все id бронирований в порядке создания
func (r *Repository) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := r.rdb.LRange(ctx, allBookingsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: ListIDs - lrange: %v", ErrExec, err)
	}
	return ids, nil
}
