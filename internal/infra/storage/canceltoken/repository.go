package canceltoken

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/whalys/booking-service/internal/domain"
)

// tokenKeyPrefix раскладка ключей: cancel-token-<token> -> JSON CancelToken
const tokenKeyPrefix = "cancel-token-"

// Client минимальный интерфейс redis-клиента, используемый репозиторием
type Client = redis.Cmdable

// Repository репозиторий токенов отмены поверх KV-хранилища
type Repository struct {
	rdb Client
}

// NewRepository создает новый экземпляр репозитория токенов
func NewRepository(rdb Client) *Repository {
	return &Repository{rdb: rdb}
}

// Save сохраняет запись токена
func (r *Repository) Save(ctx context.Context, token string, record *domain.CancelToken) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal token: %v", ErrEncode, err)
	}

	if err := r.rdb.Set(ctx, tokenKeyPrefix+token, payload, 0).Err(); err != nil {
		return fmt.Errorf("%w: Save - set: %v", ErrExec, err)
	}

	return nil
}

// Get получает запись токена
func (r *Repository) Get(ctx context.Context, token string) (*domain.CancelToken, error) {
	payload, err := r.rdb.Get(ctx, tokenKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get: %v", ErrExec, err)
	}

	var record domain.CancelToken
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal token: %v", ErrDecode, err)
	}

	return &record, nil
}

// Delete удаляет запись токена
func (r *Repository) Delete(ctx context.Context, token string) error {
	deleted, err := r.rdb.Del(ctx, tokenKeyPrefix+token).Result()
	if err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrExec, err)
	}
	if deleted == 0 {
		return ErrTokenNotFound
	}
	return nil
}
