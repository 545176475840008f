package booking

import "github.com/redis/go-redis/v9"

// Client минимальный интерфейс redis-клиента, используемый репозиторием.
// Поддерживает *redis.Client и *redis.ClusterClient.
type Client = redis.Cmdable
