package kvmetrics

import (
	"context"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/whalys/booking-service/pkg/metrics"
)

// Hook redis-хук, снимающий метрики длительности и статуса каждой команды.
// Подключается через client.AddHook, когда метрики включены в конфигурации.
type Hook struct {
	m *metrics.Metrics
}

// NewHook создает хук для сбора KV-метрик
func NewHook(m *metrics.Metrics) *Hook {
	return &Hook{m: m}
}

// DialHook не инструментируется, соединения отдаем как есть
func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

// ProcessHook фиксирует каждую одиночную команду
func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.m.ObserveKVCommand(cmd.Name(), err, time.Since(start))
		return err
	}
}

// ProcessPipelineHook фиксирует пайплайн как одну команду "pipeline"
func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		h.m.ObserveKVCommand("pipeline", err, time.Since(start))
		return err
	}
}
