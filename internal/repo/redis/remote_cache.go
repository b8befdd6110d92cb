package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/cart-store/internal/ports"
	"github.com/Gunvolt24/cart-store/pkg/metrics"
	goredis "github.com/redis/go-redis/v9"
)

// CartRemoteCache — адаптер байтового удалённого кэша поверх Redis.
// Ключи получают префикс "cart:", значения хранятся как есть.
type CartRemoteCache struct {
	rdb *goredis.Client
}

var _ ports.RemoteCache = (*CartRemoteCache)(nil)

func NewCartRemoteCache(rdb *goredis.Client) *CartRemoteCache {
	return &CartRemoteCache{rdb: rdb}
}

// Get — читает запись по ключу. Отсутствие ключа — не ошибка: (nil, false, nil).
func (r *CartRemoteCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.rdb.Get(ctx, cartKey(key)).Bytes()
	switch {
	case errors.Is(err, goredis.Nil):
		metrics.RemoteOps.WithLabelValues("get", "absent").Inc()
		return nil, false, nil
	case err != nil:
		metrics.RemoteOps.WithLabelValues("get", "error").Inc()
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	metrics.RemoteOps.WithLabelValues("get", "ok").Inc()
	return val, true, nil
}

// Set — пишет запись по ключу. Без TTL: запись живёт, пока её не перезапишут.
func (r *CartRemoteCache) Set(ctx context.Context, key string, value []byte) error {
	if err := r.rdb.Set(ctx, cartKey(key), value, 0).Err(); err != nil {
		metrics.RemoteOps.WithLabelValues("set", "error").Inc()
		return fmt.Errorf("redis set: %w", err)
	}
	metrics.RemoteOps.WithLabelValues("set", "ok").Inc()
	return nil
}

// Ping — проверка соединения с удалённым кэшем.
func (r *CartRemoteCache) Ping(ctx context.Context) error {
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		metrics.RemoteOps.WithLabelValues("ping", "error").Inc()
		return fmt.Errorf("redis ping: %w", err)
	}
	metrics.RemoteOps.WithLabelValues("ping", "ok").Inc()
	return nil
}

func cartKey(userID string) string {
	return "cart:" + userID
}
